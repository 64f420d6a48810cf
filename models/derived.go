package models

import (
	"math"
	"time"
)

// Pure derived-field calculators. Every BeforeSave hook goes through these so the
// rules stay testable without a database.

// ProfitFor returns profit and profit percent for a bike sold at sellPrice.
func ProfitFor(buyPrice, sellPrice float64) (profit, profitPercent float64) {
	profit = sellPrice - buyPrice
	if buyPrice > 0 {
		profitPercent = profit / buyPrice * 100
	}
	return profit, profitPercent
}

// DaysToSellFor returns the number of whole days between purchase and sell date,
// rounded up. Same-moment sale counts as 0 days.
func DaysToSellFor(purchaseDate, sellDate time.Time) int {
	d := sellDate.Sub(purchaseDate).Hours() / 24
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d))
}

// TierFor maps lifetime spend to a customer tier.
func TierFor(totalSpent float64) CustomerType {
	switch {
	case totalSpent >= 500000:
		return CustomerVIP
	case totalSpent >= 200000:
		return CustomerPremium
	default:
		return CustomerRegular
	}
}

// PaymentStateFor returns remaining amount and status from the two stored totals.
func PaymentStateFor(totalAmount, paidAmount float64) (remaining float64, status PaymentStatus) {
	remaining = totalAmount - paidAmount
	switch {
	case paidAmount <= 0:
		status = PaymentPending
	case paidAmount < totalAmount:
		status = PaymentPartial
	default:
		status = PaymentCompleted
	}
	return remaining, status
}
