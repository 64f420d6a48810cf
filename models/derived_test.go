package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfitFor(t *testing.T) {
	profit, percent := ProfitFor(100000, 125000)
	assert.InDelta(t, 25000, profit, 0.001)
	assert.InDelta(t, 25, percent, 0.001)

	profit, percent = ProfitFor(100000, 90000)
	assert.InDelta(t, -10000, profit, 0.001)
	assert.InDelta(t, -10, percent, 0.001)

	// zero buy price must not divide
	profit, percent = ProfitFor(0, 50000)
	assert.InDelta(t, 50000, profit, 0.001)
	assert.Equal(t, 0.0, percent)
}

func TestDaysToSellFor(t *testing.T) {
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysToSellFor(base, base))
	assert.Equal(t, 1, DaysToSellFor(base, base.Add(2*time.Hour)))    // partial day rounds up
	assert.Equal(t, 1, DaysToSellFor(base, base.AddDate(0, 0, 1)))    // exactly one day
	assert.Equal(t, 3, DaysToSellFor(base, base.AddDate(0, 0, 2).Add(time.Hour)))
	assert.Equal(t, 0, DaysToSellFor(base, base.Add(-time.Hour)))     // clock skew clamps to 0
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, CustomerRegular, TierFor(0))
	assert.Equal(t, CustomerRegular, TierFor(199999.99))
	assert.Equal(t, CustomerPremium, TierFor(200000))
	assert.Equal(t, CustomerPremium, TierFor(499999.99))
	assert.Equal(t, CustomerVIP, TierFor(500000))
	assert.Equal(t, CustomerVIP, TierFor(1200000))
}

func TestPaymentStateFor(t *testing.T) {
	remaining, status := PaymentStateFor(125000, 0)
	assert.Equal(t, 125000.0, remaining)
	assert.Equal(t, PaymentPending, status)

	remaining, status = PaymentStateFor(125000, 50000)
	assert.Equal(t, 75000.0, remaining)
	assert.Equal(t, PaymentPartial, status)

	remaining, status = PaymentStateFor(125000, 125000)
	assert.Equal(t, 0.0, remaining)
	assert.Equal(t, PaymentCompleted, status)
}
