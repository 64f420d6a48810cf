package models

import "time"

type PaymentMode string

const (
	PayCash    PaymentMode = "cash"
	PayUPI     PaymentMode = "upi"
	PayCard    PaymentMode = "card"
	PayFinance PaymentMode = "finance"
)

func ValidPaymentMode(m PaymentMode) bool {
	switch m {
	case PayCash, PayUPI, PayCard, PayFinance:
		return true
	}
	return false
}

// Sale is the immutable financial record of one bike sold to one customer.
// Buyer fields are a snapshot taken at sale time and never follow later
// customer edits.
type Sale struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	SaleNumber    string `gorm:"uniqueIndex;size:40;not null" json:"sale_number"`    // SAL-YYYYMM-XXX
	InvoiceNumber string `gorm:"uniqueIndex;size:40;not null" json:"invoice_number"` // SB-YYYY-XXX

	BikeID     uint     `gorm:"index;not null" json:"bike_id"`
	Bike       Bike     `json:"bike"`
	CustomerID uint     `gorm:"index;not null" json:"customer_id"`
	Customer   Customer `json:"customer"`

	BuyerName    string `gorm:"size:180;not null" json:"buyer_name"`
	BuyerPhone   string `gorm:"size:20;not null" json:"buyer_phone"`
	BuyerAddress string `gorm:"size:255;not null" json:"buyer_address"`

	SellingPrice  float64 `gorm:"not null" json:"selling_price"`
	Discount      float64 `gorm:"not null;default:0" json:"discount"`
	FinalAmount   float64 `gorm:"not null" json:"final_amount"` // selling_price - discount
	Profit        float64 `gorm:"not null" json:"profit"`       // final_amount - bike buy price
	ProfitPercent float64 `gorm:"not null" json:"profit_percent"`

	PaymentMode PaymentMode `gorm:"size:12;not null" json:"payment_mode"`
	SaleDate    time.Time   `gorm:"not null" json:"sale_date"`
	InvoicePath string      `gorm:"size:255" json:"invoice_path,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
