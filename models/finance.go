package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Finance is a lender/financier registry entry. The totals are materialized
// counters maintained inside the same transaction that appends a
// FinanceTransaction, never recomputed from the ledger.
type Finance struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:180;not null" json:"name"`
	Phone       string `gorm:"size:20" json:"phone,omitempty"`
	CompanyName string `gorm:"size:180" json:"company_name,omitempty"`

	TotalAmountPaid   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_amount_paid"`
	TotalTransactions int             `gorm:"not null;default:0" json:"total_transactions"`
	LastPaymentDate   *time.Time      `json:"last_payment_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FinanceTransaction is one append-only ledger entry against a financier.
type FinanceTransaction struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FinanceID uint    `gorm:"index;not null" json:"finance_id"`
	Finance   Finance `json:"-"`

	Amount     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	SaleID     *uint           `gorm:"index" json:"sale_id,omitempty"`
	Date       time.Time       `gorm:"not null" json:"date"`
	Note       string          `gorm:"size:255" json:"note,omitempty"`
	RecordedBy string          `gorm:"size:180;not null" json:"recorded_by"`

	CreatedAt time.Time `json:"created_at"`
}
