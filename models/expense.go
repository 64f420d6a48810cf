package models

import "time"

type ExpenseCategory string

const (
	ExpenseRent        ExpenseCategory = "rent"
	ExpenseSalary      ExpenseCategory = "salary"
	ExpenseElectricity ExpenseCategory = "electricity"
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseTransport   ExpenseCategory = "transport"
	ExpenseMarketing   ExpenseCategory = "marketing"
	ExpenseOther       ExpenseCategory = "other"
)

func ValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case ExpenseRent, ExpenseSalary, ExpenseElectricity, ExpenseMaintenance,
		ExpenseTransport, ExpenseMarketing, ExpenseOther:
		return true
	}
	return false
}

// Expense is a flat outgoing-money ledger entry. No derived fields, no
// cross-entity effects.
type Expense struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Category      ExpenseCategory `gorm:"size:20;index;not null" json:"category"`
	Amount        float64         `gorm:"not null" json:"amount"`
	Date          time.Time       `gorm:"not null;index" json:"date"`
	PaymentMethod string          `gorm:"size:20;not null" json:"payment_method"`
	Description   string          `gorm:"size:255" json:"description,omitempty"`
	RecordedBy    string          `gorm:"size:180;not null" json:"recorded_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
