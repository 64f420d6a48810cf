package models

import "time"

type RevenueSource string

const (
	RevenueBikeSale   RevenueSource = "bike_sale"
	RevenueService    RevenueSource = "service"
	RevenueSpareParts RevenueSource = "spare_parts"
	RevenueCommission RevenueSource = "commission"
	RevenueOther      RevenueSource = "other"
)

func ValidRevenueSource(s RevenueSource) bool {
	switch s {
	case RevenueBikeSale, RevenueService, RevenueSpareParts, RevenueCommission, RevenueOther:
		return true
	}
	return false
}

// Revenue mirrors Expense for incoming money outside the sale workflow.
type Revenue struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Source        RevenueSource `gorm:"size:20;index;not null" json:"source"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Date          time.Time     `gorm:"not null;index" json:"date"`
	PaymentMethod string        `gorm:"size:20;not null" json:"payment_method"`
	Description   string        `gorm:"size:255" json:"description,omitempty"`
	RecordedBy    string        `gorm:"size:180;not null" json:"recorded_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
