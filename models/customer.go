package models

import (
	"time"

	"gorm.io/gorm"
)

type CustomerType string

const (
	CustomerRegular CustomerType = "Regular"
	CustomerPremium CustomerType = "Premium"
	CustomerVIP     CustomerType = "VIP"
)

type Customer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:180;not null" json:"name"`
	Phone   string `gorm:"uniqueIndex;size:20;not null" json:"phone"` // identity key
	Address string `gorm:"size:255;not null" json:"address"`
	Email   string `gorm:"size:180" json:"email,omitempty"`

	// Running aggregates, mutated only by the sale workflow.
	TotalSpent       float64      `gorm:"not null;default:0" json:"total_spent"`
	TotalBikesBought int          `gorm:"not null;default:0" json:"total_bikes_bought"`
	CustomerType     CustomerType `gorm:"size:12;default:Regular" json:"customer_type"`
	LastPurchaseDate *time.Time   `json:"last_purchase_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave recomputes the tier on every persist, even when TotalSpent did not
// change in this write.
func (cu *Customer) BeforeSave(tx *gorm.DB) error {
	cu.CustomerType = TierFor(cu.TotalSpent)
	return nil
}
