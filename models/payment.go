package models

import (
	"time"

	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPartial   PaymentStatus = "partial"
	PaymentCompleted PaymentStatus = "completed"
)

// Payment tracks money received against one sale. PaidAmount only ever grows,
// through appended PaymentLog entries.
type Payment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	SaleID uint `gorm:"uniqueIndex;not null" json:"sale_id"`
	Sale   Sale `json:"sale"`

	TotalAmount     float64       `gorm:"not null" json:"total_amount"` // fixed at creation
	PaidAmount      float64       `gorm:"not null;default:0" json:"paid_amount"`
	RemainingAmount float64       `gorm:"not null;default:0" json:"remaining_amount"`
	Status          PaymentStatus `gorm:"size:12;index" json:"status"`

	Logs []PaymentLog `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"logs"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentLog is one append-only ledger entry. No path edits or removes one.
type PaymentLog struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PaymentID uint `gorm:"index;not null" json:"payment_id"`

	Amount     float64   `gorm:"not null" json:"amount"`
	Method     string    `gorm:"size:20;not null" json:"method"`
	PaidAt     time.Time `gorm:"not null" json:"paid_at"`
	Note       string    `gorm:"size:255" json:"note,omitempty"`
	RecordedBy string    `gorm:"size:180;not null" json:"recorded_by"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeSave recomputes remaining amount and status on every persist.
func (p *Payment) BeforeSave(tx *gorm.DB) error {
	p.RemainingAmount, p.Status = PaymentStateFor(p.TotalAmount, p.PaidAmount)
	return nil
}
