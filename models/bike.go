package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type BikeStatus string

const (
	BikeAvailable BikeStatus = "available"
	BikeSold      BikeStatus = "sold"
	BikeReserved  BikeStatus = "reserved"
)

type BikeBrand string

const (
	BrandHero         BikeBrand = "Hero"
	BrandHonda        BikeBrand = "Honda"
	BrandBajaj        BikeBrand = "Bajaj"
	BrandTVS          BikeBrand = "TVS"
	BrandYamaha       BikeBrand = "Yamaha"
	BrandSuzuki       BikeBrand = "Suzuki"
	BrandRoyalEnfield BikeBrand = "Royal Enfield"
	BrandKTM          BikeBrand = "KTM"
	BrandOther        BikeBrand = "Other"
)

func ValidBrand(b BikeBrand) bool {
	switch b {
	case BrandHero, BrandHonda, BrandBajaj, BrandTVS, BrandYamaha,
		BrandSuzuki, BrandRoyalEnfield, BrandKTM, BrandOther:
		return true
	}
	return false
}

type Bike struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BikeNumber string    `gorm:"uniqueIndex;size:40;not null" json:"bike_number"` // registration no, stored uppercase
	Brand      BikeBrand `gorm:"size:30;not null" json:"brand"`
	Model      string    `gorm:"size:120;not null" json:"model"`
	Year       int       `gorm:"not null" json:"year"`

	BuyPrice      float64  `gorm:"not null" json:"buy_price"`
	SellPrice     *float64 `json:"sell_price"`
	Profit        *float64 `json:"profit"`
	ProfitPercent *float64 `json:"profit_percent"`

	Status          BikeStatus `gorm:"size:12;index;default:available" json:"status"`
	PurchaseDate    time.Time  `gorm:"not null" json:"purchase_date"`
	SellDate        *time.Time `json:"sell_date"`
	DaysToSell      *int       `json:"days_to_sell"`
	ConditionRating int        `gorm:"default:8" json:"condition_rating"` // 1..10

	SaleID *uint `json:"sale_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeSave keeps the derived pricing fields in sync on every persist.
func (b *Bike) BeforeSave(tx *gorm.DB) error {
	b.BikeNumber = strings.ToUpper(strings.TrimSpace(b.BikeNumber))

	if b.SellPrice != nil {
		p, pp := ProfitFor(b.BuyPrice, *b.SellPrice)
		b.Profit = &p
		b.ProfitPercent = &pp
	}
	if b.SellDate != nil && !b.PurchaseDate.IsZero() {
		d := DaysToSellFor(b.PurchaseDate, *b.SellDate)
		b.DaysToSell = &d
	}
	return nil
}
