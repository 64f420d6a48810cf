package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/config"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/utils"
)

// Insight heuristics: deterministic rule evaluations over aggregate queries.
// Fixed thresholds, no model state.

const (
	highMarginThreshold  = 20.0  // percent
	slowMovingDays       = 30    // days on the lot
	lowAvgProfitAmount   = 15000 // currency units
	trendChangeThreshold = 10.0  // percent month-over-month
	ageDepreciation      = 0.05  // per year
	conditionAdjustment  = 0.02  // per rating point from 8
	minComparables       = 3     // sample size for high confidence
)

// suggestPrice applies the fixed adjustment rules to the comparable average.
func suggestPrice(comparableAvg float64, ageYears, conditionRating int) float64 {
	v := comparableAvg * (1 - ageDepreciation*float64(ageYears))
	v *= 1 + conditionAdjustment*float64(conditionRating-8)
	if v < 0 {
		return 0
	}
	return v
}

// trendLabel buckets the month-over-month sales change.
func trendLabel(prev, cur int64) (label string, changePercent float64) {
	if prev == 0 {
		if cur > 0 {
			return "increasing", 100
		}
		return "stable", 0
	}
	changePercent = float64(cur-prev) / float64(prev) * 100
	switch {
	case changePercent > trendChangeThreshold:
		return "increasing", changePercent
	case changePercent < -trendChangeThreshold:
		return "decreasing", changePercent
	default:
		return "stable", changePercent
	}
}

type insight struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func GetInsights(c *gin.Context) {
	insights := make([]insight, 0, 8)

	// brands beating the margin threshold
	type brandRow struct {
		Brand     models.BikeBrand
		AvgMargin float64
		SoldCount int64
	}
	var brands []brandRow
	config.DB.Model(&models.Sale{}).
		Select("bikes.brand AS brand, AVG(sales.profit_percent) AS avg_margin, COUNT(sales.id) AS sold_count").
		Joins("JOIN bikes ON bikes.id = sales.bike_id").
		Group("bikes.brand").Order("avg_margin DESC").
		Scan(&brands)
	for _, b := range brands {
		if b.AvgMargin > highMarginThreshold {
			insights = append(insights, insight{
				Type: "brand_performance",
				Message: fmt.Sprintf("%s bikes earn an average margin of %.1f%% across %d sales - stock more of them",
					b.Brand, b.AvgMargin, b.SoldCount),
			})
		}
	}

	// slow movers still on the lot
	cutoff := time.Now().UTC().AddDate(0, 0, -slowMovingDays)
	var slow []models.Bike
	config.DB.Where("status = ? AND purchase_date < ?", models.BikeAvailable, cutoff).
		Order("purchase_date ASC").Limit(5).Find(&slow)
	for _, b := range slow {
		days := int(time.Since(b.PurchaseDate).Hours() / 24)
		insights = append(insights, insight{
			Type: "slow_moving",
			Message: fmt.Sprintf("%s %s (%s) has been unsold for %d days - consider a price cut",
				b.Brand, b.Model, b.BikeNumber, days),
		})
	}

	// overall profitability
	var count int64
	var totalProfit float64
	config.DB.Model(&models.Sale{}).Count(&count)
	config.DB.Model(&models.Sale{}).Select("COALESCE(SUM(profit), 0)").Scan(&totalProfit)
	if count > 0 {
		avg := totalProfit / float64(count)
		if avg < lowAvgProfitAmount {
			insights = append(insights, insight{
				Type:    "low_profit",
				Message: fmt.Sprintf("Average profit per sale is %.0f, below the %d target - review pricing", avg, lowAvgProfitAmount),
			})
		}
	}

	utils.Success(c, "Insights", insights)
}

func PriceSuggestion(c *gin.Context) {
	bikeID := getIntQ(c, "bike_id", 0)
	if bikeID == 0 {
		utils.Error(c, http.StatusBadRequest, "bike_id is required", nil)
		return
	}
	var bike models.Bike
	if err := config.DB.First(&bike, bikeID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Bike not found", nil)
		return
	}

	// comparable: sold, same brand, year within two either way
	var comparables []models.Bike
	if err := config.DB.
		Where("status = ? AND brand = ? AND year BETWEEN ? AND ? AND sell_price IS NOT NULL",
			models.BikeSold, bike.Brand, bike.Year-2, bike.Year+2).
		Find(&comparables).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to query comparables", err)
		return
	}

	out := gin.H{
		"bike_id":     bike.ID,
		"sample_size": len(comparables),
		"confidence":  "low",
	}
	if len(comparables) == 0 {
		out["message"] = "No comparable sold bikes found"
		utils.Success(c, "Price suggestion", out)
		return
	}

	var sum float64
	for _, cb := range comparables {
		sum += *cb.SellPrice
	}
	avg := sum / float64(len(comparables))
	age := time.Now().Year() - bike.Year

	out["comparable_avg"] = avg
	out["suggested_price"] = suggestPrice(avg, age, bike.ConditionRating)
	if len(comparables) >= minComparables {
		out["confidence"] = "high"
	}
	utils.Success(c, "Price suggestion", out)
}

type brandTrend struct {
	Brand         models.BikeBrand `json:"brand"`
	PreviousMonth int64            `json:"previous_month"`
	CurrentMonth  int64            `json:"current_month"`
	ChangePercent float64          `json:"change_percent"`
	Trend         string           `json:"trend"`
}

func DemandTrend(c *gin.Context) {
	now := time.Now().UTC()
	curStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart := curStart.AddDate(0, -1, 0)

	type row struct {
		Brand models.BikeBrand
		Cnt   int64
	}
	countByBrand := func(from, to time.Time) map[models.BikeBrand]int64 {
		var rows []row
		config.DB.Model(&models.Sale{}).
			Select("bikes.brand AS brand, COUNT(sales.id) AS cnt").
			Joins("JOIN bikes ON bikes.id = sales.bike_id").
			Where("sales.sale_date >= ? AND sales.sale_date < ?", from, to).
			Group("bikes.brand").
			Scan(&rows)
		m := make(map[models.BikeBrand]int64, len(rows))
		for _, r := range rows {
			m[r.Brand] = r.Cnt
		}
		return m
	}

	prev := countByBrand(prevStart, curStart)
	cur := countByBrand(curStart, curStart.AddDate(0, 1, 0))

	seen := make(map[models.BikeBrand]bool)
	trends := make([]brandTrend, 0, len(prev)+len(cur))
	for brand := range prev {
		seen[brand] = true
	}
	for brand := range cur {
		seen[brand] = true
	}
	for brand := range seen {
		label, change := trendLabel(prev[brand], cur[brand])
		trends = append(trends, brandTrend{
			Brand:         brand,
			PreviousMonth: prev[brand],
			CurrentMonth:  cur[brand],
			ChangePercent: change,
			Trend:         label,
		})
	}

	utils.Success(c, "Demand trend", trends)
}
