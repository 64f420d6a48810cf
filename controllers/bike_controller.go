package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/config"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/utils"
)

type BikeInput struct {
	BikeNumber      string           `json:"bike_number" binding:"required"`
	Brand           models.BikeBrand `json:"brand" binding:"required"`
	Model           string           `json:"model" binding:"required"`
	Year            int              `json:"year" binding:"required"`
	BuyPrice        *float64         `json:"buy_price" binding:"required"`
	PurchaseDate    *time.Time       `json:"purchase_date"`
	ConditionRating int              `json:"condition_rating"`
}

func CreateBike(c *gin.Context) {
	var in BikeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if !models.ValidBrand(in.Brand) {
		utils.Error(c, http.StatusBadRequest, "Unknown brand", nil)
		return
	}
	if *in.BuyPrice < 0 {
		utils.Error(c, http.StatusBadRequest, "Buy price cannot be negative", nil)
		return
	}
	if in.ConditionRating == 0 {
		in.ConditionRating = 8
	}
	if in.ConditionRating < 1 || in.ConditionRating > 10 {
		utils.Error(c, http.StatusBadRequest, "Condition rating must be between 1 and 10", nil)
		return
	}

	number := strings.ToUpper(strings.TrimSpace(in.BikeNumber))
	var exist int64
	config.DB.Model(&models.Bike{}).Where("bike_number = ?", number).Count(&exist)
	if exist > 0 {
		utils.Error(c, http.StatusBadRequest, "Bike number already registered", nil)
		return
	}

	purchaseDate := time.Now().UTC()
	if in.PurchaseDate != nil {
		purchaseDate = *in.PurchaseDate
	}

	bike := models.Bike{
		BikeNumber:      number,
		Brand:           in.Brand,
		Model:           in.Model,
		Year:            in.Year,
		BuyPrice:        *in.BuyPrice,
		Status:          models.BikeAvailable,
		PurchaseDate:    purchaseDate,
		ConditionRating: in.ConditionRating,
	}
	if err := config.DB.Create(&bike).Error; err != nil {
		if isUniqueViolation(err) {
			utils.Error(c, http.StatusBadRequest, "Bike number already registered", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to save bike", err)
		return
	}
	utils.Created(c, "Bike added", bike)
}

var bikeSortCols = map[string]string{
	"bike_number":   "bike_number",
	"brand":         "brand",
	"year":          "year",
	"buy_price":     "buy_price",
	"sell_price":    "sell_price",
	"purchase_date": "purchase_date",
	"days_to_sell":  "days_to_sell",
	"created_at":    "created_at",
}

func GetAllBikes(c *gin.Context) {
	p := parseListParams(c)
	q := config.DB.Model(&models.Bike{})

	if st := c.Query("status"); st != "" {
		q = q.Where("status = ?", st)
	}
	if b := c.Query("brand"); b != "" {
		q = q.Where("brand = ?", b)
	}
	q = applySearch(q, p.Search, []string{"bike_number", "model"})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch bikes", err)
		return
	}

	var bikes []models.Bike
	q = applySort(q, p.Sort, bikeSortCols, "id DESC")
	if err := paginate(q, p).Find(&bikes).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch bikes", err)
		return
	}
	listResponse(c, "Bikes fetched", bikes, total, p)
}

func GetBikeByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var bike models.Bike
	if err := config.DB.First(&bike, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Bike not found", nil)
		return
	}
	utils.Success(c, "Bike fetched", bike)
}

type BikeUpdateInput struct {
	Brand           *models.BikeBrand  `json:"brand"`
	Model           *string            `json:"model"`
	Year            *int               `json:"year"`
	BuyPrice        *float64           `json:"buy_price"`
	ConditionRating *int               `json:"condition_rating"`
	Status          *models.BikeStatus `json:"status"`
}

func UpdateBike(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var in BikeUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	var bike models.Bike
	if err := config.DB.First(&bike, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Bike not found", nil)
		return
	}

	if in.Brand != nil {
		if !models.ValidBrand(*in.Brand) {
			utils.Error(c, http.StatusBadRequest, "Unknown brand", nil)
			return
		}
		bike.Brand = *in.Brand
	}
	if in.Model != nil {
		bike.Model = *in.Model
	}
	if in.Year != nil {
		bike.Year = *in.Year
	}
	if in.BuyPrice != nil {
		if *in.BuyPrice < 0 {
			utils.Error(c, http.StatusBadRequest, "Buy price cannot be negative", nil)
			return
		}
		bike.BuyPrice = *in.BuyPrice
	}
	if in.ConditionRating != nil {
		if *in.ConditionRating < 1 || *in.ConditionRating > 10 {
			utils.Error(c, http.StatusBadRequest, "Condition rating must be between 1 and 10", nil)
			return
		}
		bike.ConditionRating = *in.ConditionRating
	}
	if in.Status != nil {
		// sold is only reachable through the sale workflow
		if *in.Status == models.BikeSold || bike.Status == models.BikeSold {
			utils.Error(c, http.StatusBadRequest, "Sold status is managed by the sale workflow", nil)
			return
		}
		if *in.Status != models.BikeAvailable && *in.Status != models.BikeReserved {
			utils.Error(c, http.StatusBadRequest, "Invalid status", nil)
			return
		}
		bike.Status = *in.Status
	}

	if err := config.DB.Save(&bike).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to update bike", err)
		return
	}
	utils.Success(c, "Bike updated", bike)
}

func DeleteBike(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var bike models.Bike
	if err := config.DB.First(&bike, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Bike not found", nil)
		return
	}

	var sales int64
	config.DB.Model(&models.Sale{}).Where("bike_id = ?", bike.ID).Count(&sales)
	if sales > 0 {
		utils.Error(c, http.StatusBadRequest, "Bike has sale records and cannot be deleted", nil)
		return
	}

	if err := config.DB.Delete(&bike).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to delete bike", err)
		return
	}
	utils.Success(c, "Bike deleted", nil)
}

func BikeStatsOverview(c *gin.Context) {
	var stats struct {
		Total         int64    `json:"total"`
		Available     int64    `json:"available"`
		Sold          int64    `json:"sold"`
		Reserved      int64    `json:"reserved"`
		StockValue    float64  `json:"stock_value"`
		TotalProfit   float64  `json:"total_profit"`
		AvgDaysToSell *float64 `json:"avg_days_to_sell"`
	}

	db := config.DB.Model(&models.Bike{})
	if err := db.Count(&stats.Total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to compute stats", err)
		return
	}
	config.DB.Model(&models.Bike{}).Where("status = ?", models.BikeAvailable).Count(&stats.Available)
	config.DB.Model(&models.Bike{}).Where("status = ?", models.BikeSold).Count(&stats.Sold)
	config.DB.Model(&models.Bike{}).Where("status = ?", models.BikeReserved).Count(&stats.Reserved)
	config.DB.Model(&models.Bike{}).Where("status <> ?", models.BikeSold).
		Select("COALESCE(SUM(buy_price), 0)").Scan(&stats.StockValue)
	config.DB.Model(&models.Bike{}).Where("status = ?", models.BikeSold).
		Select("COALESCE(SUM(profit), 0)").Scan(&stats.TotalProfit)
	config.DB.Model(&models.Bike{}).Where("days_to_sell IS NOT NULL").
		Select("AVG(days_to_sell)").Scan(&stats.AvgDaysToSell)

	utils.Success(c, "Inventory stats", stats)
}
