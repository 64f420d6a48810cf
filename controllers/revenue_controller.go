package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/config"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/utils"
)

type RevenueInput struct {
	Source        models.RevenueSource `json:"source" binding:"required"`
	Amount        float64              `json:"amount" binding:"required,gt=0"`
	Date          *time.Time           `json:"date"`
	PaymentMethod string               `json:"payment_method" binding:"required"`
	Description   string               `json:"description"`
}

func CreateRevenue(c *gin.Context) {
	var in RevenueInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if !models.ValidRevenueSource(in.Source) {
		utils.Error(c, http.StatusBadRequest, "Unknown revenue source", nil)
		return
	}

	date := time.Now().UTC()
	if in.Date != nil {
		date = in.Date.UTC()
	}
	rev := models.Revenue{
		Source:        in.Source,
		Amount:        in.Amount,
		Date:          date,
		PaymentMethod: in.PaymentMethod,
		Description:   in.Description,
		RecordedBy:    currentUserName(c),
	}
	if err := config.DB.Create(&rev).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to save revenue", err)
		return
	}
	utils.Created(c, "Revenue added", rev)
}

var revenueSortCols = map[string]string{
	"amount":     "amount",
	"date":       "date",
	"source":     "source",
	"created_at": "created_at",
}

func GetAllRevenue(c *gin.Context) {
	p := parseListParams(c)
	q := config.DB.Model(&models.Revenue{})

	if src := c.Query("source"); src != "" {
		q = q.Where("source = ?", src)
	}
	q = applyDateRange(q, c, "date")
	q = applySearch(q, p.Search, []string{"description", "recorded_by"})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch revenue", err)
		return
	}

	var rows []models.Revenue
	q = applySort(q, p.Sort, revenueSortCols, "date DESC, id DESC")
	if err := paginate(q, p).Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch revenue", err)
		return
	}
	listResponse(c, "Revenue fetched", rows, total, p)
}

func GetRevenueByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var rev models.Revenue
	if err := config.DB.First(&rev, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Revenue not found", nil)
		return
	}
	utils.Success(c, "Revenue fetched", rev)
}

func UpdateRevenue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var in RevenueInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if !models.ValidRevenueSource(in.Source) {
		utils.Error(c, http.StatusBadRequest, "Unknown revenue source", nil)
		return
	}
	var rev models.Revenue
	if err := config.DB.First(&rev, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Revenue not found", nil)
		return
	}
	rev.Source = in.Source
	rev.Amount = in.Amount
	if in.Date != nil {
		rev.Date = in.Date.UTC()
	}
	rev.PaymentMethod = in.PaymentMethod
	rev.Description = in.Description
	if err := config.DB.Save(&rev).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to update revenue", err)
		return
	}
	utils.Success(c, "Revenue updated", rev)
}

func DeleteRevenue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	res := config.DB.Delete(&models.Revenue{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to delete revenue", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Revenue not found", nil)
		return
	}
	utils.Success(c, "Revenue deleted", nil)
}

func RevenueStatsOverview(c *gin.Context) {
	type sourceRow struct {
		Source models.RevenueSource `json:"source"`
		Count  int64                `json:"count"`
		Total  float64              `json:"total"`
	}
	var stats struct {
		Count    int64       `json:"count"`
		Total    float64     `json:"total"`
		BySource []sourceRow `json:"by_source"`
	}

	q := applyDateRange(config.DB.Model(&models.Revenue{}), c, "date")
	if err := q.Count(&stats.Count).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to compute stats", err)
		return
	}
	q = applyDateRange(config.DB.Model(&models.Revenue{}), c, "date")
	q.Select("COALESCE(SUM(amount), 0)").Scan(&stats.Total)

	q = applyDateRange(config.DB.Model(&models.Revenue{}), c, "date")
	q.Select("source, COUNT(*) as count, SUM(amount) as total").
		Group("source").Order("total DESC").Scan(&stats.BySource)

	utils.Success(c, "Revenue stats", stats)
}
