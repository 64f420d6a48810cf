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

type ExpenseInput struct {
	Category      models.ExpenseCategory `json:"category" binding:"required"`
	Amount        float64                `json:"amount" binding:"required,gt=0"`
	Date          *time.Time             `json:"date"`
	PaymentMethod string                 `json:"payment_method" binding:"required"`
	Description   string                 `json:"description"`
}

func CreateExpense(c *gin.Context) {
	var in ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if !models.ValidExpenseCategory(in.Category) {
		utils.Error(c, http.StatusBadRequest, "Unknown expense category", nil)
		return
	}

	date := time.Now().UTC()
	if in.Date != nil {
		date = in.Date.UTC()
	}
	exp := models.Expense{
		Category:      in.Category,
		Amount:        in.Amount,
		Date:          date,
		PaymentMethod: in.PaymentMethod,
		Description:   in.Description,
		RecordedBy:    currentUserName(c),
	}
	if err := config.DB.Create(&exp).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to save expense", err)
		return
	}
	utils.Created(c, "Expense added", exp)
}

var expenseSortCols = map[string]string{
	"amount":     "amount",
	"date":       "date",
	"category":   "category",
	"created_at": "created_at",
}

func GetAllExpenses(c *gin.Context) {
	p := parseListParams(c)
	q := config.DB.Model(&models.Expense{})

	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}
	q = applyDateRange(q, c, "date")
	q = applySearch(q, p.Search, []string{"description", "recorded_by"})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch expenses", err)
		return
	}

	var rows []models.Expense
	q = applySort(q, p.Sort, expenseSortCols, "date DESC, id DESC")
	if err := paginate(q, p).Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch expenses", err)
		return
	}
	listResponse(c, "Expenses fetched", rows, total, p)
}

func GetExpenseByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var exp models.Expense
	if err := config.DB.First(&exp, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Expense not found", nil)
		return
	}
	utils.Success(c, "Expense fetched", exp)
}

func UpdateExpense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var in ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if !models.ValidExpenseCategory(in.Category) {
		utils.Error(c, http.StatusBadRequest, "Unknown expense category", nil)
		return
	}
	var exp models.Expense
	if err := config.DB.First(&exp, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Expense not found", nil)
		return
	}
	exp.Category = in.Category
	exp.Amount = in.Amount
	if in.Date != nil {
		exp.Date = in.Date.UTC()
	}
	exp.PaymentMethod = in.PaymentMethod
	exp.Description = in.Description
	if err := config.DB.Save(&exp).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to update expense", err)
		return
	}
	utils.Success(c, "Expense updated", exp)
}

func DeleteExpense(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	res := config.DB.Delete(&models.Expense{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to delete expense", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Expense not found", nil)
		return
	}
	utils.Success(c, "Expense deleted", nil)
}

func ExpenseStatsOverview(c *gin.Context) {
	type categoryRow struct {
		Category models.ExpenseCategory `json:"category"`
		Count    int64                  `json:"count"`
		Total    float64                `json:"total"`
	}
	var stats struct {
		Count      int64         `json:"count"`
		Total      float64       `json:"total"`
		ByCategory []categoryRow `json:"by_category"`
	}

	q := applyDateRange(config.DB.Model(&models.Expense{}), c, "date")
	if err := q.Count(&stats.Count).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to compute stats", err)
		return
	}
	q = applyDateRange(config.DB.Model(&models.Expense{}), c, "date")
	q.Select("COALESCE(SUM(amount), 0)").Scan(&stats.Total)

	q = applyDateRange(config.DB.Model(&models.Expense{}), c, "date")
	q.Select("category, COUNT(*) as count, SUM(amount) as total").
		Group("category").Order("total DESC").Scan(&stats.ByCategory)

	utils.Success(c, "Expense stats", stats)
}
