package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/config"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/utils"
)

type FinanceInput struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	CompanyName string `json:"company_name"`
}

func CreateFinance(c *gin.Context) {
	var in FinanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	fin := models.Finance{
		Name:        in.Name,
		Phone:       in.Phone,
		CompanyName: in.CompanyName,
	}
	if err := config.DB.Create(&fin).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to save financier", err)
		return
	}
	utils.Created(c, "Financier added", fin)
}

var financeSortCols = map[string]string{
	"name":               "name",
	"total_amount_paid":  "total_amount_paid",
	"total_transactions": "total_transactions",
	"last_payment_date":  "last_payment_date",
	"created_at":         "created_at",
}

func GetAllFinance(c *gin.Context) {
	p := parseListParams(c)
	q := config.DB.Model(&models.Finance{})
	q = applySearch(q, p.Search, []string{"name", "company_name", "phone"})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch financiers", err)
		return
	}

	var rows []models.Finance
	q = applySort(q, p.Sort, financeSortCols, "id DESC")
	if err := paginate(q, p).Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch financiers", err)
		return
	}
	listResponse(c, "Financiers fetched", rows, total, p)
}

func GetFinanceByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var fin models.Finance
	if err := config.DB.First(&fin, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Financier not found", nil)
		return
	}
	utils.Success(c, "Financier fetched", fin)
}

func UpdateFinance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var in FinanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	var fin models.Finance
	if err := config.DB.First(&fin, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Financier not found", nil)
		return
	}
	fin.Name = in.Name
	fin.Phone = in.Phone
	fin.CompanyName = in.CompanyName
	if err := config.DB.Save(&fin).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to update financier", err)
		return
	}
	utils.Success(c, "Financier updated", fin)
}

func DeleteFinance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var fin models.Finance
	if err := config.DB.First(&fin, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Financier not found", nil)
		return
	}
	var txns int64
	config.DB.Model(&models.FinanceTransaction{}).Where("finance_id = ?", fin.ID).Count(&txns)
	if txns > 0 {
		utils.Error(c, http.StatusBadRequest, "Financier has transactions and cannot be deleted", nil)
		return
	}
	if err := config.DB.Delete(&fin).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to delete financier", err)
		return
	}
	utils.Success(c, "Financier deleted", nil)
}

type FinanceTxnInput struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	SaleID *uint           `json:"sale_id"`
	Date   *time.Time      `json:"date"`
	Note   string          `json:"note"`
}

// AddFinanceTransaction appends a ledger entry and bumps the parent's
// materialized counters inside the same transaction, so they cannot drift
// from the writes that feed them.
func AddFinanceTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var in FinanceTxnInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if in.Amount.IsNegative() || in.Amount.IsZero() {
		utils.Error(c, http.StatusBadRequest, "Amount must be positive", nil)
		return
	}

	date := time.Now().UTC()
	if in.Date != nil {
		date = in.Date.UTC()
	}
	recordedBy := currentUserName(c)

	var txn models.FinanceTransaction
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var fin models.Finance
		if err := tx.First(&fin, id).Error; err != nil {
			return err
		}

		txn = models.FinanceTransaction{
			FinanceID:  fin.ID,
			Amount:     in.Amount,
			SaleID:     in.SaleID,
			Date:       date,
			Note:       in.Note,
			RecordedBy: recordedBy,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		// SQL-expression increments so concurrent appends cannot lose a count
		return tx.Model(&models.Finance{}).Where("id = ?", fin.ID).
			UpdateColumns(map[string]interface{}{
				"total_amount_paid":  gorm.Expr("total_amount_paid + ?", in.Amount),
				"total_transactions": gorm.Expr("total_transactions + 1"),
				"last_payment_date":  date,
				"updated_at":         time.Now().UTC(),
			}).Error
	})

	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Financier not found", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to record transaction", txErr)
		return
	}
	utils.Created(c, "Transaction recorded", txn)
}

func GetFinanceTransactions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var fin models.Finance
	if err := config.DB.First(&fin, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Financier not found", nil)
		return
	}

	var rows []models.FinanceTransaction
	q := config.DB.Where("finance_id = ?", fin.ID).Order("date DESC, id DESC")
	q = applyDateRange(q, c, "date")
	if err := q.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch transactions", err)
		return
	}
	utils.Success(c, "Transactions fetched", rows)
}

func FinanceStatsOverview(c *gin.Context) {
	var stats struct {
		Financiers   int64           `json:"financiers"`
		Transactions int64           `json:"transactions"`
		TotalPaid    decimal.Decimal `json:"total_paid"`
	}
	config.DB.Model(&models.Finance{}).Count(&stats.Financiers)
	config.DB.Model(&models.FinanceTransaction{}).Count(&stats.Transactions)

	var sum decimal.NullDecimal
	config.DB.Model(&models.FinanceTransaction{}).Select("SUM(amount)").Scan(&sum)
	if sum.Valid {
		stats.TotalPaid = sum.Decimal
	}

	utils.Success(c, "Finance stats", stats)
}
