package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/config"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/utils"
)

var errExceedsRemaining = errors.New("amount exceeds remaining balance")

var paymentSortCols = map[string]string{
	"total_amount":     "total_amount",
	"paid_amount":      "paid_amount",
	"remaining_amount": "remaining_amount",
	"status":           "status",
	"created_at":       "created_at",
}

func GetAllPayments(c *gin.Context) {
	p := parseListParams(c)
	q := config.DB.Model(&models.Payment{})

	if st := c.Query("status"); st != "" {
		q = q.Where("status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch payments", err)
		return
	}

	var payments []models.Payment
	q = applySort(q, p.Sort, paymentSortCols, "id DESC")
	if err := paginate(q, p).Preload("Sale").Find(&payments).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch payments", err)
		return
	}
	listResponse(c, "Payments fetched", payments, total, p)
}

func GetPaymentByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var payment models.Payment
	if err := config.DB.Preload("Sale").Preload("Logs").First(&payment, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Payment not found", nil)
		return
	}
	utils.Success(c, "Payment fetched", payment)
}

type RecordPaymentInput struct {
	Amount float64    `json:"amount" binding:"required,gt=0"`
	Method string     `json:"method" binding:"required"`
	Date   *time.Time `json:"date"`
	Note   string     `json:"note"`
}

// RecordPayment appends one ledger entry and bumps PaidAmount. Entries are
// never edited or removed afterwards.
func RecordPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var in RecordPaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	paidAt := time.Now().UTC()
	if in.Date != nil {
		paidAt = in.Date.UTC()
	}
	recordedBy := currentUserName(c)

	var payment models.Payment
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payment, id).Error; err != nil {
			return err
		}

		// The remaining-balance guard lives in the WHERE clause and the
		// increment is a SQL expression, so two concurrent records cannot
		// both pass a stale pre-check; the matched row stays locked for the
		// rest of the transaction.
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND remaining_amount >= ?", payment.ID, in.Amount).
			UpdateColumn("paid_amount", gorm.Expr("paid_amount + ?", in.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errExceedsRemaining
		}

		entry := models.PaymentLog{
			PaymentID:  payment.ID,
			Amount:     in.Amount,
			Method:     in.Method,
			PaidAt:     paidAt,
			Note:       in.Note,
			RecordedBy: recordedBy,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		if err := tx.First(&payment, payment.ID).Error; err != nil {
			return err
		}
		return tx.Save(&payment).Error // BeforeSave recomputes remaining + status
	})

	if txErr != nil {
		switch {
		case errors.Is(txErr, gorm.ErrRecordNotFound):
			utils.Error(c, http.StatusNotFound, "Payment not found", nil)
		case errors.Is(txErr, errExceedsRemaining):
			utils.Error(c, http.StatusBadRequest, "Amount exceeds remaining balance", nil)
		default:
			utils.Error(c, http.StatusInternalServerError, "Failed to record payment", txErr)
		}
		return
	}

	if err := config.DB.Preload("Logs").First(&payment, payment.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Payment recorded but could not be loaded", err)
		return
	}
	utils.Success(c, "Payment recorded", payment)
}

func PaymentStatsOverview(c *gin.Context) {
	var stats struct {
		Total       int64   `json:"total"`
		Pending     int64   `json:"pending"`
		Partial     int64   `json:"partial"`
		Completed   int64   `json:"completed"`
		Outstanding float64 `json:"outstanding"`
		Collected   float64 `json:"collected"`
	}
	config.DB.Model(&models.Payment{}).Count(&stats.Total)
	config.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentPending).Count(&stats.Pending)
	config.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentPartial).Count(&stats.Partial)
	config.DB.Model(&models.Payment{}).Where("status = ?", models.PaymentCompleted).Count(&stats.Completed)
	config.DB.Model(&models.Payment{}).Select("COALESCE(SUM(remaining_amount), 0)").Scan(&stats.Outstanding)
	config.DB.Model(&models.Payment{}).Select("COALESCE(SUM(paid_amount), 0)").Scan(&stats.Collected)

	utils.Success(c, "Payment stats", stats)
}
