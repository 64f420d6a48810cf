package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
	"gorm.io/gorm"
)

func mustCreatePayment(t *testing.T, db *gorm.DB, total, paid float64) models.Payment {
	t.Helper()
	sale := models.Sale{
		SaleNumber:    fmt.Sprintf("SAL-202609-%03d", paymentSeq(t)),
		InvoiceNumber: fmt.Sprintf("SB-2026-%03d", paymentSeq(t)),
		BuyerName:     "Ledger Buyer",
		BuyerPhone:    "9000000001",
		BuyerAddress:  "Somewhere",
		SellingPrice:  total,
		FinalAmount:   total,
		PaymentMode:   models.PayCash,
		SaleDate:      mustParseTime(t, "2026-08-15T10:00:00Z"),
	}
	require.NoError(t, db.Create(&sale).Error)

	payment := models.Payment{SaleID: sale.ID, TotalAmount: total, PaidAmount: paid}
	if paid > 0 {
		payment.Logs = []models.PaymentLog{{
			Amount: paid,
			Method: "cash",
			PaidAt: sale.SaleDate,
		}}
	}
	require.NoError(t, db.Create(&payment).Error)
	return payment
}

var seqCounter int

func paymentSeq(t *testing.T) int {
	t.Helper()
	seqCounter++
	return seqCounter % 1000
}

func TestRecordPayment(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	payment := mustCreatePayment(t, db, 100000, 40000)
	require.Equal(t, models.PaymentPartial, payment.Status)
	require.Equal(t, 60000.0, payment.RemainingAmount)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/payments/%d/record", payment.ID), map[string]interface{}{
		"amount": 60000,
		"method": "upi",
		"note":   "Final settlement",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Payment
	require.NoError(t, db.Preload("Logs").First(&got, payment.ID).Error)
	assert.Equal(t, 100000.0, got.PaidAmount)
	assert.Equal(t, 0.0, got.RemainingAmount)
	assert.Equal(t, models.PaymentCompleted, got.Status)
	require.Len(t, got.Logs, 2)
	assert.Equal(t, 60000.0, got.Logs[1].Amount)
	assert.Equal(t, "upi", got.Logs[1].Method)
	assert.Equal(t, "Test Staff", got.Logs[1].RecordedBy)
}

func TestRecordPaymentExceedsRemaining(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	payment := mustCreatePayment(t, db, 100000, 80000)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/payments/%d/record", payment.ID), map[string]interface{}{
		"amount": 25000,
		"method": "cash",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// nothing recorded, nothing mutated
	var got models.Payment
	require.NoError(t, db.Preload("Logs").First(&got, payment.ID).Error)
	assert.Equal(t, 80000.0, got.PaidAmount)
	assert.Equal(t, 20000.0, got.RemainingAmount)
	assert.Equal(t, models.PaymentPartial, got.Status)
	assert.Len(t, got.Logs, 1)
}

func TestRecordPaymentExactRemaining(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	payment := mustCreatePayment(t, db, 100000, 60000)

	// equal to the remaining balance passes the guard
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/payments/%d/record", payment.ID), map[string]interface{}{
		"amount": 40000,
		"method": "cash",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Payment
	require.NoError(t, db.First(&got, payment.ID).Error)
	assert.Equal(t, 100000.0, got.PaidAmount)
	assert.Equal(t, 0.0, got.RemainingAmount)
	assert.Equal(t, models.PaymentCompleted, got.Status)

	// once settled, any further amount is rejected by the same guard
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/payments/%d/record", payment.ID), map[string]interface{}{
		"amount": 1,
		"method": "cash",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, db.Preload("Logs").First(&got, payment.ID).Error)
	assert.Equal(t, 100000.0, got.PaidAmount)
	assert.Len(t, got.Logs, 2)
}

func TestRecordPaymentValidation(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	payment := mustCreatePayment(t, db, 50000, 0)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/payments/%d/record", payment.ID), map[string]interface{}{
		"amount": -500,
		"method": "cash",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/payments/99999/record", map[string]interface{}{
		"amount": 500,
		"method": "cash",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPaymentIncludesLogs(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	payment := mustCreatePayment(t, db, 75000, 75000)
	require.Equal(t, models.PaymentCompleted, payment.Status)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/payments/%d", payment.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(0), data["remaining_amount"])
	logs, ok := data["logs"].([]interface{})
	require.True(t, ok)
	assert.Len(t, logs, 1)
}
