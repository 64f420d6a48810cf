package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
)

func TestAddFinanceTransactionBumpsCounters(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	fin := models.Finance{Name: "Shriram Finance", CompanyName: "Shriram", Phone: "9845600000"}
	require.NoError(t, db.Create(&fin).Error)

	for _, amount := range []string{"45000.50", "30000"} {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/finance/%d/transactions", fin.ID), map[string]interface{}{
			"amount": amount,
			"note":   "Disbursement",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	var got models.Finance
	require.NoError(t, db.First(&got, fin.ID).Error)
	assert.Equal(t, 2, got.TotalTransactions)
	assert.True(t, got.TotalAmountPaid.Equal(decimal.RequireFromString("75000.50")),
		"got %s", got.TotalAmountPaid)
	require.NotNil(t, got.LastPaymentDate)

	var txns int64
	db.Model(&models.FinanceTransaction{}).Where("finance_id = ?", fin.ID).Count(&txns)
	assert.Equal(t, int64(2), txns)
}

func TestAddFinanceTransactionRejectsNonPositive(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	fin := models.Finance{Name: "Bajaj Finserv"}
	require.NoError(t, db.Create(&fin).Error)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/finance/%d/transactions", fin.ID), map[string]interface{}{
		"amount": "-100",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var got models.Finance
	require.NoError(t, db.First(&got, fin.ID).Error)
	assert.Zero(t, got.TotalTransactions)
}

func TestDeleteFinanceGuardedByTransactions(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	fin := models.Finance{Name: "HDFC"}
	require.NoError(t, db.Create(&fin).Error)

	txn := models.FinanceTransaction{
		FinanceID:  fin.ID,
		Amount:     decimal.NewFromInt(10000),
		Date:       mustParseTime(t, "2026-08-01T00:00:00Z"),
		RecordedBy: "Test Staff",
	}
	require.NoError(t, db.Create(&txn).Error)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/finance/%d", fin.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Finance{}).Where("id = ?", fin.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
