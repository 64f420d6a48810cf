package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
)

func TestCreateCustomer(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/customers", map[string]interface{}{
		"name":    "Anita Rao",
		"phone":   "9812345678",
		"address": "4 Beach Road",
		"email":   "anita@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var customer models.Customer
	require.NoError(t, db.Where("phone = ?", "9812345678").First(&customer).Error)
	assert.Equal(t, models.CustomerRegular, customer.CustomerType)
	assert.Zero(t, customer.TotalSpent)

	// same phone again is rejected
	w = doJSON(t, r, http.MethodPost, "/api/customers", map[string]interface{}{
		"name":    "Someone Else",
		"phone":   "9812345678",
		"address": "Elsewhere",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCustomerKeepsAggregates(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	customer := models.Customer{
		Name:             "Suresh",
		Phone:            "9800011122",
		Address:          "Old Lane",
		TotalSpent:       250000,
		TotalBikesBought: 2,
	}
	require.NoError(t, db.Create(&customer).Error)
	require.Equal(t, models.CustomerPremium, customer.CustomerType)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/customers/%d", customer.ID), map[string]interface{}{
		"address": "New Lane",
		"phone":   "1234567890", // ignored, phone is immutable
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Customer
	require.NoError(t, db.First(&got, customer.ID).Error)
	assert.Equal(t, "New Lane", got.Address)
	assert.Equal(t, "9800011122", got.Phone)
	assert.Equal(t, 250000.0, got.TotalSpent)
	assert.Equal(t, 2, got.TotalBikesBought)
	assert.Equal(t, models.CustomerPremium, got.CustomerType)
}

func TestDeleteCustomerGuardedBySales(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	customer := models.Customer{Name: "Guarded", Phone: "9811100000", Address: "X"}
	require.NoError(t, db.Create(&customer).Error)

	sale := models.Sale{
		SaleNumber:    "SAL-202608-001",
		InvoiceNumber: "SB-2026-801",
		CustomerID:    customer.ID,
		BuyerName:     customer.Name,
		BuyerPhone:    customer.Phone,
		BuyerAddress:  customer.Address,
		SellingPrice:  60000,
		FinalAmount:   60000,
		PaymentMode:   models.PayCash,
		SaleDate:      mustParseTime(t, "2026-08-01T09:00:00Z"),
	}
	require.NoError(t, db.Create(&sale).Error)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/customers/%d", customer.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Customer{}).Where("id = ?", customer.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// a customer with no sales can go
	loose := models.Customer{Name: "Loose", Phone: "9822200000", Address: "Y"}
	require.NoError(t, db.Create(&loose).Error)
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/customers/%d", loose.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	db.Model(&models.Customer{}).Where("id = ?", loose.ID).Count(&count)
	assert.Zero(t, count)
}
