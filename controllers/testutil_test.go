package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/config"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
)

// setupTestDB points the shared config.DB at a fresh in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every session on the same :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Bike{},
		&models.Customer{},
		&models.Sale{},
		&models.Payment{},
		&models.PaymentLog{},
		&models.Finance{},
		&models.FinanceTransaction{},
		&models.Expense{},
		&models.Revenue{},
	))

	config.DB = db
	return db
}

// newTestRouter registers the handlers under test behind a stub auth context.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Set("name", "Test Staff")
		c.Set("role", "admin")
	})

	api := r.Group("/api")
	api.POST("/auth/register", Register)
	api.POST("/auth/login", Login)
	api.POST("/bikes", CreateBike)
	api.GET("/bikes/:id", GetBikeByID)
	api.PUT("/bikes/:id", UpdateBike)
	api.DELETE("/bikes/:id", DeleteBike)
	api.POST("/customers", CreateCustomer)
	api.PUT("/customers/:id", UpdateCustomer)
	api.DELETE("/customers/:id", DeleteCustomer)
	api.POST("/sales", CreateSale)
	api.GET("/sales/:id", GetSaleByID)
	api.POST("/payments/:id/record", RecordPayment)
	api.GET("/payments/:id", GetPaymentByID)
	api.GET("/insights", GetInsights)
	api.GET("/insights/price-suggestion", PriceSuggestion)
	api.GET("/insights/demand-trend", DemandTrend)
	api.POST("/finance", CreateFinance)
	api.POST("/finance/:id/transactions", AddFinanceTransaction)
	api.DELETE("/finance/:id", DeleteFinance)
	api.POST("/expenses", CreateExpense)
	api.GET("/expenses", GetAllExpenses)
	api.GET("/expenses/stats/overview", ExpenseStatsOverview)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func mustCreateBike(t *testing.T, db *gorm.DB, number string, buyPrice float64, status models.BikeStatus) models.Bike {
	t.Helper()
	bike := models.Bike{
		BikeNumber:      number,
		Brand:           models.BrandHero,
		Model:           "Splendor Plus",
		Year:            2023,
		BuyPrice:        buyPrice,
		Status:          status,
		PurchaseDate:    mustParseTime(t, "2026-07-01T00:00:00Z"),
		ConditionRating: 8,
	}
	require.NoError(t, db.Create(&bike).Error)
	return bike
}

func mustParseTime(t *testing.T, s string) time.Time {
	t.Helper()
	out, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return out
}
