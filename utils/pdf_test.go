package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
)

func TestWriteInvoicePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")

	sale := models.Sale{
		SaleNumber:    "SAL-202608-123",
		InvoiceNumber: "SB-2026-123",
		BuyerName:     "Ravi Kumar",
		BuyerPhone:    "9876543210",
		BuyerAddress:  "12 MG Road",
		SellingPrice:  130000,
		Discount:      5000,
		FinalAmount:   125000,
		PaymentMode:   models.PayCash,
		SaleDate:      time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Bike: models.Bike{
			BikeNumber: "KA01AB1234",
			Brand:      models.BrandHero,
			Model:      "Splendor Plus",
			Year:       2023,
		},
	}
	require.NoError(t, WriteInvoicePDF(path, sale))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteTablePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	headers := []string{"Number", "Brand", "Price"}
	widths := []float64{60, 60, 40}
	rows := [][]string{
		{"KA01AB1234", "Hero", "100000"},
		{"KA02CD5678", "Honda", "85000"},
	}
	require.NoError(t, WriteTablePDF(path, "Inventory", headers, widths, rows))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "125000.00", formatAmount(125000))
	assert.Equal(t, "99.50", formatAmount(99.5))
}
