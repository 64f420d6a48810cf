package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/config"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/utils"
)

type SaleInput struct {
	BikeID       uint               `json:"bike_id" binding:"required"`
	BuyerName    string             `json:"buyer_name" binding:"required"`
	BuyerPhone   string             `json:"buyer_phone" binding:"required"`
	BuyerAddress string             `json:"buyer_address" binding:"required"`
	SellingPrice float64            `json:"selling_price" binding:"required,gt=0"`
	Discount     float64            `json:"discount"`
	PaymentMode  models.PaymentMode `json:"payment_mode" binding:"required"`
	SaleDate     *time.Time         `json:"sale_date"`
	// When omitted the payment record is bootstrapped fully paid, matching the
	// behavior this system always had. Callers that actually received less can
	// pass the real amount and settle the rest through the payment ledger.
	PaidNow *float64 `json:"paid_now"`
}

var errBikeNotAvailable = errors.New("bike is not available for sale")

// CreateSale runs the whole multi-entity sale sequence inside one transaction:
// customer upsert, sale insert, bike status transition, customer aggregates,
// payment bootstrap. The bike claim is a conditional update checked through
// RowsAffected, so two concurrent attempts on the same bike cannot both win.
func CreateSale(c *gin.Context) {
	var in SaleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if !models.ValidPaymentMode(in.PaymentMode) {
		utils.Error(c, http.StatusBadRequest, "Invalid payment mode", nil)
		return
	}
	if in.Discount < 0 {
		utils.Error(c, http.StatusBadRequest, "Discount cannot be negative", nil)
		return
	}
	finalAmount := in.SellingPrice - in.Discount
	if finalAmount < 0 {
		utils.Error(c, http.StatusBadRequest, "Discount exceeds selling price", nil)
		return
	}
	if in.PaidNow != nil && (*in.PaidNow < 0 || *in.PaidNow > finalAmount) {
		utils.Error(c, http.StatusBadRequest, "paid_now must be between 0 and the final amount", nil)
		return
	}

	saleDate := time.Now().UTC()
	if in.SaleDate != nil {
		saleDate = in.SaleDate.UTC()
	}
	recordedBy := currentUserName(c)

	// Random 3-digit suffixes collide against the unique indexes sooner or
	// later, so the whole transaction retries on a duplicate key.
	const maxRetries = 3
	var sale models.Sale
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		sale = models.Sale{}
		lastErr = config.DB.Transaction(func(tx *gorm.DB) error {
			var bike models.Bike
			if err := tx.First(&bike, in.BikeID).Error; err != nil {
				return err
			}
			if bike.Status != models.BikeAvailable {
				return errBikeNotAvailable
			}

			// 1. find or create the customer by phone
			var customer models.Customer
			err := tx.Where("phone = ?", in.BuyerPhone).First(&customer).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				customer = models.Customer{
					Name:    in.BuyerName,
					Phone:   in.BuyerPhone,
					Address: in.BuyerAddress,
				}
				if err := tx.Create(&customer).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			// 2. derived money fields
			profit := finalAmount - bike.BuyPrice
			profitPercent := 0.0
			if bike.BuyPrice > 0 {
				profitPercent = profit / bike.BuyPrice * 100
			}

			// 3+4. numbers and the sale record
			sale = models.Sale{
				SaleNumber:    utils.GenSaleNumber(saleDate),
				InvoiceNumber: utils.GenInvoiceNumber(saleDate),
				BikeID:        bike.ID,
				CustomerID:    customer.ID,
				BuyerName:     in.BuyerName,
				BuyerPhone:    in.BuyerPhone,
				BuyerAddress:  in.BuyerAddress,
				SellingPrice:  in.SellingPrice,
				Discount:      in.Discount,
				FinalAmount:   finalAmount,
				Profit:        profit,
				ProfitPercent: profitPercent,
				PaymentMode:   in.PaymentMode,
				SaleDate:      saleDate,
			}
			if err := tx.Create(&sale).Error; err != nil {
				return err
			}

			// 5. claim the bike; RowsAffected 0 means someone else sold it first
			res := tx.Model(&models.Bike{}).
				Where("id = ? AND status = ?", bike.ID, models.BikeAvailable).
				Update("status", models.BikeSold)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errBikeNotAvailable
			}

			if err := tx.First(&bike, bike.ID).Error; err != nil {
				return err
			}
			// the bike keeps the amount actually realized, so its own
			// profit fields agree with the sale's
			bike.SellPrice = &finalAmount
			bike.SellDate = &saleDate
			bike.SaleID = &sale.ID
			if err := tx.Save(&bike).Error; err != nil { // BeforeSave fills profit + days to sell
				return err
			}

			// 6. customer running aggregates as SQL-expression increments, so a
			// concurrent sale to the same customer cannot lose an update. The
			// reload sees the incremented row under its lock and the Save runs
			// the tier recompute through BeforeSave.
			if err := tx.Model(&models.Customer{}).Where("id = ?", customer.ID).
				UpdateColumns(map[string]interface{}{
					"total_spent":        gorm.Expr("total_spent + ?", finalAmount),
					"total_bikes_bought": gorm.Expr("total_bikes_bought + 1"),
					"last_purchase_date": saleDate,
					"updated_at":         time.Now().UTC(),
				}).Error; err != nil {
				return err
			}
			if err := tx.First(&customer, customer.ID).Error; err != nil {
				return err
			}
			if err := tx.Save(&customer).Error; err != nil {
				return err
			}

			// 8. payment bootstrap
			if finalAmount > 0 {
				paid := finalAmount
				if in.PaidNow != nil {
					paid = *in.PaidNow
				}
				payment := models.Payment{
					SaleID:      sale.ID,
					TotalAmount: finalAmount,
					PaidAmount:  paid,
				}
				if paid > 0 {
					payment.Logs = []models.PaymentLog{{
						Amount:     paid,
						Method:     string(in.PaymentMode),
						PaidAt:     saleDate,
						Note:       "Received at sale",
						RecordedBy: recordedBy,
					}}
				}
				if err := tx.Create(&payment).Error; err != nil {
					return err
				}
			}
			return nil
		})

		if lastErr == nil {
			break
		}
		if isUniqueViolation(lastErr) {
			continue
		}
		break
	}

	if lastErr != nil {
		switch {
		case errors.Is(lastErr, gorm.ErrRecordNotFound):
			utils.Error(c, http.StatusNotFound, "Bike not found", nil)
		case errors.Is(lastErr, errBikeNotAvailable):
			utils.Error(c, http.StatusBadRequest, "Bike is not available for sale", nil)
		default:
			utils.Error(c, http.StatusInternalServerError, "Failed to create sale", lastErr)
		}
		return
	}

	// 7. invoice document, outside the money transaction. A render failure
	// leaves the sale valid with no invoice path.
	if path, err := renderInvoice(sale.ID); err != nil {
		log.Printf("invoice render failed for sale %d: %v", sale.ID, err)
	} else if err := config.DB.Model(&models.Sale{}).
		Where("id = ?", sale.ID).Update("invoice_path", path).Error; err != nil {
		log.Printf("invoice path update failed for sale %d: %v", sale.ID, err)
	}

	var created models.Sale
	if err := config.DB.Preload("Bike").Preload("Customer").First(&created, sale.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Sale created but could not be loaded", err)
		return
	}
	utils.Created(c, "Sale completed", created)
}

func invoiceDir() string {
	if d := os.Getenv("INVOICE_DIR"); d != "" {
		return d
	}
	return "invoices"
}

func renderInvoice(saleID uint) (string, error) {
	var sale models.Sale
	if err := config.DB.Preload("Bike").First(&sale, saleID).Error; err != nil {
		return "", err
	}
	dir := invoiceDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, sale.InvoiceNumber+".pdf")
	if err := utils.WriteInvoicePDF(path, sale); err != nil {
		return "", err
	}
	return path, nil
}

var saleSortCols = map[string]string{
	"sale_number":    "sale_number",
	"sale_date":      "sale_date",
	"final_amount":   "final_amount",
	"profit":         "profit",
	"profit_percent": "profit_percent",
	"created_at":     "created_at",
}

func GetAllSales(c *gin.Context) {
	p := parseListParams(c)
	q := config.DB.Model(&models.Sale{})

	if m := c.Query("payment_mode"); m != "" {
		q = q.Where("payment_mode = ?", m)
	}
	if cid := c.Query("customer_id"); cid != "" {
		q = q.Where("customer_id = ?", cid)
	}
	q = applyDateRange(q, c, "sale_date")
	q = applySearch(q, p.Search, []string{"sale_number", "invoice_number", "buyer_name", "buyer_phone"})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch sales", err)
		return
	}

	var sales []models.Sale
	q = applySort(q, p.Sort, saleSortCols, "id DESC")
	if err := paginate(q, p).Preload("Bike").Preload("Customer").Find(&sales).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch sales", err)
		return
	}
	listResponse(c, "Sales fetched", sales, total, p)
}

func GetSaleByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var sale models.Sale
	if err := config.DB.Preload("Bike").Preload("Customer").First(&sale, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Sale not found", nil)
		return
	}
	utils.Success(c, "Sale fetched", sale)
}

// DownloadInvoice serves the persisted invoice PDF for a sale.
func DownloadInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var sale models.Sale
	if err := config.DB.First(&sale, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Sale not found", nil)
		return
	}
	if sale.InvoicePath == "" {
		utils.Error(c, http.StatusNotFound, "Invoice not generated for this sale", nil)
		return
	}
	if _, err := os.Stat(sale.InvoicePath); err != nil {
		utils.Error(c, http.StatusNotFound, "Invoice file missing", nil)
		return
	}
	c.FileAttachment(sale.InvoicePath, sale.InvoiceNumber+".pdf")
}

func SaleStatsOverview(c *gin.Context) {
	var stats struct {
		Count       int64   `json:"count"`
		Revenue     float64 `json:"revenue"`
		TotalProfit float64 `json:"total_profit"`
		AvgProfit   float64 `json:"avg_profit"`
	}
	q := applyDateRange(config.DB.Model(&models.Sale{}), c, "sale_date")
	if err := q.Count(&stats.Count).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to compute stats", err)
		return
	}
	q = applyDateRange(config.DB.Model(&models.Sale{}), c, "sale_date")
	q.Select("COALESCE(SUM(final_amount), 0)").Scan(&stats.Revenue)
	q = applyDateRange(config.DB.Model(&models.Sale{}), c, "sale_date")
	q.Select("COALESCE(SUM(profit), 0)").Scan(&stats.TotalProfit)
	if stats.Count > 0 {
		stats.AvgProfit = stats.TotalProfit / float64(stats.Count)
	}
	utils.Success(c, "Sales stats", stats)
}
