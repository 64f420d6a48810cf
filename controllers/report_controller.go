package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/config"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/utils"
)

// Report endpoints project the listing filters into json, an excel workbook or
// a paginated pdf table. Generated files live in the OS temp dir under a uuid
// name and are removed once the response is written.

func reportFormat(c *gin.Context) string {
	f := c.DefaultQuery("format", "json")
	switch f {
	case "json", "excel", "pdf":
		return f
	}
	return ""
}

func streamExcel(c *gin.Context, filename, sheet string, headers []string, rows [][]interface{}) {
	tmp := filepath.Join(os.TempDir(), uuid.NewString()+".xlsx")
	if err := utils.WriteExcel(tmp, sheet, headers, rows); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to generate report", err)
		return
	}
	defer os.Remove(tmp)
	c.FileAttachment(tmp, filename)
}

func streamPDF(c *gin.Context, filename, title string, headers []string, widths []float64, rows [][]string) {
	tmp := filepath.Join(os.TempDir(), uuid.NewString()+".pdf")
	if err := utils.WriteTablePDF(tmp, title, headers, widths, rows); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to generate report", err)
		return
	}
	defer os.Remove(tmp)
	c.FileAttachment(tmp, filename)
}

func money(v float64) string { return fmt.Sprintf("%.2f", v) }

// ===== inventory report =====

func ReportBikes(c *gin.Context) {
	format := reportFormat(c)
	if format == "" {
		utils.Error(c, http.StatusBadRequest, "format must be json, excel or pdf", nil)
		return
	}

	p := parseListParams(c)
	q := config.DB.Model(&models.Bike{})
	if st := c.Query("status"); st != "" {
		q = q.Where("status = ?", st)
	}
	if b := c.Query("brand"); b != "" {
		q = q.Where("brand = ?", b)
	}
	q = applySearch(q, p.Search, []string{"bike_number", "model"})
	q = applySort(q, p.Sort, bikeSortCols, "id DESC")

	var bikes []models.Bike
	if err := q.Find(&bikes).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch bikes", err)
		return
	}

	if format == "json" {
		utils.Success(c, "Inventory report", bikes)
		return
	}

	headers := []string{"Bike No", "Brand", "Model", "Year", "Buy Price", "Sell Price", "Status", "Days To Sell"}
	if format == "excel" {
		rows := make([][]interface{}, 0, len(bikes))
		for _, b := range bikes {
			sell, days := "", ""
			if b.SellPrice != nil {
				sell = money(*b.SellPrice)
			}
			if b.DaysToSell != nil {
				days = fmt.Sprintf("%d", *b.DaysToSell)
			}
			rows = append(rows, []interface{}{
				b.BikeNumber, string(b.Brand), b.Model, b.Year,
				b.BuyPrice, sell, string(b.Status), days,
			})
		}
		streamExcel(c, "inventory-report.xlsx", "Inventory", headers, rows)
		return
	}

	widths := []float64{40, 35, 45, 20, 35, 35, 30, 30}
	rows := make([][]string, 0, len(bikes))
	for _, b := range bikes {
		sell, days := "-", "-"
		if b.SellPrice != nil {
			sell = money(*b.SellPrice)
		}
		if b.DaysToSell != nil {
			days = fmt.Sprintf("%d", *b.DaysToSell)
		}
		rows = append(rows, []string{
			b.BikeNumber, string(b.Brand), b.Model, fmt.Sprintf("%d", b.Year),
			money(b.BuyPrice), sell, string(b.Status), days,
		})
	}
	streamPDF(c, "inventory-report.pdf", "Inventory Report", headers, widths, rows)
}

// ===== sales report =====

func ReportSales(c *gin.Context) {
	format := reportFormat(c)
	if format == "" {
		utils.Error(c, http.StatusBadRequest, "format must be json, excel or pdf", nil)
		return
	}

	p := parseListParams(c)
	q := config.DB.Model(&models.Sale{})
	if m := c.Query("payment_mode"); m != "" {
		q = q.Where("payment_mode = ?", m)
	}
	q = applyDateRange(q, c, "sale_date")
	q = applySearch(q, p.Search, []string{"sale_number", "invoice_number", "buyer_name"})
	q = applySort(q, p.Sort, saleSortCols, "sale_date DESC, id DESC")

	var sales []models.Sale
	if err := q.Preload("Bike").Find(&sales).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch sales", err)
		return
	}

	if format == "json" {
		utils.Success(c, "Sales report", sales)
		return
	}

	headers := []string{"Sale No", "Date", "Bike", "Buyer", "Final Amount", "Profit", "Profit %", "Payment"}
	if format == "excel" {
		rows := make([][]interface{}, 0, len(sales))
		for _, s := range sales {
			rows = append(rows, []interface{}{
				s.SaleNumber, s.SaleDate.Format("2006-01-02"),
				fmt.Sprintf("%s %s", s.Bike.Brand, s.Bike.Model), s.BuyerName,
				s.FinalAmount, s.Profit, s.ProfitPercent, string(s.PaymentMode),
			})
		}
		streamExcel(c, "sales-report.xlsx", "Sales", headers, rows)
		return
	}

	widths := []float64{38, 26, 50, 45, 32, 32, 24, 23}
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{
			s.SaleNumber, s.SaleDate.Format("2006-01-02"),
			fmt.Sprintf("%s %s", s.Bike.Brand, s.Bike.Model), s.BuyerName,
			money(s.FinalAmount), money(s.Profit),
			fmt.Sprintf("%.1f", s.ProfitPercent), string(s.PaymentMode),
		})
	}
	streamPDF(c, "sales-report.pdf", "Sales Report", headers, widths, rows)
}

// ===== expense / revenue reports =====

func ReportExpenses(c *gin.Context) {
	format := reportFormat(c)
	if format == "" {
		utils.Error(c, http.StatusBadRequest, "format must be json, excel or pdf", nil)
		return
	}

	q := config.DB.Model(&models.Expense{})
	if cat := c.Query("category"); cat != "" {
		q = q.Where("category = ?", cat)
	}
	q = applyDateRange(q, c, "date").Order("date DESC, id DESC")

	var rows []models.Expense
	if err := q.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch expenses", err)
		return
	}

	if format == "json" {
		utils.Success(c, "Expense report", rows)
		return
	}

	headers := []string{"Date", "Category", "Amount", "Method", "Description", "Recorded By"}
	if format == "excel" {
		out := make([][]interface{}, 0, len(rows))
		for _, e := range rows {
			out = append(out, []interface{}{
				e.Date.Format("2006-01-02"), string(e.Category), e.Amount,
				e.PaymentMethod, e.Description, e.RecordedBy,
			})
		}
		streamExcel(c, "expense-report.xlsx", "Expenses", headers, out)
		return
	}

	widths := []float64{28, 35, 32, 30, 90, 55}
	out := make([][]string, 0, len(rows))
	for _, e := range rows {
		out = append(out, []string{
			e.Date.Format("2006-01-02"), string(e.Category), money(e.Amount),
			e.PaymentMethod, e.Description, e.RecordedBy,
		})
	}
	streamPDF(c, "expense-report.pdf", "Expense Report", headers, widths, out)
}

func ReportRevenue(c *gin.Context) {
	format := reportFormat(c)
	if format == "" {
		utils.Error(c, http.StatusBadRequest, "format must be json, excel or pdf", nil)
		return
	}

	q := config.DB.Model(&models.Revenue{})
	if src := c.Query("source"); src != "" {
		q = q.Where("source = ?", src)
	}
	q = applyDateRange(q, c, "date").Order("date DESC, id DESC")

	var rows []models.Revenue
	if err := q.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch revenue", err)
		return
	}

	if format == "json" {
		utils.Success(c, "Revenue report", rows)
		return
	}

	headers := []string{"Date", "Source", "Amount", "Method", "Description", "Recorded By"}
	if format == "excel" {
		out := make([][]interface{}, 0, len(rows))
		for _, r := range rows {
			out = append(out, []interface{}{
				r.Date.Format("2006-01-02"), string(r.Source), r.Amount,
				r.PaymentMethod, r.Description, r.RecordedBy,
			})
		}
		streamExcel(c, "revenue-report.xlsx", "Revenue", headers, out)
		return
	}

	widths := []float64{28, 35, 32, 30, 90, 55}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Date.Format("2006-01-02"), string(r.Source), money(r.Amount),
			r.PaymentMethod, r.Description, r.RecordedBy,
		})
	}
	streamPDF(c, "revenue-report.pdf", "Revenue Report", headers, widths, out)
}

// ===== profit analysis =====

type brandProfitRow struct {
	Brand     models.BikeBrand `json:"brand"`
	SoldCount int64            `json:"sold_count"`
	Revenue   float64          `json:"revenue"`
	Profit    float64          `json:"profit"`
	AvgMargin float64          `json:"avg_margin"`
}

// ReportProfit is a pure aggregate summary over sold bikes.
func ReportProfit(c *gin.Context) {
	var summary struct {
		SoldCount   int64            `json:"sold_count"`
		Revenue     float64          `json:"revenue"`
		TotalProfit float64          `json:"total_profit"`
		AvgProfit   float64          `json:"avg_profit"`
		ByBrand     []brandProfitRow `json:"by_brand"`
	}

	base := applyDateRange(config.DB.Model(&models.Sale{}), c, "sale_date")
	if err := base.Count(&summary.SoldCount).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to compute profit report", err)
		return
	}
	base = applyDateRange(config.DB.Model(&models.Sale{}), c, "sale_date")
	base.Select("COALESCE(SUM(final_amount), 0)").Scan(&summary.Revenue)
	base = applyDateRange(config.DB.Model(&models.Sale{}), c, "sale_date")
	base.Select("COALESCE(SUM(profit), 0)").Scan(&summary.TotalProfit)
	if summary.SoldCount > 0 {
		summary.AvgProfit = summary.TotalProfit / float64(summary.SoldCount)
	}

	brandQ := applyDateRange(config.DB.Model(&models.Sale{}), c, "sale_date")
	brandQ.Select(`bikes.brand AS brand,
			COUNT(sales.id) AS sold_count,
			SUM(sales.final_amount) AS revenue,
			SUM(sales.profit) AS profit,
			AVG(sales.profit_percent) AS avg_margin`).
		Joins("JOIN bikes ON bikes.id = sales.bike_id").
		Group("bikes.brand").Order("profit DESC").
		Scan(&summary.ByBrand)

	utils.Success(c, "Profit report", summary)
}
