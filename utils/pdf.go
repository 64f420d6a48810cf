package utils

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
)

// WriteInvoicePDF renders the invoice for a sale. The sale must carry its Bike
// and the buyer snapshot fields.
func WriteInvoicePDF(path string, sale models.Sale) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "SAI MOTORS")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Two Wheeler Sales & Service")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "TAX INVOICE")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(95, 6, "Invoice No: "+sale.InvoiceNumber)
	pdf.Cell(95, 6, "Sale No: "+sale.SaleNumber)
	pdf.Ln(6)
	pdf.Cell(95, 6, "Date: "+sale.SaleDate.Format("02 Jan 2006"))
	pdf.Cell(95, 6, "Payment: "+string(sale.PaymentMode))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "Billed To")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, sale.BuyerName)
	pdf.Ln(6)
	pdf.Cell(0, 6, sale.BuyerPhone)
	pdf.Ln(6)
	pdf.MultiCell(0, 6, sale.BuyerAddress, "", "L", false)
	pdf.Ln(6)

	// item table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Year", "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, 8, "Amount (Rs)", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	desc := fmt.Sprintf("%s %s (%s)", sale.Bike.Brand, sale.Bike.Model, sale.Bike.BikeNumber)
	pdf.CellFormat(90, 8, desc, "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%d", sale.Bike.Year), "1", 0, "C", false, 0, "")
	pdf.CellFormat(70, 8, formatAmount(sale.SellingPrice), "1", 1, "R", false, 0, "")

	pdf.CellFormat(120, 8, "Discount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(70, 8, formatAmount(sale.Discount), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(120, 9, "Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(70, 9, formatAmount(sale.FinalAmount), "1", 1, "R", true, 0, "")

	pdf.Ln(12)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, "Generated on "+time.Now().Format("02 Jan 2006 15:04"))
	pdf.Ln(6)
	pdf.Cell(0, 6, "This is a computer generated invoice.")

	return pdf.OutputFileAndClose(path)
}

// WriteTablePDF renders a paginated landscape table report with a fixed column
// layout. Widths are in mm and must match the header count.
func WriteTablePDF(path, title string, headers []string, widths []float64, rows [][]string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	writeHeader := func() {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, title)
		pdf.Ln(12)
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}

	pdf.AddPage()
	writeHeader()
	for _, row := range rows {
		if pdf.GetY() > 180 {
			pdf.AddPage()
			writeHeader()
		}
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(path)
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
