package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/template"
	"time"

	"github.com/safar/go-shop-admin/internal/models"
	"github.com/shopspring/decimal"
)

// SalesRow is one line of the sales report table, matching the column
// layout of the exported document.
type SalesRow struct {
	ID         int64
	Customer   string
	Email      string
	Date       string
	Total      decimal.Decimal
	ItemsCount int
}

// SalesDocument is the self-contained sales report: table rows plus
// the trailing summary block.
type SalesDocument struct {
	GeneratedAt time.Time
	Rows        []SalesRow
	TotalSales  int
	TotalAmount decimal.Decimal
}

// BuildSalesReport projects already-validated sales into the report
// document. Pure; no network traffic.
func BuildSalesReport(sales []models.Order, now time.Time) *SalesDocument {
	doc := &SalesDocument{
		GeneratedAt: now,
		Rows:        make([]SalesRow, 0, len(sales)),
		TotalSales:  len(sales),
	}

	for _, sale := range sales {
		doc.Rows = append(doc.Rows, SalesRow{
			ID:         sale.ID,
			Customer:   sale.User.Name,
			Email:      sale.User.Email,
			Date:       sale.Date,
			Total:      sale.Total,
			ItemsCount: len(sale.Items),
		})
		doc.TotalAmount = doc.TotalAmount.Add(sale.Total)
	}
	return doc
}

// WriteSalesCSV writes the sales table as CSV, one row per sale.
func WriteSalesCSV(w io.Writer, sales []models.Order) error {
	doc := BuildSalesReport(sales, time.Now())

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Customer Name", "Email", "Date", "Total", "Items Count"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range doc.Rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Customer,
			row.Email,
			row.Date,
			row.Total.String(),
			strconv.Itoa(row.ItemsCount),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// InvoiceLine is one order item on a printable invoice.
type InvoiceLine struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// Invoice is the self-contained printable document for one sale.
type Invoice struct {
	Number   int64
	Date     string
	Customer string
	Email    string
	Phone    string
	Address  string
	Lines    []InvoiceLine
	Total    decimal.Decimal
}

// BuildInvoice projects one sale into its invoice document.
func BuildInvoice(sale models.Order) *Invoice {
	inv := &Invoice{
		Number:   sale.ID,
		Date:     sale.Date,
		Customer: sale.User.Name,
		Email:    sale.User.Email,
		Phone:    sale.Phone,
		Address:  sale.Address,
		Total:    sale.Total,
	}
	for _, item := range sale.Items {
		inv.Lines = append(inv.Lines, InvoiceLine{
			Product:   item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Product.Price,
			Subtotal:  item.Subtotal,
		})
	}
	return inv
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`INVOICE #{{.Number}}
Date: {{.Date}}

Bill To:
  {{.Customer}} <{{.Email}}>
  {{.Phone}}
  {{.Address}}

Items:
{{range .Lines}}  {{.Product}}  x{{.Quantity}} @ {{.UnitPrice}} MMK  =  {{.Subtotal}} MMK
{{end}}
Total: {{.Total}} MMK
`))

// RenderInvoice writes the printable invoice document.
func RenderInvoice(w io.Writer, sale models.Order) error {
	if err := invoiceTemplate.Execute(w, BuildInvoice(sale)); err != nil {
		return fmt.Errorf("render invoice: %w", err)
	}
	return nil
}
