package invoice

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"greengarden/internal/menu"
	"greengarden/internal/model"
)

// Seller identity printed on every invoice document.
const (
	sellerName    = "Green Garden Restaurant"
	sellerTagline = "Vegetarian Delights"
	sellerAddress = "Address: 123 Garden Street, Green City"
	sellerPhone   = "Phone: +91 98765 43210"
	closingNote   = "Thank you for dining with us!"
)

var csvHeader = []string{"Order ID", "Customer", "Phone", "Date", "Items", "Subtotal", "Tax", "Total"}

// lineItem is one non-zero row of an order, priced from the catalog.
type lineItem struct {
	Name     string
	Quantity int
	Rate     decimal.Decimal
	Amount   decimal.Decimal
}

// Generator renders orders into the two export shapes. Both derive from the
// same line-item pass so they cannot disagree on rows or totals, and neither
// reads the clock: regenerating an invoice later yields identical bytes.
type Generator struct {
	catalog *menu.Catalog
}

func NewGenerator(catalog *menu.Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// lineItems returns the order's non-zero rows in catalog display order, which
// keeps both exports byte-stable across renders.
func (g *Generator) lineItems(order model.Order) []lineItem {
	var rows []lineItem
	for _, mi := range g.catalog.Items() {
		qty := order.Items[mi.Name]
		if qty <= 0 {
			continue
		}
		rows = append(rows, lineItem{
			Name:     mi.Name,
			Quantity: qty,
			Rate:     mi.Price,
			Amount:   mi.Price.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return rows
}

func itemsSummary(rows []lineItem) string {
	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		parts = append(parts, fmt.Sprintf("%s(%d)", row.Name, row.Quantity))
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) csvRecord(order model.Order) []string {
	rows := g.lineItems(order)
	return []string{
		order.ID,
		order.CustomerName,
		order.Phone,
		order.Date.Format(model.DateLayout),
		itemsSummary(rows),
		order.Subtotal.StringFixed(2),
		order.Tax.StringFixed(2),
		order.Total.StringFixed(2),
	}
}

// CSV renders one order as a single flattened record for spreadsheet import.
func (g *Generator) CSV(order model.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.Write(g.csvRecord(order)); err != nil {
		return nil, fmt.Errorf("write csv record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// AllOrdersCSV renders the whole session, one record per order, with the
// placement timestamp alongside the customer-chosen order date.
func (g *Generator) AllOrdersCSV(orders []model.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append([]string{}, csvHeader[:4]...)
	header = append(header, "Time")
	header = append(header, csvHeader[4:]...)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, order := range orders {
		rec := g.csvRecord(order)
		row := append([]string{}, rec[:4]...)
		row = append(row, order.CreatedAt.Format("2006-01-02 15:04:05"))
		row = append(row, rec[4:]...)
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv record for %s: %w", order.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Document renders the printable invoice as fixed-width text: seller header,
// invoice identity, item table and the three summary rows. The visual shell
// is the presentation layer's concern; the content and rounding are fixed
// here.
func (g *Generator) Document(order model.Order) []byte {
	rows := g.lineItems(order)

	var b strings.Builder
	b.WriteString(sellerName + "\n")
	b.WriteString(sellerTagline + "\n")
	b.WriteString(sellerAddress + "\n")
	b.WriteString(sellerPhone + "\n\n")

	fmt.Fprintf(&b, "Invoice #%s\n", order.ID)
	fmt.Fprintf(&b, "Date: %s\n", order.Date.Format(model.DateLayout))
	fmt.Fprintf(&b, "Customer: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n\n", order.Phone)

	fmt.Fprintf(&b, "%-24s %8s %12s %12s\n", "Item", "Quantity", "Rate", "Amount")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-24s %8d %12s %12s\n",
			row.Name, row.Quantity, row.Rate.StringFixed(2), row.Amount.StringFixed(2))
	}
	fmt.Fprintf(&b, "%-24s %8s %12s %12s\n", "", "", "Subtotal:", order.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "%-24s %8s %12s %12s\n", "", "", "Tax (18%):", order.Tax.StringFixed(2))
	fmt.Fprintf(&b, "%-24s %8s %12s %12s\n", "", "", "Total:", order.Total.StringFixed(2))

	b.WriteString("\n" + closingNote + "\n")
	return []byte(b.String())
}
