package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for Order.Date in JSON bodies,
// query parameters and exports.
const DateLayout = "2006-01-02"

// Order is an immutable record of one placed purchase. The bill fields are
// derived from Items at creation time and never recomputed afterwards;
// corrections require a new order.
type Order struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Date         time.Time       `json:"date"`
	Items        map[string]int  `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Date     string `json:"date"`
		Subtotal string `json:"subtotal"`
		Tax      string `json:"tax"`
		Total    string `json:"total"`
		*Alias
	}{
		Date:     o.Date.Format(DateLayout),
		Subtotal: o.Subtotal.StringFixed(2),
		Tax:      o.Tax.StringFixed(2),
		Total:    o.Total.StringFixed(2),
		Alias:    (*Alias)(&o),
	})
}

// CloneItems returns an independent copy of the item map so stored orders
// cannot be mutated through shared references.
func (o Order) CloneItems() map[string]int {
	items := make(map[string]int, len(o.Items))
	for name, qty := range o.Items {
		items[name] = qty
	}
	return items
}
