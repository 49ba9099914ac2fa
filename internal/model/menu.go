package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// MenuItem is one named, priced catalog entry. Name is the unique key.
type MenuItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Price string `json:"price"`
		*Alias
	}{
		Price: m.Price.StringFixed(2),
		Alias: (*Alias)(&m),
	})
}
