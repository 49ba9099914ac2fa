package menu

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"greengarden/internal/model"
)

var ErrUnknownItem = errors.New("unknown menu item")

// Catalog is the static menu: name -> price. Built once at startup and
// read-only afterwards.
type Catalog struct {
	items []model.MenuItem
	index map[string]decimal.Decimal
}

func New(items []model.MenuItem) *Catalog {
	c := &Catalog{
		items: make([]model.MenuItem, len(items)),
		index: make(map[string]decimal.Decimal, len(items)),
	}
	copy(c.items, items)
	for _, it := range items {
		c.index[it.Name] = it.Price
	}
	return c
}

// Default returns the Green Garden menu.
func Default() *Catalog {
	return New([]model.MenuItem{
		{Name: "Idly (2 pcs)", Price: decimal.NewFromInt(40)},
		{Name: "Pongal", Price: decimal.NewFromInt(60)},
		{Name: "Vada (2 pcs)", Price: decimal.NewFromInt(45)},
		{Name: "Chappathi (2 pcs)", Price: decimal.NewFromInt(50)},
		{Name: "Masala Dosa", Price: decimal.NewFromInt(80)},
		{Name: "Ghee Dosa", Price: decimal.NewFromInt(90)},
	})
}

// Price looks up the rate for a menu item by name.
func (c *Catalog) Price(name string) (decimal.Decimal, error) {
	price, ok := c.index[name]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	return price, nil
}

// Items returns the catalog in menu display order.
func (c *Catalog) Items() []model.MenuItem {
	items := make([]model.MenuItem, len(c.items))
	copy(items, c.items)
	return items
}

// Has reports whether name is on the menu.
func (c *Catalog) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}
