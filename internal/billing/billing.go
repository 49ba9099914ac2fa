package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"greengarden/internal/menu"
)

// DefaultTaxRate is the GST multiplier applied to the subtotal.
var DefaultTaxRate = decimal.NewFromFloat(0.18)

// MaxQuantity bounds a single line item. The order form clamps to the same
// limit; the calculator re-checks because the mapping may come from any caller.
const MaxQuantity = 20

var ErrInvalidQuantity = errors.New("invalid quantity")

// Bill is the derived (subtotal, tax, total) triple for a set of items.
type Bill struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// IsZero reports whether the bill has no payable amount.
func (b Bill) IsZero() bool { return b.Total.IsZero() }

// Calculator computes bills against a catalog. It is pure: no state beyond
// the catalog reference and the tax rate, which is injectable for tests.
type Calculator struct {
	catalog *menu.Catalog
	taxRate decimal.Decimal
}

func NewCalculator(catalog *menu.Catalog, taxRate decimal.Decimal) *Calculator {
	return &Calculator{catalog: catalog, taxRate: taxRate}
}

// Compute derives the bill for an item-quantity mapping. Entries with
// quantity 0 contribute nothing; an empty or all-zero mapping yields a zero
// bill. Accumulation is unrounded, only the subtotal and tax are rounded to
// two places, so rounding error never compounds across lines.
func (c *Calculator) Compute(items map[string]int) (Bill, error) {
	raw := decimal.Zero
	for name, qty := range items {
		if qty < 0 || qty > MaxQuantity {
			return Bill{}, fmt.Errorf("%w: %d for %q (must be 0..%d)", ErrInvalidQuantity, qty, name, MaxQuantity)
		}
		if qty == 0 {
			continue
		}
		price, err := c.catalog.Price(name)
		if err != nil {
			return Bill{}, err
		}
		raw = raw.Add(price.Mul(decimal.NewFromInt(int64(qty))))
	}

	subtotal := raw.Round(2)
	tax := subtotal.Mul(c.taxRate).Round(2)
	return Bill{Subtotal: subtotal, Tax: tax, Total: subtotal.Add(tax)}, nil
}
