package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"greengarden/internal/model"
	"greengarden/internal/store"
)

// DailySale is one point of the ascending-by-date sales series.
type DailySale struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// ItemCount ranks one menu item by total quantity sold.
type ItemCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Report holds the session aggregates. On an empty store every field is its
// zero value, including the average: "no orders yet" is a normal state, not
// an error.
type Report struct {
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AvgOrderValue     decimal.Decimal `json:"avg_order_value"`
	TotalTaxCollected decimal.Decimal `json:"total_tax_collected"`
	DailySales        []DailySale     `json:"daily_sales"`
	ItemPopularity    []ItemCount     `json:"item_popularity"`
}

type AnalyticsService struct {
	store *store.Store
}

func NewAnalyticsService(st *store.Store) *AnalyticsService {
	return &AnalyticsService{store: st}
}

// Report recomputes all aggregates from the current store snapshot. Nothing
// is cached: the store only grows within a session, and recomputing keeps the
// numbers impossible to go stale.
func (s *AnalyticsService) Report() Report {
	orders := s.store.List()

	r := Report{
		TotalOrders:       len(orders),
		TotalRevenue:      decimal.Zero,
		AvgOrderValue:     decimal.Zero,
		TotalTaxCollected: decimal.Zero,
	}

	daily := make(map[string]decimal.Decimal)
	popularity := make(map[string]int)
	for _, o := range orders {
		r.TotalRevenue = r.TotalRevenue.Add(o.Total)
		r.TotalTaxCollected = r.TotalTaxCollected.Add(o.Tax)

		day := o.Date.Format(model.DateLayout)
		daily[day] = daily[day].Add(o.Total)

		for name, qty := range o.Items {
			if qty > 0 {
				popularity[name] += qty
			}
		}
	}

	if len(orders) > 0 {
		r.AvgOrderValue = r.TotalRevenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	for day, total := range daily {
		r.DailySales = append(r.DailySales, DailySale{Date: day, Total: total})
	}
	sort.Slice(r.DailySales, func(i, j int) bool {
		return r.DailySales[i].Date < r.DailySales[j].Date
	})

	for name, qty := range popularity {
		r.ItemPopularity = append(r.ItemPopularity, ItemCount{Name: name, Quantity: qty})
	}
	sort.Slice(r.ItemPopularity, func(i, j int) bool {
		if r.ItemPopularity[i].Quantity != r.ItemPopularity[j].Quantity {
			return r.ItemPopularity[i].Quantity > r.ItemPopularity[j].Quantity
		}
		return r.ItemPopularity[i].Name < r.ItemPopularity[j].Name
	})

	return r
}
