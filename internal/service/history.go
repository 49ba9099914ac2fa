package service

import (
	"strings"
	"time"

	"greengarden/internal/model"
	"greengarden/internal/store"
)

// HistoryService answers search/filter queries over the session store.
type HistoryService struct {
	store *store.Store
}

func NewHistoryService(st *store.Store) *HistoryService {
	return &HistoryService{store: st}
}

// Query returns orders matching both predicates, most recent first. An empty
// term matches everything; a zero date disables the date filter. The term is
// matched case-insensitively against the customer name or the order id.
func (s *HistoryService) Query(term string, date time.Time) []model.Order {
	orders := s.store.List()
	term = strings.ToLower(strings.TrimSpace(term))

	matched := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if term != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), term) &&
			!strings.Contains(strings.ToLower(o.ID), term) {
			continue
		}
		if !date.IsZero() && !o.Date.Equal(date) {
			continue
		}
		matched = append(matched, o)
	}

	// Display convention: reverse insertion order.
	for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
		matched[i], matched[j] = matched[j], matched[i]
	}
	return matched
}
