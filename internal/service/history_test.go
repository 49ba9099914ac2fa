package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greengarden/internal/model"
	"greengarden/internal/store"
)

func day(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seededHistory() *HistoryService {
	st := store.New()
	st.Append(model.Order{ID: "ORD0001", CustomerName: "Asha Rao", Date: day("2025-03-14")})
	st.Append(model.Order{ID: "ORD0002", CustomerName: "Ravi Kumar", Date: day("2025-03-14")})
	st.Append(model.Order{ID: "ORD0003", CustomerName: "Asha Menon", Date: day("2025-03-15")})
	return NewHistoryService(st)
}

func TestQuery_EmptyTermReturnsAll(t *testing.T) {
	svc := seededHistory()

	orders := svc.Query("", time.Time{})

	assert.Len(t, orders, 3)
}

func TestQuery_RecentFirst(t *testing.T) {
	svc := seededHistory()

	orders := svc.Query("", time.Time{})

	require.Len(t, orders, 3)
	assert.Equal(t, "ORD0003", orders[0].ID)
	assert.Equal(t, "ORD0001", orders[2].ID)
}

func TestQuery_SearchByCustomerName(t *testing.T) {
	svc := seededHistory()

	orders := svc.Query("asha", time.Time{})

	require.Len(t, orders, 2)
	assert.Equal(t, "ORD0003", orders[0].ID)
	assert.Equal(t, "ORD0001", orders[1].ID)
}

func TestQuery_SearchByID(t *testing.T) {
	svc := seededHistory()

	orders := svc.Query("ord0002", time.Time{})

	require.Len(t, orders, 1)
	assert.Equal(t, "Ravi Kumar", orders[0].CustomerName)
}

func TestQuery_FilterByDate(t *testing.T) {
	svc := seededHistory()

	orders := svc.Query("", day("2025-03-14"))

	require.Len(t, orders, 2)
	assert.Equal(t, "ORD0002", orders[0].ID)
	assert.Equal(t, "ORD0001", orders[1].ID)
}

// Search and date filter are conjunctive: both predicates must pass.
func TestQuery_SearchAndDateCompose(t *testing.T) {
	svc := seededHistory()

	orders := svc.Query("asha", day("2025-03-14"))

	require.Len(t, orders, 1)
	assert.Equal(t, "ORD0001", orders[0].ID)
}

func TestQuery_NoMatches(t *testing.T) {
	svc := seededHistory()

	assert.Empty(t, svc.Query("zara", time.Time{}))
	assert.Empty(t, svc.Query("", day("2024-01-01")))
}

func TestQuery_EmptyStore(t *testing.T) {
	svc := NewHistoryService(store.New())

	assert.Empty(t, svc.Query("", time.Time{}))
}
