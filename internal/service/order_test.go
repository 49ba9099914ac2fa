package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greengarden/internal/billing"
	"greengarden/internal/menu"
	"greengarden/internal/store"
)

func newOrderService() (*OrderService, *store.Store) {
	st := store.New()
	calc := billing.NewCalculator(menu.Default(), billing.DefaultTaxRate)
	return NewOrderService(calc, st), st
}

func validRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		CustomerName: "Asha",
		Phone:        "9876543210",
		Date:         "2025-03-14",
		Items:        map[string]int{"Idly (2 pcs)": 2, "Masala Dosa": 1},
	}
}

func TestPlace(t *testing.T) {
	svc, st := newOrderService()

	order, err := svc.Place(validRequest())

	require.NoError(t, err)
	assert.Equal(t, "ORD0001", order.ID)
	assert.Equal(t, "Asha", order.CustomerName)
	assert.Equal(t, "2025-03-14", order.Date.Format("2006-01-02"))
	assert.Equal(t, "160.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "28.80", order.Tax.StringFixed(2))
	assert.Equal(t, "188.80", order.Total.StringFixed(2))
	assert.False(t, order.CreatedAt.IsZero())
	assert.Equal(t, 1, st.Len())
}

func TestPlace_TrimsIdentityFields(t *testing.T) {
	svc, _ := newOrderService()
	req := validRequest()
	req.CustomerName = "  Asha  "
	req.Phone = " 9876543210 "

	order, err := svc.Place(req)

	require.NoError(t, err)
	assert.Equal(t, "Asha", order.CustomerName)
	assert.Equal(t, "9876543210", order.Phone)
}

func TestPlace_MissingCustomerName(t *testing.T) {
	svc, st := newOrderService()
	req := validRequest()
	req.CustomerName = "   "

	_, err := svc.Place(req)

	assert.ErrorIs(t, err, ErrCustomerNameRequired)
	assert.Equal(t, 0, st.Len())
}

func TestPlace_MissingPhone(t *testing.T) {
	svc, st := newOrderService()
	req := validRequest()
	req.Phone = ""

	_, err := svc.Place(req)

	assert.ErrorIs(t, err, ErrPhoneRequired)
	assert.Equal(t, 0, st.Len())
}

func TestPlace_EmptyItems(t *testing.T) {
	svc, st := newOrderService()

	for name, items := range map[string]map[string]int{
		"no items":  {},
		"all zero":  {"Pongal": 0},
		"nil items": nil,
	} {
		req := validRequest()
		req.Items = items

		_, err := svc.Place(req)

		assert.ErrorIs(t, err, ErrEmptyOrder, name)
	}
	assert.Equal(t, 0, st.Len())
}

func TestPlace_InvalidDate(t *testing.T) {
	svc, _ := newOrderService()
	req := validRequest()
	req.Date = "14-03-2025"

	_, err := svc.Place(req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestPlace_DateDefaultsToToday(t *testing.T) {
	svc, _ := newOrderService()
	fixed := time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	req := validRequest()
	req.Date = ""

	order, err := svc.Place(req)

	require.NoError(t, err)
	assert.Equal(t, "2025-03-14", order.Date.Format("2006-01-02"))
	assert.Equal(t, fixed, order.CreatedAt)
}

func TestPlace_InvalidQuantityRejected(t *testing.T) {
	svc, st := newOrderService()
	req := validRequest()
	req.Items = map[string]int{"Pongal": 21}

	_, err := svc.Place(req)

	assert.ErrorIs(t, err, billing.ErrInvalidQuantity)
	assert.Equal(t, 0, st.Len())
}

func TestPlace_UnknownItemRejected(t *testing.T) {
	svc, _ := newOrderService()
	req := validRequest()
	req.Items = map[string]int{"Paneer Tikka": 1}

	_, err := svc.Place(req)

	assert.ErrorIs(t, err, menu.ErrUnknownItem)
}

func TestPlace_IdentifiersUnique(t *testing.T) {
	svc, _ := newOrderService()

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		order, err := svc.Place(validRequest())
		require.NoError(t, err)
		require.False(t, seen[order.ID], fmt.Sprintf("duplicate id %s", order.ID))
		seen[order.ID] = true
	}
}

// Clearing the session must not recycle identifiers: the counter outlives
// the orders it numbered.
func TestPlace_NoIDReuseAfterClear(t *testing.T) {
	svc, st := newOrderService()

	historical := make(map[string]bool)
	for i := 0; i < 3; i++ {
		order, err := svc.Place(validRequest())
		require.NoError(t, err)
		historical[order.ID] = true
	}

	st.Clear()

	order, err := svc.Place(validRequest())
	require.NoError(t, err)
	assert.False(t, historical[order.ID])
	assert.Equal(t, "ORD0004", order.ID)
}

func TestCreate_DoesNotAppend(t *testing.T) {
	svc, st := newOrderService()

	order, err := svc.Create(validRequest())

	require.NoError(t, err)
	assert.Equal(t, "ORD0001", order.ID)
	assert.Equal(t, 0, st.Len())
}
