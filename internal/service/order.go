package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"greengarden/internal/billing"
	"greengarden/internal/model"
	"greengarden/internal/store"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrPhoneRequired        = errors.New("phone number is required")
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrInvalidDate          = errors.New("invalid order date")
)

// PlaceOrderRequest carries the form input for one order.
type PlaceOrderRequest struct {
	CustomerName string         `json:"customer_name"`
	Phone        string         `json:"phone"`
	Date         string         `json:"date,omitempty"` // 2006-01-02; defaults to today
	Items        map[string]int `json:"items"`
}

type OrderService struct {
	calc  *billing.Calculator
	store *store.Store
	now   func() time.Time
}

func NewOrderService(calc *billing.Calculator, st *store.Store) *OrderService {
	return &OrderService{calc: calc, store: st, now: time.Now}
}

// Create validates the request and assembles an order with a fresh
// identifier. It does not append to the store; Place does. The split keeps
// construction testable without touching session state.
func (s *OrderService) Create(req PlaceOrderRequest) (model.Order, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return model.Order{}, ErrCustomerNameRequired
	}
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return model.Order{}, ErrPhoneRequired
	}

	now := s.now()
	date := now
	if req.Date != "" {
		parsed, err := time.Parse(model.DateLayout, req.Date)
		if err != nil {
			return model.Order{}, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
		}
		date = parsed
	}

	bill, err := s.calc.Compute(req.Items)
	if err != nil {
		return model.Order{}, err
	}
	if bill.IsZero() {
		return model.Order{}, ErrEmptyOrder
	}

	order := model.Order{
		ID:           s.store.NextID(),
		CustomerName: name,
		Phone:        phone,
		Date:         truncateToDate(date),
		Items:        req.Items,
		Subtotal:     bill.Subtotal,
		Tax:          bill.Tax,
		Total:        bill.Total,
		CreatedAt:    now,
	}
	order.Items = order.CloneItems()
	return order, nil
}

// Place creates the order and appends it to the session store.
func (s *OrderService) Place(req PlaceOrderRequest) (model.Order, error) {
	order, err := s.Create(req)
	if err != nil {
		return model.Order{}, err
	}
	s.store.Append(order)
	return order, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
