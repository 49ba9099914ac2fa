package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"greengarden/internal/billing"
	"greengarden/internal/menu"
	"greengarden/internal/model"
	"greengarden/internal/service"
	"greengarden/internal/store"
)

func PlaceOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req service.PlaceOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		order, err := orderSvc.Place(req)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrCustomerNameRequired),
				errors.Is(err, service.ErrPhoneRequired),
				errors.Is(err, service.ErrEmptyOrder):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.Is(err, service.ErrInvalidDate),
				errors.Is(err, billing.ErrInvalidQuantity),
				errors.Is(err, menu.ErrUnknownItem):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				slog.Error("order placement failed", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		slog.Info("order placed",
			"id", order.ID,
			"customer", order.CustomerName,
			"total", order.Total.StringFixed(2),
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(order); err != nil {
			slog.Error("encode order failed", "error", err)
		}
	}
}

func ListOrdersHandler(historySvc *service.HistoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("q")

		var date time.Time
		if raw := r.URL.Query().Get("date"); raw != "" {
			parsed, err := time.Parse(model.DateLayout, raw)
			if err != nil {
				http.Error(w, "invalid date filter, want YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = parsed
		}

		orders := historySvc.Query(term, date)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(orders); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}

func GetOrderHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, ok := st.Get(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(order); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}

func ClearOrdersHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := st.Clear()
		slog.Info("orders cleared", "count", n, "session", st.SessionID())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int{"cleared": n}); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}
