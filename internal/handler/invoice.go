package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"greengarden/internal/invoice"
	"greengarden/internal/store"
)

func InvoiceCSVHandler(st *store.Store, gen *invoice.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, ok := st.Get(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		data, err := gen.CSV(order)
		if err != nil {
			slog.Error("csv render failed", "order", order.ID, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.csv", order.ID))
		w.Write(data)
	}
}

func InvoiceDocumentHandler(st *store.Store, gen *invoice.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, ok := st.Get(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.txt", order.ID))
		w.Write(gen.Document(order))
	}
}

func ExportOrdersHandler(st *store.Store, gen *invoice.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := gen.AllOrdersCSV(st.List())
		if err != nil {
			slog.Error("export render failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=all_orders.csv")
		w.Write(data)
	}
}
