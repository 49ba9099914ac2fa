package handler

import (
	"encoding/json"
	"net/http"

	"greengarden/internal/menu"
)

func MenuHandler(catalog *menu.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(catalog.Items()); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}
