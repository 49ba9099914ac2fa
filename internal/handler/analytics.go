package handler

import (
	"encoding/json"
	"net/http"

	"greengarden/internal/service"
)

func AnalyticsHandler(analyticsSvc *service.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(analyticsSvc.Report()); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	}
}
