package worker

import (
	"context"
	"log/slog"
	"time"

	"greengarden/internal/service"
)

// SnapshotWorker periodically logs the session sales aggregates so an
// operator can follow revenue without polling the API. Read-only over the
// store.
type SnapshotWorker struct {
	analytics *service.AnalyticsService
	interval  time.Duration
}

func NewSnapshotWorker(analytics *service.AnalyticsService, interval time.Duration) *SnapshotWorker {
	return &SnapshotWorker{analytics: analytics, interval: interval}
}

func (w *SnapshotWorker) Start(ctx context.Context) {
	slog.Info("starting sales snapshot worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("sales snapshot worker stopped")
			return
		case <-ticker.C:
			w.logSnapshot()
		}
	}
}

func (w *SnapshotWorker) logSnapshot() {
	report := w.analytics.Report()
	attrs := []any{
		"orders", report.TotalOrders,
		"revenue", report.TotalRevenue.StringFixed(2),
		"tax", report.TotalTaxCollected.StringFixed(2),
	}
	if len(report.ItemPopularity) > 0 {
		attrs = append(attrs, "top_item", report.ItemPopularity[0].Name)
	}
	slog.Info("sales snapshot", attrs...)
}
