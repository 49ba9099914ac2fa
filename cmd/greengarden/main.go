package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"greengarden/internal/billing"
	"greengarden/internal/config"
	"greengarden/internal/handler"
	"greengarden/internal/invoice"
	"greengarden/internal/menu"
	"greengarden/internal/mw"
	"greengarden/internal/service"
	"greengarden/internal/store"
	"greengarden/internal/worker"
)

func main() {
	cfg := config.New()

	catalog := menu.Default()
	calc := billing.NewCalculator(catalog, cfg.TaxRate)
	st := store.New()

	// Services
	orderSvc := service.NewOrderService(calc, st)
	historySvc := service.NewHistoryService(st)
	analyticsSvc := service.NewAnalyticsService(st)
	gen := invoice.NewGenerator(catalog)

	// Router
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/menu", handler.MenuHandler(catalog))

	r.Post("/api/orders", handler.PlaceOrderHandler(orderSvc))
	r.Get("/api/orders", handler.ListOrdersHandler(historySvc))
	r.Delete("/api/orders", handler.ClearOrdersHandler(st))
	r.Get("/api/orders/export.csv", handler.ExportOrdersHandler(st, gen))
	r.Get("/api/orders/{id}", handler.GetOrderHandler(st))
	r.Get("/api/orders/{id}/invoice.csv", handler.InvoiceCSVHandler(st, gen))
	r.Get("/api/orders/{id}/invoice.txt", handler.InvoiceDocumentHandler(st, gen))

	r.Get("/api/analytics", handler.AnalyticsHandler(analyticsSvc))

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	if cfg.SnapshotInterval > 0 {
		go worker.NewSnapshotWorker(analyticsSvc, cfg.SnapshotInterval).Start(ctx)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress, "session", st.SessionID())

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	cancel() // stop worker
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
