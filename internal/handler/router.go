package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lfreitas/stocktrade/internal/service"
)

// NewRouter creates a chi router with all routes registered and request
// logging middleware.
func NewRouter(
	orderSvc *service.OrderService,
	quoteSvc *service.QuoteService,
	defaultSymbol string,
	defaultQuantity int64,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()

	r.Use(requestLogging(logger))

	tradeH := NewTradeHandler(orderSvc, quoteSvc, defaultSymbol, defaultQuantity)

	// Health check.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Trade routes.
	r.Get("/", tradeH.ShowTrade)
	r.Get("/Trade", tradeH.ShowTrade)
	r.Post("/Trade/BuyOrder", tradeH.SubmitBuyOrder)
	r.Post("/Trade/SellOrder", tradeH.SubmitSellOrder)
	r.Get("/Trade/Orders", tradeH.ListOrders)

	return r
}

// requestLogging returns middleware that logs each request's method, path,
// status code, and duration using slog.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
