package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/metrics"
)

// NewRouter mounts the API. reg may be nil, in which case no metrics are
// recorded and /metrics is not served.
func NewRouter(h *Handler, reg *metrics.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.logger))
	if reg != nil {
		r.Use(reg.Middleware)
		r.Method(http.MethodGet, "/metrics", reg.Handler())
	}

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		if h.timeout > 0 {
			r.Use(middleware.Timeout(h.timeout))
		}

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.PlaceOrder)
			r.Get("/", h.ListOrders)
			r.Get("/{orderId}", h.GetOrder)
			r.Put("/{orderId}", h.ReplaceOrderItems)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", h.CreateCustomer)
			r.Get("/", h.ListCustomers)
			r.Get("/{id}", h.GetCustomer)
			r.Put("/{id}", h.RenameCustomer)
			r.Put("/{id}/address", h.ChangeCustomerAddress)
			r.Post("/{id}/activate", h.ActivateCustomer)
			r.Post("/{id}/deactivate", h.DeactivateCustomer)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", h.CreateProduct)
			r.Get("/", h.ListProducts)
			r.Post("/increase-prices", h.IncreasePrices)
			r.Get("/{id}", h.GetProduct)
			r.Put("/{id}", h.ChangeProduct)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())),
			)
		})
	}
}
