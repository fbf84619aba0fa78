package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/customer"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/order"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/product"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, customerID string, lines []order.Line) (*order.Order, error)
	ReplaceItems(ctx context.Context, orderID string, lines []order.Line) (*order.Order, error)
	Get(ctx context.Context, id string) (*order.Order, error)
	List(ctx context.Context) ([]*order.Order, error)
}

type CustomerService interface {
	Create(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, id string) (*customer.Customer, error)
	List(ctx context.Context) ([]*customer.Customer, error)
	ChangeAddress(ctx context.Context, id string, address customer.Address) (*customer.Customer, error)
	Rename(ctx context.Context, id, name string) (*customer.Customer, error)
	SetActive(ctx context.Context, id string, active bool) (*customer.Customer, error)
}

type ProductService interface {
	Create(ctx context.Context, p *product.Product) error
	Get(ctx context.Context, id string) (*product.Product, error)
	List(ctx context.Context) ([]*product.Product, error)
	Change(ctx context.Context, id, name string, price float64) (*product.Product, error)
	IncreasePrices(ctx context.Context, percent float64) ([]*product.Product, error)
}

type Handler struct {
	orders    OrderService
	customers CustomerService
	products  ProductService
	logger    *zap.Logger
	timeout   time.Duration
}

func NewHandler(orders OrderService, customers CustomerService, products ProductService, logger *zap.Logger, timeout time.Duration) *Handler {
	return &Handler{
		orders:    orders,
		customers: customers,
		products:  products,
		logger:    logger,
		timeout:   timeout,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps the domain error kinds onto status codes. Store constraint
// violations surface as conflicts; any other failure is logged and hidden
// behind a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			writeJSON(w, http.StatusConflict, errorResponse{Error: "already exists"})
			return
		case "23503":
			writeJSON(w, http.StatusConflict, errorResponse{Error: "referenced entity does not exist"})
			return
		}
	}

	h.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
