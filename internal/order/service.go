package order

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/customer"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/product"
)

// Line asks for quantity units of a product.
type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CustomerFinder interface {
	Find(ctx context.Context, id string) (*customer.Customer, error)
}

type ProductFinder interface {
	Find(ctx context.Context, id string) (*product.Product, error)
}

type Service struct {
	orders    Repository
	customers CustomerFinder
	products  ProductFinder
	logger    *zap.Logger
	newID     func() string
}

func NewService(orders Repository, customers CustomerFinder, products ProductFinder, logger *zap.Logger) *Service {
	return &Service{
		orders:    orders,
		customers: customers,
		products:  products,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// PlaceOrder creates an order for the customer. Item name and price are copied
// from the products as they are now. The order and the customer's reward
// points are written together or not at all.
func (s *Service) PlaceOrder(ctx context.Context, customerID string, lines []Line) (*Order, error) {
	c, err := s.customers.Find(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items, err := s.snapshot(ctx, "place order", lines)
	if err != nil {
		return nil, err
	}

	o, err := New(s.newID(), c.ID(), items)
	if err != nil {
		return nil, err
	}
	points := rewardPoints(o)
	if err := s.orders.Place(ctx, o, points); err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("orderId", o.ID()),
		zap.String("customerId", c.ID()),
		zap.Int("items", len(items)),
		zap.Float64("total", o.Total()),
		zap.Int("rewardPoints", points),
	)
	return o, nil
}

// rewardPoints is what a customer earns for an order: half its total.
func rewardPoints(o *Order) int {
	return int(o.Total() / 2)
}

// ReplaceItems swaps every item of an existing order for new snapshots of the
// requested products. Reward points already granted are left unchanged.
func (s *Service) ReplaceItems(ctx context.Context, orderID string, lines []Line) (*Order, error) {
	current, err := s.orders.Find(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.snapshot(ctx, "replace order items", lines)
	if err != nil {
		return nil, err
	}

	o, err := New(current.ID(), current.CustomerID(), items)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("order items replaced",
		zap.String("orderId", o.ID()),
		zap.Float64("previousTotal", current.Total()),
		zap.Float64("total", o.Total()),
	)
	return o, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.orders.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *Service) snapshot(ctx context.Context, op string, lines []Line) ([]Item, error) {
	if len(lines) == 0 {
		return nil, domain.Validation(op, "items are required")
	}

	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		if l.ProductID == "" {
			return nil, domain.Validation(op, "productId is required")
		}
		p, err := s.products.Find(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, NewItem(s.newID(), p.Name(), p.Price(), p.ID(), l.Quantity))
	}
	return items, nil
}
