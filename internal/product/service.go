package product

import (
	"context"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/events"
)

type Notifier interface {
	Notify(ctx context.Context, ev events.Event) error
}

type Service struct {
	repo     Repository
	notifier Notifier
	logger   *zap.Logger
}

func NewService(repo Repository, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

func (s *Service) Create(ctx context.Context, p *Product) error {
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	if s.notifier == nil {
		return nil
	}
	ev := NewCreated(p)
	if err := s.notifier.Notify(ctx, ev); err != nil {
		s.logger.Warn("event handlers failed",
			zap.String("event", ev.Name()),
			zap.String("aggregateId", ev.AggregateID()),
			zap.Error(err),
		)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.FindAll(ctx)
}

// Change renames and reprices an existing product.
func (s *Service) Change(ctx context.Context, id, name string, price float64) (*Product, error) {
	p, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.ChangeName(name); err != nil {
		return nil, err
	}
	if err := p.ChangePrice(price); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// IncreasePrices raises the price of every product by percent and writes them
// back in one transaction. Orders already placed keep their own copy of the old price.
func (s *Service) IncreasePrices(ctx context.Context, percent float64) ([]*Product, error) {
	if percent < -100 {
		return nil, domain.Validation("increase prices", "percent must be greater than or equal to -100")
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateAll(ctx, IncreasePrice(products, percent)); err != nil {
		return nil, err
	}

	s.logger.Info("product prices increased", zap.Float64("percent", percent), zap.Int("products", len(products)))
	return products, nil
}

// IncreasePrice applies the percentage to each product in place.
func IncreasePrice(products []*Product, percent float64) []*Product {
	for _, p := range products {
		p.price = p.price * (100 + percent) / 100
	}
	return products
}
