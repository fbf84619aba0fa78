package customer

import (
	"context"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/events"
)

// Notifier dispatches domain events to registered handlers.
type Notifier interface {
	Notify(ctx context.Context, ev events.Event) error
}

// Service runs customer use cases and raises their domain events once the
// change is stored.
type Service struct {
	repo     Repository
	notifier Notifier
	logger   *zap.Logger
}

func NewService(repo Repository, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

func (s *Service) Create(ctx context.Context, c *Customer) error {
	if err := s.repo.Create(ctx, c); err != nil {
		return err
	}
	s.notify(ctx, NewCreated(c))
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*Customer, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.FindAll(ctx)
}

// ChangeAddress stores the new address and raises AddressChanged.
func (s *Service) ChangeAddress(ctx context.Context, id string, address Address) (*Customer, error) {
	c, err := s.modify(ctx, id, func(c *Customer) error { return c.ChangeAddress(address) })
	if err != nil {
		return nil, err
	}
	s.notify(ctx, NewAddressChanged(c))
	return c, nil
}

// Rename changes the customer's name.
func (s *Service) Rename(ctx context.Context, id, name string) (*Customer, error) {
	return s.modify(ctx, id, func(c *Customer) error { return c.ChangeName(name) })
}

// SetActive activates or deactivates the customer. Activation fails for a
// customer without an address.
func (s *Service) SetActive(ctx context.Context, id string, active bool) (*Customer, error) {
	return s.modify(ctx, id, func(c *Customer) error {
		if active {
			return c.Activate()
		}
		c.Deactivate()
		return nil
	})
}

func (s *Service) modify(ctx context.Context, id string, change func(*Customer) error) (*Customer, error) {
	c, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := change(c); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// The change is already committed when handlers run, so a handler failure is
// logged rather than returned.
func (s *Service) notify(ctx context.Context, ev events.Event) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, ev); err != nil {
		s.logger.Warn("event handlers failed",
			zap.String("event", ev.Name()),
			zap.String("aggregateId", ev.AggregateID()),
			zap.Error(err),
		)
	}
}
