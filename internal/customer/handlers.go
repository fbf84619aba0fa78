package customer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/events"
)

// LogAddressChanged prints a notice whenever a customer's address changes.
func LogAddressChanged(logger *zap.Logger) events.HandlerFunc {
	return func(ctx context.Context, ev events.Event) error {
		changed, ok := ev.(AddressChanged)
		if !ok {
			return fmt.Errorf("unexpected event %T", ev)
		}
		logger.Info(fmt.Sprintf("address of customer %s, %s changed to: %s",
			changed.CustomerID, changed.CustomerName, changed.Address),
			zap.String("eventId", changed.ID()),
		)
		return nil
	}
}

func LogCreated(logger *zap.Logger) events.HandlerFunc {
	return func(ctx context.Context, ev events.Event) error {
		created, ok := ev.(Created)
		if !ok {
			return fmt.Errorf("unexpected event %T", ev)
		}
		logger.Info("customer created",
			zap.String("customerId", created.CustomerID),
			zap.String("name", created.CustomerName),
		)
		return nil
	}
}
