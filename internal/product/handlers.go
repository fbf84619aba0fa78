package product

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/events"
)

// LogCreated records every new product in the service log.
func LogCreated(logger *zap.Logger) events.HandlerFunc {
	return func(ctx context.Context, ev events.Event) error {
		created, ok := ev.(Created)
		if !ok {
			return fmt.Errorf("unexpected event %T", ev)
		}
		logger.Info("product created",
			zap.String("productId", created.ProductID),
			zap.String("name", created.ProductName),
			zap.Float64("price", created.Price),
		)
		return nil
	}
}
