package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a JSON production logger for "prod"/"production" and a console
// development logger for anything else.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build(zap.Fields(zap.String("service", "checkout-service-go")))
}
