package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/customer"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/db"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/events"
	httpapi "github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/http"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/logger"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/metrics"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/order"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/product"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/sequence"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- DB ---
	pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.RunMigrations(cfg.DatabaseDSN, log); err != nil {
			log.Fatal("db migrate", zap.Error(err))
		}
	}

	customers := customer.NewPostgresRepository(pool)
	products := product.NewPostgresRepository(pool)
	orders := order.NewPostgresRepository(pool)

	reg := metrics.NewRegistry()

	// --- events ---
	dispatcher := events.NewDispatcher()
	dispatcher.Register(events.EventCustomerAddressChanged, customer.LogAddressChanged(log))
	dispatcher.Register(events.EventCustomerCreated, customer.LogCreated(log))
	dispatcher.Register(events.EventProductCreated, product.LogCreated(log))
	defer dispatcher.UnregisterAll()

	if cfg.PublishEvents {
		conn, err := events.DialRabbit(cfg.RabbitURL)
		if err != nil {
			log.Fatal("rabbitmq connect", zap.Error(err))
		}
		defer conn.Close()

		fwd, closeFwd, err := events.NewForwarder(conn, sequence.NewRepository(pool), events.DefaultRoutes(), log)
		if err != nil {
			log.Fatal("start event forwarder", zap.Error(err))
		}
		defer func() { _ = closeFwd() }()
		fwd.CountWith(reg.EventsForwarded)

		for name := range events.DefaultRoutes() {
			dispatcher.Register(name, fwd)
		}
		log.Info("publishing domain events", zap.String("exchange", events.EventsExchange))
	}

	customerSvc := customer.NewService(customers, dispatcher, log)
	productSvc := product.NewService(products, dispatcher, log)
	orderSvc := order.NewService(orders, customers, products, log)

	// --- HTTP ---
	h := httpapi.NewHandler(orderSvc, customerSvc, productSvc, log, cfg.RequestTimeout)
	r := httpapi.NewRouter(h, reg)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("http server failed", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = httpServer.Shutdown(shutdownCtx)
	cancel()

	log.Info("shutdown complete")
}
