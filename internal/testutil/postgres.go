package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/db"
)

const (
	dbUser     = "checkout_user"
	dbPassword = "checkout_pass"
	dbName     = "checkout"
)

// StartPostgres launches a Postgres container, applies the embedded migrations
// and returns a connected pool plus its DSN. Container and pool are released
// through t.Cleanup.
func StartPostgres(t *testing.T) (*pgxpool.Pool, string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	env := map[string]string{
		"POSTGRES_USER":     dbUser,
		"POSTGRES_PASSWORD": dbPassword,
		"POSTGRES_DB":       dbName,
	}
	ready := wait.ForLog("database system is ready to accept connections").
		WithOccurrence(2).
		WithStartupTimeout(60 * time.Second)

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          env,
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   ready,
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		terminateCtx, terminateCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer terminateCancel()
		_ = container.Terminate(terminateCtx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPassword, host, mappedPort.Port(), dbName)

	require.NoError(t, db.RunMigrations(dsn, zaptest.NewLogger(t)))

	pool, err := db.NewPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool, dsn
}

// Truncate empties every table between subtests sharing one container.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE order_items, orders, products, customers, event_sequence`)
	require.NoError(t, err)
}
