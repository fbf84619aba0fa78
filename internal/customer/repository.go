package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/db"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"
)

type Repository interface {
	domain.Repository[*Customer]
}

const (
	customerColumns = `id, name, street, number, zipcode, city, active, reward_points`

	insertCustomerSQL = `INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	selectCustomerSQL = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	selectCustomersSQL = `SELECT ` + customerColumns + ` FROM customers`

	// reward_points is only ever incremented in place when an order is placed.
	updateCustomerSQL = `UPDATE customers
		SET name = $2, street = $3, number = $4, zipcode = $5, city = $6, active = $7
		WHERE id = $1`
)

type PostgresRepository struct {
	pool db.Pool
}

func NewPostgresRepository(pool db.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Create(ctx context.Context, c *Customer) error {
	if c == nil {
		return domain.Validation("create customer", "customer is nil")
	}
	if _, err := r.pool.Exec(ctx, insertCustomerSQL, args(c)...); err != nil {
		return domain.Storage("create customer", fmt.Errorf("insert customer: %w", err))
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*Customer, error) {
	c, err := scanCustomer(r.pool.QueryRow(ctx, selectCustomerSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("customer", id)
		}
		return nil, domain.Storage("find customer", err)
	}
	return c, nil
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]*Customer, error) {
	rows, err := r.pool.Query(ctx, selectCustomersSQL)
	if err != nil {
		return nil, domain.Storage("find all customers", fmt.Errorf("select customers: %w", err))
	}
	defer rows.Close()

	customers := make([]*Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, domain.Storage("find all customers", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storage("find all customers", fmt.Errorf("rows: %w", err))
	}
	return customers, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *Customer) error {
	if c == nil {
		return domain.Validation("update customer", "customer is nil")
	}
	tag, err := r.pool.Exec(ctx, updateCustomerSQL, profileArgs(c)...)
	if err != nil {
		return domain.Storage("update customer", fmt.Errorf("update customer: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("customer", c.ID())
	}
	return nil
}

func args(c *Customer) []any {
	return append(profileArgs(c), c.RewardPoints())
}

func profileArgs(c *Customer) []any {
	a := c.Address()
	return []any{c.ID(), c.Name(), a.Street, a.Number, a.Zip, a.City, c.IsActive()}
}

func scanCustomer(row pgx.Row) (*Customer, error) {
	var (
		id, name string
		addr     Address
		active   bool
		points   int
	)
	if err := row.Scan(&id, &name, &addr.Street, &addr.Number, &addr.Zip, &addr.City, &active, &points); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}
	c, err := Restore(id, name, addr, active, points)
	if err != nil {
		return nil, fmt.Errorf("restore customer %s: %v", id, err)
	}
	return c, nil
}
