package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/db"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"
)

type Repository interface {
	domain.Repository[*Product]
	// UpdateAll writes every product or none of them.
	UpdateAll(ctx context.Context, products []*Product) error
}

const (
	insertProductSQL  = `INSERT INTO products (id, name, price) VALUES ($1, $2, $3)`
	selectProductSQL  = `SELECT id, name, price FROM products WHERE id = $1`
	selectProductsSQL = `SELECT id, name, price FROM products`
	updateProductSQL  = `UPDATE products SET name = $2, price = $3 WHERE id = $1`
)

type PostgresRepository struct {
	pool db.Pool
}

func NewPostgresRepository(pool db.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Create(ctx context.Context, p *Product) error {
	if p == nil {
		return domain.Validation("create product", "product is nil")
	}
	if _, err := r.pool.Exec(ctx, insertProductSQL, p.ID(), p.Name(), p.Price()); err != nil {
		return domain.Storage("create product", fmt.Errorf("insert product: %w", err))
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*Product, error) {
	var pid, name string
	var price float64
	if err := r.pool.QueryRow(ctx, selectProductSQL, id).Scan(&pid, &name, &price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("product", id)
		}
		return nil, domain.Storage("find product", fmt.Errorf("select product: %w", err))
	}
	return restore("find product", pid, name, price)
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]*Product, error) {
	const op = "find all products"

	rows, err := r.pool.Query(ctx, selectProductsSQL)
	if err != nil {
		return nil, domain.Storage(op, fmt.Errorf("select products: %w", err))
	}
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		var id, name string
		var price float64
		if err := rows.Scan(&id, &name, &price); err != nil {
			return nil, domain.Storage(op, fmt.Errorf("scan product: %w", err))
		}
		p, err := restore(op, id, name, price)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storage(op, fmt.Errorf("rows: %w", err))
	}
	return products, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *Product) error {
	if p == nil {
		return domain.Validation("update product", "product is nil")
	}
	tag, err := r.pool.Exec(ctx, updateProductSQL, p.ID(), p.Name(), p.Price())
	if err != nil {
		return domain.Storage("update product", fmt.Errorf("update product: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("product", p.ID())
	}
	return nil
}

func (r *PostgresRepository) UpdateAll(ctx context.Context, products []*Product) error {
	const op = "update products"

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Storage(op, fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, p := range products {
		tag, err := tx.Exec(ctx, updateProductSQL, p.ID(), p.Name(), p.Price())
		if err != nil {
			return domain.Storage(op, fmt.Errorf("update product %s: %w", p.ID(), err))
		}
		if tag.RowsAffected() == 0 {
			return domain.NotFound("product", p.ID())
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Storage(op, fmt.Errorf("commit: %w", err))
	}
	return nil
}

func restore(op, id, name string, price float64) (*Product, error) {
	p, err := New(id, name, price)
	if err != nil {
		return nil, domain.Storage(op, fmt.Errorf("restore product %s: %v", id, err))
	}
	return p, nil
}
