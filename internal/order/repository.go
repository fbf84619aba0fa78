package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/db"
	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"
)

type Repository interface {
	domain.Repository[*Order]
	// Place stores a new order and credits rewardPoints to its customer as
	// one unit of work.
	Place(ctx context.Context, o *Order, rewardPoints int) error
}

const (
	insertOrderSQL = `INSERT INTO orders (id, customer_id, total) VALUES ($1, $2, $3)`

	insertItemSQL = `INSERT INTO order_items (id, order_id, product_id, name, price, quantity, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectOrderSQL = `SELECT id, customer_id FROM orders WHERE id = $1`

	selectItemsSQL = `SELECT id, name, price, product_id, quantity
		FROM order_items WHERE order_id = $1 ORDER BY position`

	selectOrdersSQL = `SELECT id, customer_id FROM orders`

	selectItemsByOrdersSQL = `SELECT order_id, id, name, price, product_id, quantity
		FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, position`

	deleteOrderSQL = `DELETE FROM orders WHERE id = $1`

	addRewardPointsSQL = `UPDATE customers SET reward_points = reward_points + $2 WHERE id = $1`
)

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type PostgresRepository struct {
	pool db.Pool
}

func NewPostgresRepository(pool db.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create writes the order row and its items in one transaction.
func (r *PostgresRepository) Create(ctx context.Context, o *Order) error {
	const op = "create order"
	if o == nil {
		return domain.Validation(op, "order is nil")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Storage(op, fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertOrder(ctx, tx, o); err != nil {
		return domain.Storage(op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Storage(op, fmt.Errorf("commit: %w", err))
	}
	return nil
}

// Place credits the customer and inserts the order in one transaction. The
// points are added in place, so concurrent orders and profile updates of the
// same customer never overwrite each other.
func (r *PostgresRepository) Place(ctx context.Context, o *Order, rewardPoints int) error {
	const op = "place order"
	if o == nil {
		return domain.Validation(op, "order is nil")
	}
	if rewardPoints < 0 {
		return domain.Validation(op, "reward points must not be negative")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Storage(op, fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, addRewardPointsSQL, o.CustomerID(), rewardPoints)
	if err != nil {
		return domain.Storage(op, fmt.Errorf("add reward points: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("customer", o.CustomerID())
	}

	if err := insertOrder(ctx, tx, o); err != nil {
		return domain.Storage(op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Storage(op, fmt.Errorf("commit: %w", err))
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*Order, error) {
	const op = "find order"

	var orderID, customerID string
	err := r.pool.QueryRow(ctx, selectOrderSQL, id).Scan(&orderID, &customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("order", id)
		}
		return nil, domain.Storage(op, fmt.Errorf("select order: %w", err))
	}

	rows, err := r.pool.Query(ctx, selectItemsSQL, orderID)
	if err != nil {
		return nil, domain.Storage(op, fmt.Errorf("select order_items: %w", err))
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.ProductID, &it.Quantity); err != nil {
			return nil, domain.Storage(op, fmt.Errorf("scan order_item: %w", err))
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storage(op, fmt.Errorf("rows: %w", err))
	}

	return restore(op, orderID, customerID, items)
}

// FindAll loads every order and then all of their items with a single
// batched query.
func (r *PostgresRepository) FindAll(ctx context.Context) ([]*Order, error) {
	const op = "find all orders"

	rows, err := r.pool.Query(ctx, selectOrdersSQL)
	if err != nil {
		return nil, domain.Storage(op, fmt.Errorf("select orders: %w", err))
	}

	type header struct {
		id         string
		customerID string
	}
	var headers []header
	for rows.Next() {
		var h header
		if err := rows.Scan(&h.id, &h.customerID); err != nil {
			rows.Close()
			return nil, domain.Storage(op, fmt.Errorf("scan order: %w", err))
		}
		headers = append(headers, h)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, domain.Storage(op, fmt.Errorf("rows: %w", err))
	}

	orders := make([]*Order, 0, len(headers))
	if len(headers) == 0 {
		return orders, nil
	}

	ids := make([]string, 0, len(headers))
	for _, h := range headers {
		ids = append(ids, h.id)
	}

	itemRows, err := r.pool.Query(ctx, selectItemsByOrdersSQL, ids)
	if err != nil {
		return nil, domain.Storage(op, fmt.Errorf("select order_items: %w", err))
	}
	defer itemRows.Close()

	itemsByOrder := make(map[string][]Item, len(headers))
	for itemRows.Next() {
		var orderID string
		var it Item
		if err := itemRows.Scan(&orderID, &it.ID, &it.Name, &it.Price, &it.ProductID, &it.Quantity); err != nil {
			return nil, domain.Storage(op, fmt.Errorf("scan order_item: %w", err))
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], it)
	}
	if err := itemRows.Err(); err != nil {
		return nil, domain.Storage(op, fmt.Errorf("rows: %w", err))
	}

	for _, h := range headers {
		o, err := restore(op, h.id, h.customerID, itemsByOrder[h.id])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Update replaces the stored order and all of its items. The existing row is
// deleted (cascading to order_items) and the new aggregate is inserted under
// the same id, both inside one transaction.
func (r *PostgresRepository) Update(ctx context.Context, o *Order) error {
	const op = "update order"
	if o == nil {
		return domain.Validation(op, "order is nil")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Storage(op, fmt.Errorf("begin tx: %w", err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, deleteOrderSQL, o.ID())
	if err != nil {
		return domain.Storage(op, fmt.Errorf("delete order: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("order", o.ID())
	}

	if err := insertOrder(ctx, tx, o); err != nil {
		return domain.Storage(op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Storage(op, fmt.Errorf("commit: %w", err))
	}
	return nil
}

func insertOrder(ctx context.Context, ex execer, o *Order) error {
	if _, err := ex.Exec(ctx, insertOrderSQL, o.ID(), o.CustomerID(), o.Total()); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i, it := range o.items {
		_, err := ex.Exec(ctx, insertItemSQL,
			it.ID, o.ID(), it.ProductID, it.Name, it.Price, it.Quantity, i,
		)
		if err != nil {
			return fmt.Errorf("insert order_item %s: %w", it.ID, err)
		}
	}
	return nil
}

// restore rebuilds an aggregate from stored rows. A stored order without
// items cannot form an Order and is reported as a storage fault.
func restore(op, id, customerID string, items []Item) (*Order, error) {
	if len(items) == 0 {
		return nil, domain.Storage(op, fmt.Errorf("order %s has no items", id))
	}
	o, err := New(id, customerID, items)
	if err != nil {
		return nil, domain.Storage(op, fmt.Errorf("restore order %s: %v", id, err))
	}
	return o, nil
}
