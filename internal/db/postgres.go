package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wellywell/leadrelay/internal/types"
)

type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(connString string) (*Postgres, error) {

	err := MigratePostgres(connString)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	ctx := context.Background()
	p, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	return &Postgres{
		pool: p,
	}, nil
}

func (d *Postgres) CreateOrder(ctx context.Context, name string, contact string, details string) (types.Order, error) {

	query := `
		INSERT INTO orders (name, contact, details, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, contact, details, status, created_at
		`
	rows, err := d.pool.Query(ctx, query, name, contact, details, types.PendingStatus)
	if err != nil {
		return types.Order{}, classifyPgError("create order", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		return types.Order{}, classifyPgError("create order", err)
	}
	order.CreatedAt = order.CreatedAt.UTC()
	return order, nil
}

func (d *Postgres) UpdateOrderStatus(ctx context.Context, orderID int, status types.Status) (bool, error) {
	query := `
		UPDATE orders
		SET status = $1
		WHERE id = $2`

	return d.update(ctx, query, status, orderID)
}

func (d *Postgres) UpdatePendingOrderStatus(ctx context.Context, orderID int, status types.Status) (bool, error) {
	query := `
		UPDATE orders
		SET status = $1
		WHERE id = $2
		AND status = 'pending'`

	return d.update(ctx, query, status, orderID)
}

func (d *Postgres) update(ctx context.Context, query string, status types.Status, orderID int) (bool, error) {
	tag, err := d.pool.Exec(ctx, query, status, orderID)
	if err != nil {
		return false, classifyPgError("update status", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (d *Postgres) ListOrders(ctx context.Context) ([]types.Order, error) {

	query := `
		SELECT id, name, contact, details, status, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`
	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, storageError("list orders", fmt.Errorf("failed collecting rows %w", err))
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		return nil, storageError("list orders", fmt.Errorf("failed unpacking rows %w", err))
	}
	for i := range orders {
		orders[i].CreatedAt = orders[i].CreatedAt.UTC()
	}
	return orders, nil
}

func (d *Postgres) Close() error {
	d.pool.Close()
	return nil
}

func classifyPgError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return constraintError(op, err)
	}
	return storageError(op, err)
}
