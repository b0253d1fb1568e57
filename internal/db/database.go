package db

import (
	"context"
	"strings"

	"github.com/wellywell/leadrelay/internal/types"
)

// Database is the order store. Both backends behave identically: ids are
// assigned by the database, listing is newest first and status updates on
// missing ids are not errors.
type Database interface {
	CreateOrder(ctx context.Context, name string, contact string, details string) (types.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status types.Status) (bool, error)
	UpdatePendingOrderStatus(ctx context.Context, orderID int, status types.Status) (bool, error)
	ListOrders(ctx context.Context) ([]types.Order, error)
	Close() error
}

// NewDatabase opens Postgres for postgres:// DSNs and treats anything else
// as a path to an SQLite file.
func NewDatabase(dsn string) (Database, error) {
	if IsPostgresDSN(dsn) {
		return NewPostgres(dsn)
	}
	return NewSQLite(dsn)
}

func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
