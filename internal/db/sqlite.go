package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/wellywell/leadrelay/internal/types"
)

const sqliteDriver = "sqlite"

var sqliteTimeFormats = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
}

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {

	err := MigrateSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	conn, err := sql.Open(sqliteDriver, sqliteDSN(path))
	if err != nil {
		return nil, err
	}
	// one writer at a time is all sqlite can do anyway
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open %s %w", path, err)
	}

	return &SQLite{db: conn}, nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func (d *SQLite) CreateOrder(ctx context.Context, name string, contact string, details string) (types.Order, error) {

	createdAt := time.Now().UTC()

	query := `
		INSERT INTO orders (name, contact, details, status, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := d.db.ExecContext(ctx, query, name, contact, details, types.PendingStatus, createdAt)
	if err != nil {
		if isSQLiteConstraint(err) {
			return types.Order{}, constraintError("create order", err)
		}
		return types.Order{}, storageError("create order", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return types.Order{}, storageError("create order", err)
	}

	return types.Order{
		ID:        int(id),
		Name:      name,
		Contact:   contact,
		Details:   details,
		Status:    types.PendingStatus,
		CreatedAt: createdAt,
	}, nil
}

func (d *SQLite) UpdateOrderStatus(ctx context.Context, orderID int, status types.Status) (bool, error) {
	query := `
		UPDATE orders
		SET status = ?
		WHERE id = ?`

	return d.update(ctx, query, status, orderID)
}

func (d *SQLite) UpdatePendingOrderStatus(ctx context.Context, orderID int, status types.Status) (bool, error) {
	query := `
		UPDATE orders
		SET status = ?
		WHERE id = ?
		AND status = 'pending'`

	return d.update(ctx, query, status, orderID)
}

func (d *SQLite) update(ctx context.Context, query string, status types.Status, orderID int) (bool, error) {
	res, err := d.db.ExecContext(ctx, query, status, orderID)
	if err != nil {
		if isSQLiteConstraint(err) {
			return false, constraintError("update status", err)
		}
		return false, storageError("update status", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, storageError("update status", err)
	}
	return affected > 0, nil
}

func (d *SQLite) ListOrders(ctx context.Context) ([]types.Order, error) {

	query := `
		SELECT id, name, contact, COALESCE(details, ''), COALESCE(status, 'pending'), created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError("list orders", err)
	}
	defer rows.Close()

	orders := make([]types.Order, 0)
	for rows.Next() {
		var o types.Order
		if err := rows.Scan(&o.ID, &o.Name, &o.Contact, &o.Details, &o.Status, timeScanner{&o.CreatedAt}); err != nil {
			return nil, storageError("list orders", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list orders", err)
	}
	return orders, nil
}

func (d *SQLite) Close() error {
	return d.db.Close()
}

func isSQLiteConstraint(err error) bool {
	var sqliteErr *sqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}

// timeScanner accepts created_at both as a parsed time and as the raw text
// sqlite keeps it in.
type timeScanner struct {
	t *time.Time
}

func (s timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v.UTC()
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	case int64:
		*s.t = time.Unix(v, 0).UTC()
		return nil
	case nil:
		*s.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported created_at type %T", src)
	}
}

func (s timeScanner) parse(v string) error {
	for _, layout := range sqliteTimeFormats {
		if t, err := time.Parse(layout, v); err == nil {
			*s.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unparseable created_at %q", v)
}
