package db

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellywell/leadrelay/internal/types"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	database, err := NewSQLite(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestSQLiteCreateOrder(t *testing.T) {
	database := newTestSQLite(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	order, err := database.CreateOrder(ctx, "Ann", "@ann", "")
	require.NoError(t, err)

	assert.Equal(t, 1, order.ID)
	assert.Equal(t, types.PendingStatus, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	assert.True(t, order.CreatedAt.After(before))

	orders, err := database.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Ann", orders[0].Name)
	assert.Equal(t, "@ann", orders[0].Contact)
	assert.Equal(t, "", orders[0].Details)
	assert.Equal(t, types.PendingStatus, orders[0].Status)
	assert.WithinDuration(t, order.CreatedAt, orders[0].CreatedAt, time.Millisecond)
}

func TestSQLiteIDsIncrease(t *testing.T) {
	database := newTestSQLite(t)
	ctx := context.Background()

	last := 0
	for i := 0; i < 10; i++ {
		order, err := database.CreateOrder(ctx, "n", "c", "d")
		require.NoError(t, err)
		assert.Greater(t, order.ID, last)
		last = order.ID
	}
}

func TestSQLiteIDsNotReusedAfterDelete(t *testing.T) {
	database := newTestSQLite(t)
	ctx := context.Background()

	first, err := database.CreateOrder(ctx, "a", "a", "")
	require.NoError(t, err)
	second, err := database.CreateOrder(ctx, "b", "b", "")
	require.NoError(t, err)

	_, err = database.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", second.ID)
	require.NoError(t, err)

	third, err := database.CreateOrder(ctx, "c", "c", "")
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestSQLiteConstraintViolation(t *testing.T) {
	database := newTestSQLite(t)
	ctx := context.Background()

	testCases := []struct {
		name    string
		inName  string
		contact string
	}{
		{"empty name", "", "@x"},
		{"empty contact", "x", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := database.CreateOrder(ctx, tc.inName, tc.contact, "")
			var storageErr *StorageError
			assert.True(t, errors.As(err, &storageErr))
			assert.ErrorIs(t, err, ErrConstraintViolation)
		})
	}

	orders, err := database.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSQLiteUpdateOrderStatus(t *testing.T) {
	database := newTestSQLite(t)
	ctx := context.Background()

	accepted, err := database.CreateOrder(ctx, "a", "a", "")
	require.NoError(t, err)
	rejected, err := database.CreateOrder(ctx, "r", "r", "")
	require.NoError(t, err)

	found, err := database.UpdateOrderStatus(ctx, accepted.ID, types.AcceptedStatus)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = database.UpdateOrderStatus(ctx, rejected.ID, types.RejectedStatus)
	require.NoError(t, err)
	assert.True(t, found)

	// reapplying is allowed, last write wins
	found, err = database.UpdateOrderStatus(ctx, accepted.ID, types.AcceptedStatus)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = database.UpdateOrderStatus(ctx, 999, types.AcceptedStatus)
	require.NoError(t, err)
	assert.False(t, found)

	orders, err := database.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	statuses := map[int]types.Status{}
	for _, o := range orders {
		statuses[o.ID] = o.Status
	}
	assert.Equal(t, types.AcceptedStatus, statuses[accepted.ID])
	assert.Equal(t, types.RejectedStatus, statuses[rejected.ID])
}

func TestSQLiteUpdateOrderStatusInvalidStatus(t *testing.T) {
	database := newTestSQLite(t)
	ctx := context.Background()

	order, err := database.CreateOrder(ctx, "a", "a", "")
	require.NoError(t, err)

	_, err = database.UpdateOrderStatus(ctx, order.ID, types.Status("lost"))
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestSQLiteUpdatePendingOrderStatus(t *testing.T) {
	database := newTestSQLite(t)
	ctx := context.Background()

	order, err := database.CreateOrder(ctx, "a", "a", "")
	require.NoError(t, err)

	updated, err := database.UpdatePendingOrderStatus(ctx, order.ID, types.AcceptedStatus)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = database.UpdatePendingOrderStatus(ctx, order.ID, types.RejectedStatus)
	require.NoError(t, err)
	assert.False(t, updated)

	orders, err := database.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.AcceptedStatus, orders[0].Status)
}

func TestSQLiteListOrdersNewestFirst(t *testing.T) {
	database := newTestSQLite(t)
	ctx := context.Background()

	empty, err := database.ListOrders(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)

	var created []int
	for _, name := range []string{"first", "second", "third"} {
		order, err := database.CreateOrder(ctx, name, "@"+name, "")
		require.NoError(t, err)
		created = append(created, order.ID)
	}

	orders, err := database.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []int{created[2], created[1], created[0]}, []int{orders[0].ID, orders[1].ID, orders[2].ID})
	assert.Equal(t, "third", orders[0].Name)
}

func TestSQLiteConcurrentCreates(t *testing.T) {
	database := newTestSQLite(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan int, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := database.CreateOrder(ctx, "n", "c", "")
			if assert.NoError(t, err) {
				ids <- order.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, 20)
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.db")
	ctx := context.Background()

	database, err := NewSQLite(path)
	require.NoError(t, err)
	_, err = database.CreateOrder(ctx, "Ann", "@ann", "site")
	require.NoError(t, err)
	require.NoError(t, database.Close())

	database, err = NewSQLite(path)
	require.NoError(t, err)
	defer database.Close()

	orders, err := database.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "site", orders[0].Details)
}

func TestTimeScanner(t *testing.T) {
	want := time.Date(2024, 6, 12, 15, 13, 29, 0, time.UTC)

	testCases := []struct {
		name string
		src  any
	}{
		{"time", want},
		{"driver text", "2024-06-12 15:13:29+00:00"},
		{"current_timestamp", "2024-06-12 15:13:29"},
		{"bytes", []byte("2024-06-12T15:13:29Z")},
		{"unix", want.Unix()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got time.Time
			err := timeScanner{&got}.Scan(tc.src)
			assert.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}

	var got time.Time
	assert.Error(t, timeScanner{&got}.Scan("yesterday"))
}

func TestNewDatabaseSelectsBackend(t *testing.T) {
	assert.True(t, IsPostgresDSN("postgres://postgres@localhost:5432/leads?sslmode=disable"))
	assert.True(t, IsPostgresDSN("postgresql://localhost/leads"))
	assert.False(t, IsPostgresDSN("./orders.db"))

	database, err := NewDatabase(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	defer database.Close()
	_, ok := database.(*SQLite)
	assert.True(t, ok)
}
