//go:build integration_tests
// +build integration_tests

package db

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellywell/leadrelay/internal/testutils"
	"github.com/wellywell/leadrelay/internal/types"
)

var DBDSN string

func TestMain(m *testing.M) {
	code, err := runMain(m)

	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func runMain(m *testing.M) (int, error) {

	databaseDSN, cleanUp, err := testutils.RunTestDatabase()
	defer cleanUp()

	if err != nil {
		return 1, err
	}
	DBDSN = databaseDSN

	exitCode := m.Run()

	return exitCode, nil

}

func truncate(t *testing.T) {
	conn, err := pgx.Connect(context.Background(), DBDSN)
	require.NoError(t, err)
	defer conn.Close(context.Background())
	_, err = conn.Exec(context.Background(), "TRUNCATE TABLE orders RESTART IDENTITY")
	require.NoError(t, err)
}

func TestPostgresCreateAndList(t *testing.T) {
	database, err := NewPostgres(DBDSN)
	require.NoError(t, err)
	defer database.Close()
	truncate(t)

	ctx := context.Background()

	t.Run("Test empty", func(t *testing.T) {
		orders, err := database.ListOrders(ctx)
		assert.NoError(t, err)
		assert.Equal(t, len(orders), 0)
	})

	t.Run("Test newest first", func(t *testing.T) {
		var ids []int
		for _, name := range []string{"first", "second", "third"} {
			order, err := database.CreateOrder(ctx, name, "@"+name, "")
			require.NoError(t, err)
			assert.Equal(t, types.PendingStatus, order.Status)
			assert.False(t, order.CreatedAt.IsZero())
			ids = append(ids, order.ID)
		}
		assert.Less(t, ids[0], ids[1])
		assert.Less(t, ids[1], ids[2])

		orders, err := database.ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.Equal(t, "third", orders[0].Name)
		assert.Equal(t, "first", orders[2].Name)
	})
}

func TestPostgresConstraint(t *testing.T) {
	database, err := NewPostgres(DBDSN)
	require.NoError(t, err)
	defer database.Close()
	truncate(t)

	_, err = database.CreateOrder(context.Background(), "", "@x", "")
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestPostgresUpdateStatus(t *testing.T) {
	database, err := NewPostgres(DBDSN)
	require.NoError(t, err)
	defer database.Close()
	truncate(t)

	ctx := context.Background()
	order, err := database.CreateOrder(ctx, "Ann", "@ann", "")
	require.NoError(t, err)

	found, err := database.UpdateOrderStatus(ctx, 12345, types.AcceptedStatus)
	assert.NoError(t, err)
	assert.False(t, found)

	updated, err := database.UpdatePendingOrderStatus(ctx, order.ID, types.RejectedStatus)
	assert.NoError(t, err)
	assert.True(t, updated)

	updated, err = database.UpdatePendingOrderStatus(ctx, order.ID, types.AcceptedStatus)
	assert.NoError(t, err)
	assert.False(t, updated)

	found, err = database.UpdateOrderStatus(ctx, order.ID, types.AcceptedStatus)
	assert.NoError(t, err)
	assert.True(t, found)

	orders, err := database.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.AcceptedStatus, orders[0].Status)
}
