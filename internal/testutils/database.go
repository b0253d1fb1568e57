package testutils

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest"
	logger "github.com/sirupsen/logrus"
)

const (
	postgresImage    = "postgres"
	postgresTag      = "16-alpine"
	postgresPassword = "secret"
	postgresDB       = "leads"
)

// RunTestDatabase starts a throwaway postgres container. The returned
// cleanup func is always safe to call, even when err is not nil.
func RunTestDatabase() (string, func(), error) {
	noop := func() {}

	pool, err := dockertest.NewPool("")
	if err != nil {
		return "", noop, fmt.Errorf("could not connect to docker %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: postgresImage,
		Tag:        postgresTag,
		Env: []string{
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDB,
		},
	})
	if err != nil {
		return "", noop, fmt.Errorf("could not start postgres %w", err)
	}

	cleanUp := func() {
		if err := pool.Purge(resource); err != nil {
			logger.Errorf("Could not purge postgres container %s", err.Error())
		}
	}

	dsn := fmt.Sprintf("postgres://postgres:%s@localhost:%s/%s?sslmode=disable",
		postgresPassword, resource.GetPort("5432/tcp"), postgresDB)

	err = pool.Retry(func() error {
		conn, err := pgx.Connect(context.Background(), dsn)
		if err != nil {
			return err
		}
		defer conn.Close(context.Background())
		return conn.Ping(context.Background())
	})
	if err != nil {
		return "", cleanUp, fmt.Errorf("postgres did not come up %w", err)
	}

	return dsn, cleanUp, nil
}
