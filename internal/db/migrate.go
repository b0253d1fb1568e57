package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrations embed.FS

func MigratePostgres(connString string) error {
	src, err := iofs.New(migrations, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("reading migrations %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, connString)
	if err != nil {
		return fmt.Errorf("creating migrator %w", err)
	}
	defer m.Close()

	return up(m)
}

// MigrateSQLite runs the migrations over its own connection; closing the
// migrator closes that connection too.
func MigrateSQLite(path string) error {
	conn, err := sql.Open(sqliteDriver, sqliteDSN(path))
	if err != nil {
		return fmt.Errorf("opening sqlite %w", err)
	}

	driver, err := sqlitemigrate.WithInstance(conn, &sqlitemigrate.Config{})
	if err != nil {
		conn.Close()
		return fmt.Errorf("creating migration driver %w", err)
	}

	src, err := iofs.New(migrations, "migrations/sqlite")
	if err != nil {
		driver.Close()
		return fmt.Errorf("reading migrations %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("creating migrator %w", err)
	}
	defer m.Close()

	return up(m)
}

func up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations %w", err)
	}
	return nil
}
