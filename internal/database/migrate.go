package database

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/kioku/schemas"
)

// MigrationStatus is the schema version recorded in the database.
type MigrationStatus struct {
	Version uint
	Dirty   bool
}

// Migrate applies every pending migration embedded in the schemas package.
// An up-to-date schema is not an error.
func Migrate(db *sqlx.DB) (MigrationStatus, error) {
	return migrateWith(db, schemas.Migrations)
}

func migrateWith(db *sqlx.DB, migrations fs.FS) (MigrationStatus, error) {
	m, err := newMigrate(db, migrations)
	if err != nil {
		return MigrationStatus{}, err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return MigrationStatus{}, fmt.Errorf("migrate.Up() > %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, fmt.Errorf("migrate.Version() > %w", err)
	}
	slog.Info("schema migrated", "version", version, "dirty", dirty)
	return MigrationStatus{Version: version, Dirty: dirty}, nil
}

func newMigrate(db *sqlx.DB, migrations fs.FS) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("iofs.New() > %w", err)
	}
	driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("mysql.WithInstance() > %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return nil, fmt.Errorf("migrate.NewWithInstance() > %w", err)
	}
	return m, nil
}
