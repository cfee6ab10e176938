package repository

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies embedded schema migrations. The binary carries its
// migrations, so there is no dependency on the working directory at startup.
func RunMigrations(databaseURL string) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		var dirtyErr migrate.ErrDirty
		if errors.As(err, &dirtyErr) {
			return recoverDirty(m)
		}
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// recoverDirty forces the schema version back to the last clean one and
// replays migrations. A dirty flag means a previous run died mid-migration.
func recoverDirty(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("get current migration version: %w", err)
	}
	if !dirty {
		return fmt.Errorf("dirty migrations reported at version %d but state is clean", version)
	}

	forceVersion := int(version) - 1
	if forceVersion < 0 {
		forceVersion = 0
	}
	if err := m.Force(forceVersion); err != nil {
		return fmt.Errorf("force clean migration version %d: %w", forceVersion, err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rerun migrations after dirty state: %w", err)
	}
	return nil
}
