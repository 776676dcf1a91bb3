// Package migrate applies versioned schema migrations to a SQL database.
//
// Each migration runs inside its own transaction together with the version
// bookkeeping, so a failed migration leaves the database at the previous
// version.
package migrate

import (
	"database/sql"
	"fmt"
	"sort"
)

// Migration represents a single database migration
type Migration struct {
	Version int
	Name    string
	Up      string
	Down    string
}

// Provider defines how migrations are loaded
type Provider interface {
	Migrations() ([]Migration, error)
}

// Migrator handles the execution of migrations and tracks the applied
// version in a bookkeeping table
type Migrator struct {
	db       *sql.DB
	provider Provider
	table    string
}

// NewMigrator creates a new migrator instance. An empty table name defaults
// to "schema_migrations".
func NewMigrator(db *sql.DB, provider Provider, table string) *Migrator {
	if table == "" {
		table = "schema_migrations"
	}
	return &Migrator{
		db:       db,
		provider: provider,
		table:    table,
	}
}

// MigrateUp runs all pending migrations up to the latest version
func (m *Migrator) MigrateUp() error {
	return m.MigrateTo(-1) // -1 means migrate to latest
}

// MigrateTo runs migrations up or down to reach a specific version.
// A target of -1 means the latest known version.
func (m *Migrator) MigrateTo(targetVersion int) error {
	if err := m.createVersionTable(); err != nil {
		return err
	}

	currentVersion, err := m.CurrentVersion()
	if err != nil {
		return err
	}

	migrations, err := m.provider.Migrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	// Sort migrations by version ascending
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	// Determine target version if -1 (latest)
	if targetVersion == -1 {
		if len(migrations) == 0 {
			return nil
		}
		targetVersion = migrations[len(migrations)-1].Version
	}

	if targetVersion < currentVersion {
		// Roll back in descending version order
		for i := len(migrations) - 1; i >= 0; i-- {
			migration := migrations[i]
			if migration.Version <= currentVersion && migration.Version > targetVersion {
				if err := m.executeMigration(migration, false); err != nil {
					return fmt.Errorf("failed to roll back migration %d: %w", migration.Version, err)
				}
			}
		}
		return nil
	}

	// Run up migrations
	for _, migration := range migrations {
		if migration.Version > currentVersion && migration.Version <= targetVersion {
			if err := m.executeMigration(migration, true); err != nil {
				return fmt.Errorf("failed to apply migration %d: %w", migration.Version, err)
			}
		}
	}

	return nil
}

// CurrentVersion returns the highest applied migration version
func (m *Migrator) CurrentVersion() (int, error) {
	if err := m.createVersionTable(); err != nil {
		return 0, err
	}

	query := fmt.Sprintf("SELECT COALESCE(MAX(version), 0) FROM %s", m.table)

	var version int
	if err := m.db.QueryRow(query).Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}

	return version, nil
}

// PendingMigrations returns migrations that haven't been applied yet,
// sorted by version ascending
func (m *Migrator) PendingMigrations() ([]Migration, error) {
	currentVersion, err := m.CurrentVersion()
	if err != nil {
		return nil, err
	}

	migrations, err := m.provider.Migrations()
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	var pending []Migration
	for _, migration := range migrations {
		if migration.Version > currentVersion {
			pending = append(pending, migration)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].Version < pending[j].Version
	})

	return pending, nil
}

// executeMigration runs a single migration up or down
func (m *Migrator) executeMigration(migration Migration, up bool) error {
	stmt := migration.Up
	direction := "up"
	if !up {
		stmt = migration.Down
		direction = "down"
	}

	if stmt == "" {
		return fmt.Errorf("migration %d has no %s SQL", migration.Version, direction)
	}

	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(stmt); err != nil {
		return fmt.Errorf("failed to execute migration SQL: %w", err)
	}

	// Update version
	newVersion := migration.Version
	if !up {
		newVersion = migration.Version - 1
	}
	if err := m.setVersion(tx, newVersion); err != nil {
		return fmt.Errorf("failed to update migration version: %w", err)
	}

	return tx.Commit()
}

// setVersion records the applied version inside the migration transaction
func (m *Migrator) setVersion(tx *sql.Tx, version int) error {
	if version == 0 {
		// Delete all version records when rolling back to 0
		_, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", m.table))
		return err
	}

	query := fmt.Sprintf(`
		INSERT OR REPLACE INTO %s (version, applied_at)
		VALUES (?, CURRENT_TIMESTAMP)
	`, m.table)
	_, err := tx.Exec(query, version)
	return err
}

// createVersionTable creates the migration tracking table
func (m *Migrator) createVersionTable() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`, m.table)

	if _, err := m.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}

	return nil
}
