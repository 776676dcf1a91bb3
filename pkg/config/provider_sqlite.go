package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	portal, err := s.GetPortalConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load portal config: %w", err)
	}
	config.Portal = *portal

	defaults, err := s.GetGasDefaults()
	if err != nil {
		return nil, fmt.Errorf("failed to load gas defaults: %w", err)
	}
	config.GasDefaults = *defaults

	return config, nil
}

// GetPortalConfig returns the portal configuration from the database
func (s *SQLiteProvider) GetPortalConfig() (*PortalData, error) {
	query := `
		SELECT tls_cert, tls_key, port, listen_addr, page_title, enable_cors
		FROM portal_configs
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	portal := &PortalData{}

	var cert, key, listenAddr, pageTitle sql.NullString
	var port sql.NullInt64
	var enableCORS sql.NullBool

	err := s.db.QueryRow(query).Scan(&cert, &key, &port, &listenAddr, &pageTitle, &enableCORS)
	if err != nil {
		if err == sql.ErrNoRows {
			// No portal row yet; callers fall back to their own defaults
			return portal, nil
		}
		return nil, fmt.Errorf("failed to query portal config: %w", err)
	}

	portal.Cert = cert.String
	portal.Key = key.String
	portal.ListenAddr = listenAddr.String
	portal.PageTitle = pageTitle.String
	if port.Valid {
		portal.Port = int(port.Int64)
	}
	if enableCORS.Valid {
		portal.EnableCORS = enableCORS.Bool
	}

	return portal, nil
}

// GetGasDefaults returns the input form gas defaults from the database
func (s *SQLiteProvider) GetGasDefaults() (*GasDefaultsData, error) {
	query := `
		SELECT h2, ch4, c2h4, c2h2, co, o2
		FROM gas_defaults
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	var defaults GasDefaultsData

	err := s.db.QueryRow(query).Scan(
		&defaults.H2, &defaults.CH4, &defaults.C2H4,
		&defaults.C2H2, &defaults.CO, &defaults.O2,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			defaults = DefaultGasValues()
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to query gas defaults: %w", err)
	}

	return &defaults, nil
}

// IsReadOnly returns false since SQLite configuration can be modified
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveConfig saves complete configuration to the database
func (s *SQLiteProvider) SaveConfig(configData *ConfigData) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	configID, err := s.insertConfig(tx, "default")
	if err != nil {
		return fmt.Errorf("failed to insert config: %w", err)
	}

	if err := s.clearExistingConfig(tx, configID); err != nil {
		return fmt.Errorf("failed to clear existing config: %w", err)
	}

	if err := s.insertPortalConfig(tx, configID, &configData.Portal); err != nil {
		return fmt.Errorf("failed to insert portal config: %w", err)
	}

	if err := s.insertGasDefaults(tx, configID, &configData.GasDefaults); err != nil {
		return fmt.Errorf("failed to insert gas defaults: %w", err)
	}

	return tx.Commit()
}

func (s *SQLiteProvider) insertConfig(tx *sql.Tx, name string) (int64, error) {
	query := `INSERT OR REPLACE INTO configs (name, created_at, updated_at) VALUES (?, datetime('now'), datetime('now'))`
	result, err := tx.Exec(query, name)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *SQLiteProvider) clearExistingConfig(tx *sql.Tx, configID int64) error {
	queries := []string{
		"DELETE FROM portal_configs WHERE config_id = ?",
		"DELETE FROM gas_defaults WHERE config_id = ?",
	}

	for _, query := range queries {
		if _, err := tx.Exec(query, configID); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteProvider) insertPortalConfig(tx *sql.Tx, configID int64, portal *PortalData) error {
	query := `
		INSERT INTO portal_configs (
			config_id, tls_cert, tls_key, port, listen_addr, page_title, enable_cors
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var port sql.NullInt64
	if portal.Port != 0 {
		port = sql.NullInt64{Int64: int64(portal.Port), Valid: true}
	}

	_, err := tx.Exec(query,
		configID,
		nullString(portal.Cert),
		nullString(portal.Key),
		port,
		nullString(portal.ListenAddr),
		nullString(portal.PageTitle),
		portal.EnableCORS,
	)
	return err
}

func (s *SQLiteProvider) insertGasDefaults(tx *sql.Tx, configID int64, defaults *GasDefaultsData) error {
	query := `
		INSERT INTO gas_defaults (
			config_id, h2, ch4, c2h4, c2h2, co, o2
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := tx.Exec(query,
		configID,
		defaults.H2, defaults.CH4, defaults.C2H4,
		defaults.C2H2, defaults.CO, defaults.O2,
	)
	return err
}

// nullString converts empty strings to SQL NULL
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
