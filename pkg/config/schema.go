package config

import "github.com/gridsentry/dgaportal/pkg/migrate"

// Migrations returns the schema migration set for SQLite configuration
// databases. cmd/config-convert applies it when creating a new database.
func Migrations() []migrate.Migration {
	return []migrate.Migration{
		{
			Version: 1,
			Name:    "initial config schema",
			Up: `
CREATE TABLE IF NOT EXISTS configs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS portal_configs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	config_id INTEGER NOT NULL,
	tls_cert TEXT,
	tls_key TEXT,
	port INTEGER,
	listen_addr TEXT,
	page_title TEXT,
	enable_cors BOOLEAN NOT NULL DEFAULT 0,
	FOREIGN KEY (config_id) REFERENCES configs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS gas_defaults (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	config_id INTEGER NOT NULL,
	h2 REAL NOT NULL DEFAULT 0,
	ch4 REAL NOT NULL DEFAULT 0,
	c2h4 REAL NOT NULL DEFAULT 0,
	c2h2 REAL NOT NULL DEFAULT 0,
	co REAL NOT NULL DEFAULT 0,
	o2 REAL NOT NULL DEFAULT 0,
	FOREIGN KEY (config_id) REFERENCES configs(id) ON DELETE CASCADE
);
`,
			Down: `
DROP TABLE IF EXISTS gas_defaults;
DROP TABLE IF EXISTS portal_configs;
DROP TABLE IF EXISTS configs;
`,
		},
	}
}
