package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/gridsentry/dgaportal/pkg/config"
	"github.com/gridsentry/dgaportal/pkg/migrate"
	_ "modernc.org/sqlite"
)

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML configuration file (required)")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite database file (required)")
		force      = flag.Bool("force", false, "Overwrite existing SQLite database")
		dryRun     = flag.Bool("dry-run", false, "Show what would be done without executing")
	)
	flag.Parse()

	if *yamlFile == "" || *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <config.yaml> -sqlite <config.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Check if YAML file exists
	if _, err := os.Stat(*yamlFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: YAML file does not exist: %s\n", *yamlFile)
		os.Exit(1)
	}

	// Check if SQLite file already exists
	if _, err := os.Stat(*sqliteFile); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Error: SQLite file already exists: %s\n", *sqliteFile)
		fmt.Fprintf(os.Stderr, "Use -force to overwrite or choose a different filename\n")
		os.Exit(1)
	}

	fmt.Printf("Converting YAML configuration to SQLite...\n")
	fmt.Printf("  Source: %s\n", *yamlFile)
	fmt.Printf("  Target: %s\n", *sqliteFile)

	if *dryRun {
		fmt.Println("DRY RUN - No changes will be made")
	}

	// Load YAML configuration
	fmt.Printf("Loading YAML configuration...\n")
	yamlProvider := config.NewYAMLProvider(*yamlFile)
	configData, err := yamlProvider.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML configuration: %v\n", err)
		os.Exit(1)
	}

	if *dryRun {
		printConfigSummary(configData)
		fmt.Println("DRY RUN complete - no database created")
		return
	}

	// Remove any existing database now that -force was confirmed
	if *force {
		if err := os.Remove(*sqliteFile); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error removing existing database: %v\n", err)
			os.Exit(1)
		}
	}

	// Create the database and bring its schema to the current version
	fmt.Printf("Creating SQLite database...\n")
	if err := createDatabase(*sqliteFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating database: %v\n", err)
		os.Exit(1)
	}

	// Save configuration through the SQLite provider
	fmt.Printf("Writing configuration...\n")
	sqliteProvider, err := config.NewSQLiteProvider(*sqliteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening SQLite database: %v\n", err)
		os.Exit(1)
	}
	defer sqliteProvider.Close()

	if err := sqliteProvider.SaveConfig(configData); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving configuration: %v\n", err)
		os.Exit(1)
	}

	printConfigSummary(configData)
	fmt.Printf("\nConversion complete: %s\n", *sqliteFile)
	fmt.Printf("Start the portal with: dgaportal -config %s -config-backend sqlite\n", *sqliteFile)
}

func createDatabase(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	migrator := migrate.NewMigrator(db, migrate.NewStaticProvider(config.Migrations()), "")
	if err := migrator.MigrateUp(); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func printConfigSummary(configData *config.ConfigData) {
	fmt.Println("\nConfiguration Summary:")
	fmt.Printf("  Portal: listen %s port %d", configData.Portal.ListenAddr, configData.Portal.Port)
	if configData.Portal.Cert != "" && configData.Portal.Key != "" {
		fmt.Printf(" (TLS)")
	}
	fmt.Println()
	if configData.Portal.PageTitle != "" {
		fmt.Printf("  Page title: %s\n", configData.Portal.PageTitle)
	}
	d := configData.GasDefaults
	fmt.Printf("  Gas defaults (ppm): H2=%.1f CH4=%.1f C2H4=%.1f C2H2=%.1f CO=%.1f\n",
		d.H2, d.CH4, d.C2H4, d.C2H2, d.CO)
}
