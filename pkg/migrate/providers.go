package migrate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// StaticProvider serves a migration set compiled into the binary
type StaticProvider struct {
	migrations []Migration
}

// NewStaticProvider creates a provider backed by a fixed migration slice
func NewStaticProvider(migrations []Migration) *StaticProvider {
	return &StaticProvider{migrations: migrations}
}

// Migrations returns a copy of the static migration set
func (sp *StaticProvider) Migrations() ([]Migration, error) {
	out := make([]Migration, len(sp.migrations))
	copy(out, sp.migrations)
	return out, nil
}

// FileProvider loads migrations from a directory of SQL files
type FileProvider struct {
	dir string
}

// NewFileProvider creates a new file-based migration provider
func NewFileProvider(dir string) *FileProvider {
	return &FileProvider{dir: dir}
}

// Regular expressions matching migration files
// Format: 001_migration_name.up.sql or 001_migration_name.down.sql
var (
	upRegex   = regexp.MustCompile(`^(\d+)_(.+)\.up\.sql$`)
	downRegex = regexp.MustCompile(`^(\d+)_(.+)\.down\.sql$`)
)

// Migrations loads all migrations from the filesystem
func (fp *FileProvider) Migrations() ([]Migration, error) {
	migrationFiles := make(map[int]*Migration)

	err := filepath.WalkDir(fp.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		filename := d.Name()

		if matches := upRegex.FindStringSubmatch(filename); matches != nil {
			return addMigrationFile(migrationFiles, path, matches, true)
		}
		if matches := downRegex.FindStringSubmatch(filename); matches != nil {
			return addMigrationFile(migrationFiles, path, matches, false)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to read migration directory %s: %w", fp.dir, err)
	}

	var migrations []Migration
	for _, migration := range migrationFiles {
		migrations = append(migrations, *migration)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

func addMigrationFile(files map[int]*Migration, path string, matches []string, up bool) error {
	version, err := strconv.Atoi(matches[1])
	if err != nil {
		return fmt.Errorf("invalid version number in file %s: %w", filepath.Base(path), err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", path, err)
	}

	if files[version] == nil {
		files[version] = &Migration{
			Version: version,
			Name:    strings.ReplaceAll(matches[2], "_", " "),
		}
	}
	if up {
		files[version].Up = string(content)
	} else {
		files[version].Down = string(content)
	}

	return nil
}
