package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)`

// MigrateUp applies every up migration not yet recorded in schema_migrations.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(migrationsTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	names, err := migrationNames(".up.sql")
	if err != nil {
		return err
	}
	for _, name := range names {
		version := strings.TrimSuffix(name, ".up.sql")
		var seen int
		if err := db.QueryRow(`SELECT COUNT(1) FROM schema_migrations WHERE version = ?`, version).Scan(&seen); err != nil {
			return fmt.Errorf("check migration %s: %w", version, err)
		}
		if seen > 0 {
			continue
		}
		if err := execMigration(db, name); err != nil {
			return err
		}
		if _, err := db.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
			return fmt.Errorf("record migration %s: %w", version, err)
		}
	}
	return nil
}

// MigrateDown reverts every recorded migration, newest first.
func MigrateDown(db *sql.DB) error {
	if _, err := db.Exec(migrationsTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	names, err := migrationNames(".down.sql")
	if err != nil {
		return err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	for _, name := range names {
		if err := execMigration(db, name); err != nil {
			return err
		}
		version := strings.TrimSuffix(name, ".down.sql")
		if _, err := db.Exec(`DELETE FROM schema_migrations WHERE version = ?`, version); err != nil {
			return fmt.Errorf("unrecord migration %s: %w", version, err)
		}
	}
	return nil
}

func migrationNames(suffix string) ([]string, error) {
	entries, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("glob migrations: %w", err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimPrefix(e, "migrations/"))
	}
	sort.Strings(out)
	return out, nil
}

func execMigration(db *sql.DB, name string) error {
	sqlBytes, err := migrationFiles.ReadFile("migrations/" + name)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}
	if _, err := db.Exec(string(sqlBytes)); err != nil {
		return fmt.Errorf("apply migration %s: %w", name, err)
	}
	return nil
}
