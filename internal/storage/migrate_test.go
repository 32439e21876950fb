package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("repeated migrate up failed: %v", err)
	}

	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	var tables int
	if err := db.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = 'completion_log'`).Scan(&tables); err != nil {
		t.Fatalf("inspect schema: %v", err)
	}
	if tables != 0 {
		t.Fatal("expected completion_log to be dropped")
	}

	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}

	d := time.Date(2026, 2, 9, 0, 0, 0, 0, time.Local)
	if err := repo.PutEntry(context.Background(), Entry{HabitID: "rt-1", Day: d, Level: 3}); err != nil {
		t.Fatalf("insert after roundtrip failed: %v", err)
	}
	got, err := repo.GetEntry(context.Background(), "rt-1", d)
	if err != nil {
		t.Fatalf("get after roundtrip failed: %v", err)
	}
	if got.Level != 3 {
		t.Fatalf("unexpected level after roundtrip: %d", got.Level)
	}
}

func TestOpenSQLiteMigrates(t *testing.T) {
	repo, err := OpenSQLite(filepath.Join(t.TempDir(), "open.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer repo.Close()

	entries, err := repo.ListEntries(context.Background(), EntryListFilter{})
	if err != nil {
		t.Fatalf("list on fresh db: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty log, got %d", len(entries))
	}
}
