package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	sqliteTimeLayout = time.RFC3339Nano
	sqliteDayLayout  = "2006-01-02"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens the log at path and applies pending migrations.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) PutEntry(ctx context.Context, in Entry) error {
	if strings.TrimSpace(in.HabitID) == "" {
		return errors.New("storage: entry habit_id is required")
	}
	if in.Day.IsZero() {
		return errors.New("storage: entry day is required")
	}
	if in.Level < 0 || in.Level > 4 {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, in.Level)
	}
	recorded := in.RecordedAt
	if recorded.IsZero() {
		recorded = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO completion_log (habit_id, day, level, recorded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (habit_id, day) DO UPDATE SET level = excluded.level, recorded_at = excluded.recorded_at`,
		in.HabitID, dayKey(in.Day), in.Level, mustTime(recorded),
	)
	return err
}

func (r *SQLiteRepository) GetEntry(ctx context.Context, habitID string, day time.Time) (Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT habit_id, day, level, recorded_at
		FROM completion_log WHERE habit_id = ? AND day = ?`, habitID, dayKey(day))
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, err
	}
	return entry, nil
}

func (r *SQLiteRepository) DeleteEntry(ctx context.Context, habitID string, day time.Time) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM completion_log WHERE habit_id = ? AND day = ?`, habitID, dayKey(day))
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListEntries(ctx context.Context, filter EntryListFilter) ([]Entry, error) {
	query := `SELECT habit_id, day, level, recorded_at FROM completion_log`
	clauses := make([]string, 0, 3)
	args := make([]any, 0, 5)
	if filter.HabitID != "" {
		clauses = append(clauses, "habit_id = ?")
		args = append(args, filter.HabitID)
	}
	if !filter.From.IsZero() {
		clauses = append(clauses, "day >= ?")
		args = append(args, dayKey(filter.From))
	}
	if !filter.To.IsZero() {
		clauses = append(clauses, "day <= ?")
		args = append(args, dayKey(filter.To))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY day ASC, habit_id ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// dayKey formats the calendar date as seen in t's own location.
func dayKey(t time.Time) string {
	return t.Format(sqliteDayLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		if limit <= 0 {
			sql += " LIMIT -1"
		}
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var out Entry
	var day string
	var recorded string
	if err := s.Scan(&out.HabitID, &day, &out.Level, &recorded); err != nil {
		return Entry{}, err
	}
	d, err := time.ParseInLocation(sqliteDayLayout, day, time.Local)
	if err != nil {
		return Entry{}, err
	}
	recordedAt, err := time.Parse(sqliteTimeLayout, recorded)
	if err != nil {
		return Entry{}, err
	}
	out.Day = d
	out.RecordedAt = recordedAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
