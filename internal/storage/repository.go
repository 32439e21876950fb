package storage

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("storage: not found")
	ErrInvalidLevel = errors.New("storage: level out of range")
)

// Repository is the completion log. The TUI only reads from it.
type Repository interface {
	PutEntry(ctx context.Context, in Entry) error
	GetEntry(ctx context.Context, habitID string, day time.Time) (Entry, error)
	DeleteEntry(ctx context.Context, habitID string, day time.Time) error
	ListEntries(ctx context.Context, filter EntryListFilter) ([]Entry, error)
}
