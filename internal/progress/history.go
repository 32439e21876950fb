package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/sandeepkv93/habitflower/internal/model"
)

const (
	// DaysPerWeek is the number of cells in a contribution strip.
	DaysPerWeek = 7
	MinLevel    = 0
	MaxLevel    = 4
)

// HistorySource supplies raw per-weekday levels for the week containing weekOf,
// indexed Sunday first.
type HistorySource interface {
	Levels(ctx context.Context, habit model.Habit, weekOf time.Time) ([]int, error)
}

// PatternSource is the placeholder history used when no log is configured.
type PatternSource struct{}

func (PatternSource) Levels(context.Context, model.Habit, time.Time) ([]int, error) {
	return DefaultPattern(DaysPerWeek), nil
}

// DefaultPattern produces the deterministic filler history: every fifth day is
// empty and the rest cycle through levels 1..4.
func DefaultPattern(days int) []int {
	if days < 0 {
		days = 0
	}
	out := make([]int, days)
	for i := range out {
		if i%5 == 0 {
			out[i] = 0
			continue
		}
		out[i] = i%4 + 1
	}
	return out
}

// NormalizeLevels turns arbitrary source output into exactly seven levels.
// Short input is replaced by the default pattern; out-of-range values clamp.
func NormalizeLevels(raw []int) [DaysPerWeek]int {
	if len(raw) < DaysPerWeek {
		raw = DefaultPattern(DaysPerWeek)
	}
	var out [DaysPerWeek]int
	for i := 0; i < DaysPerWeek; i++ {
		out[i] = clampLevel(raw[i])
	}
	return out
}

// WeeklyLevels reads one habit's week from src. On a source failure it still
// returns the default pattern, alongside the wrapped error for logging.
func WeeklyLevels(ctx context.Context, src HistorySource, habit model.Habit, weekOf time.Time) ([DaysPerWeek]int, error) {
	if src == nil {
		src = PatternSource{}
	}
	raw, err := src.Levels(ctx, habit, weekOf)
	if err != nil {
		return NormalizeLevels(nil), fmt.Errorf("history for %s: %w", habit.ID, err)
	}
	return NormalizeLevels(raw), nil
}

func clampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
