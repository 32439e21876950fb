package storage

import (
	"context"
	"time"

	"github.com/sandeepkv93/habitflower/internal/model"
	"github.com/sandeepkv93/habitflower/internal/progress"
)

// HistoryLog serves weekly levels from the completion log.
type HistoryLog struct {
	repo Repository
}

var _ progress.HistorySource = HistoryLog{}

func NewHistoryLog(repo Repository) HistoryLog {
	return HistoryLog{repo: repo}
}

// Levels returns the Sunday..Saturday week containing weekOf. Days with no
// entry read as level 0.
func (h HistoryLog) Levels(ctx context.Context, habit model.Habit, weekOf time.Time) ([]int, error) {
	start := WeekStart(weekOf)
	end := start.AddDate(0, 0, progress.DaysPerWeek-1)
	entries, err := h.repo.ListEntries(ctx, EntryListFilter{HabitID: habit.ID, From: start, To: end})
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]int, len(entries))
	for _, e := range entries {
		byDay[dayKey(e.Day)] = e.Level
	}
	out := make([]int, progress.DaysPerWeek)
	for i := range out {
		out[i] = byDay[dayKey(start.AddDate(0, 0, i))]
	}
	return out, nil
}

// WeekStart truncates t to midnight of the preceding (or same) Sunday.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(t.Weekday()))
}
