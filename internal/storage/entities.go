package storage

import "time"

// Entry is one day of recorded completion intensity for a habit.
type Entry struct {
	HabitID    string
	Day        time.Time
	Level      int
	RecordedAt time.Time
}

type EntryListFilter struct {
	HabitID string
	From    time.Time
	To      time.Time
	Limit   int
	Offset  int
}
