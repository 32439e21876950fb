package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind    = errors.New("model: invalid habit kind")
	ErrInvalidWeekday = errors.New("model: invalid weekday key")
	ErrInvalidCadence = errors.New("model: invalid habit cadence")
)

type HabitKind string

const (
	HabitKindBoolean HabitKind = "Boolean"
	HabitKindCount   HabitKind = "Count"
)

func (k HabitKind) IsValid() bool {
	switch k {
	case HabitKindBoolean, HabitKindCount:
		return true
	default:
		return false
	}
}

// WeekdayKeys lists the accepted TimesByDay keys in calendar order.
var WeekdayKeys = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var weekdayByKey = map[string]time.Weekday{
	"Sun": time.Sunday,
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
}

// WeekdayForKey maps a TimesByDay key such as "Wed" to its weekday.
func WeekdayForKey(key string) (time.Weekday, bool) {
	d, ok := weekdayByKey[key]
	return d, ok
}

type Habit struct {
	ID          string
	Title       string
	Kind        HabitKind
	Target      int
	DaysPerWeek int
	TimesPerDay int
	TimesByDay  map[string]int
}

// NewHabit returns a boolean habit with a fresh random identifier.
func NewHabit(title string) Habit {
	return Habit{
		ID:    uuid.NewString(),
		Title: strings.TrimSpace(title),
		Kind:  HabitKindBoolean,
	}
}

// NewCountHabit returns a count habit with a fresh random identifier.
func NewCountHabit(title string, target int) Habit {
	h := NewHabit(title)
	h.Kind = HabitKindCount
	h.Target = target
	return h
}

// EffectiveTarget resolves the daily goal as Target, then TimesPerDay, then 1.
// Non-positive values fall through so fraction maths never divides by zero.
func (h Habit) EffectiveTarget() int {
	if h.Target > 0 {
		return h.Target
	}
	if h.TimesPerDay > 0 {
		return h.TimesPerDay
	}
	return 1
}

func (h Habit) IsCount() bool {
	return h.Kind == HabitKindCount
}

// TimesOn returns the goal for a specific weekday, honouring TimesByDay overrides.
func (h Habit) TimesOn(day time.Weekday) int {
	for key, n := range h.TimesByDay {
		if d, ok := WeekdayForKey(key); ok && d == day {
			return n
		}
	}
	if h.TimesPerDay > 0 {
		return h.TimesPerDay
	}
	return h.EffectiveTarget()
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return errors.New("model: habit id is required")
	}
	if strings.TrimSpace(h.Title) == "" {
		return errors.New("model: habit title is required")
	}
	if !h.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, h.Kind)
	}
	if h.DaysPerWeek < 0 || h.DaysPerWeek > 7 {
		return fmt.Errorf("%w: days per week %d", ErrInvalidCadence, h.DaysPerWeek)
	}
	if h.TimesPerDay < 0 {
		return fmt.Errorf("%w: times per day %d", ErrInvalidCadence, h.TimesPerDay)
	}
	for key, n := range h.TimesByDay {
		if _, ok := WeekdayForKey(key); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidWeekday, key)
		}
		if n < 0 {
			return fmt.Errorf("%w: %s override %d", ErrInvalidCadence, key, n)
		}
	}
	return nil
}
