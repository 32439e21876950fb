package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

var (
	ErrUnknownHabit   = errors.New("model: unknown habit")
	ErrUnknownTodo    = errors.New("model: unknown todo")
	ErrAmbiguousTitle = errors.New("model: ambiguous title")
	ErrDuplicateID    = errors.New("model: duplicate id")
)

// seedNamespace scopes the name-based ids of the built-in catalog so they
// stay identical between runs.
var seedNamespace = uuid.MustParse("5f0d6a52-3c1e-4f7b-9a55-8e2f0c6b71d4")

// SeedID derives the stable identifier for a built-in entity.
func SeedID(name string) string {
	return uuid.NewSHA1(seedNamespace, []byte(name)).String()
}

// Catalog is the immutable set of habit and to-do definitions shown on screen.
type Catalog struct {
	habits    []Habit
	todos     []Todo
	habitByID map[string]int
	todoByID  map[string]int
}

func NewCatalog(habits []Habit, todos []Todo) (Catalog, error) {
	c := Catalog{
		habits:    append([]Habit(nil), habits...),
		todos:     append([]Todo(nil), todos...),
		habitByID: make(map[string]int, len(habits)),
		todoByID:  make(map[string]int, len(todos)),
	}
	for i, h := range c.habits {
		if err := h.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, dup := c.habitByID[h.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: %s", ErrDuplicateID, h.ID)
		}
		c.habitByID[h.ID] = i
	}
	for i, t := range c.todos {
		if err := t.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, dup := c.todoByID[t.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
		}
		c.todoByID[t.ID] = i
	}
	return c, nil
}

func (c Catalog) Habits() []Habit {
	return append([]Habit(nil), c.habits...)
}

func (c Catalog) Todos() []Todo {
	return append([]Todo(nil), c.todos...)
}

func (c Catalog) Habit(id string) (Habit, bool) {
	i, ok := c.habitByID[id]
	if !ok {
		return Habit{}, false
	}
	return c.habits[i], true
}

func (c Catalog) Todo(id string) (Todo, bool) {
	i, ok := c.todoByID[id]
	if !ok {
		return Todo{}, false
	}
	return c.todos[i], true
}

// HabitIndex reports the display position of a habit, used for colour cycling.
func (c Catalog) HabitIndex(id string) int {
	i, ok := c.habitByID[id]
	if !ok {
		return -1
	}
	return i
}

// FindHabitByTitle resolves a typed title. Matching is case-folded and only
// meant for text input; state is always keyed by id.
func (c Catalog) FindHabitByTitle(title string) (Habit, error) {
	var match []Habit
	for _, h := range c.habits {
		if sameTitle(h.Title, title) {
			match = append(match, h)
		}
	}
	switch len(match) {
	case 0:
		return Habit{}, fmt.Errorf("%w: %q", ErrUnknownHabit, title)
	case 1:
		return match[0], nil
	default:
		return Habit{}, fmt.Errorf("%w: %q matches %d habits", ErrAmbiguousTitle, title, len(match))
	}
}

func (c Catalog) FindTodoByTitle(title string) (Todo, error) {
	var match []Todo
	for _, t := range c.todos {
		if sameTitle(t.Title, title) {
			match = append(match, t)
		}
	}
	switch len(match) {
	case 0:
		return Todo{}, fmt.Errorf("%w: %q", ErrUnknownTodo, title)
	case 1:
		return match[0], nil
	default:
		return Todo{}, fmt.Errorf("%w: %q matches %d todos", ErrAmbiguousTitle, title, len(match))
	}
}

func sameTitle(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}

// Seed builds the built-in demo catalog. Due dates are relative to now.
func Seed(now time.Time) Catalog {
	tomorrow := now.Add(24 * time.Hour)
	today := now
	habits := []Habit{
		{
			ID:          SeedID("habit/hit-the-gym"),
			Title:       "Hit the gym",
			Kind:        HabitKindBoolean,
			DaysPerWeek: 3,
		},
		{
			ID:          SeedID("habit/push-ups"),
			Title:       "Push-ups",
			Kind:        HabitKindCount,
			Target:      3,
			DaysPerWeek: 7,
			TimesPerDay: 3,
		},
		{
			ID:          SeedID("habit/practice-scales"),
			Title:       "Practice scales",
			Kind:        HabitKindCount,
			Target:      3,
			DaysPerWeek: 5,
			TimesByDay:  map[string]int{"Mon": 2, "Wed": 3, "Fri": 1},
		},
	}
	todos := []Todo{
		{
			ID:          SeedID("todo/finish-assignment"),
			Title:       "Finish assignment",
			Due:         &tomorrow,
			Description: "Finish the **math** assignment before class",
		},
		{
			ID:          SeedID("todo/grocery-run"),
			Title:       "Grocery run",
			Due:         &today,
			SubItems:    []string{"Milk", "Eggs", "Bread"},
			Description: "Quick trip to pick up essentials for the week",
		},
	}
	c, err := NewCatalog(habits, todos)
	if err != nil {
		panic(fmt.Sprintf("model: invalid seed catalog: %v", err))
	}
	return c
}
