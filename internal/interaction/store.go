package interaction

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/habitflower/internal/model"
)

var (
	ErrKindMismatch   = errors.New("interaction: habit kind does not support this event")
	ErrUnknownSubItem = errors.New("interaction: unknown sub-item")
	ErrUnknownEvent   = errors.New("interaction: unknown event")
)

// Event is a user intent applied to the store.
type Event interface {
	Name() string
}

type ToggleHabit struct{ HabitID string }
type IncrementHabit struct{ HabitID string }
type DecrementHabit struct{ HabitID string }
type ToggleTodo struct{ TodoID string }
type ToggleShowCompleted struct{}

type ToggleSubItemEvent struct {
	TodoID string
	Item   string
}

func (ToggleHabit) Name() string         { return "toggle_habit" }
func (IncrementHabit) Name() string      { return "increment_habit" }
func (DecrementHabit) Name() string      { return "decrement_habit" }
func (ToggleTodo) Name() string          { return "toggle_todo" }
func (ToggleSubItemEvent) Name() string  { return "toggle_sub_item" }
func (ToggleShowCompleted) Name() string { return "toggle_show_completed" }

// Store is the single owner of the session's InteractionState. Every accepted
// event swaps whole maps, so each update is observable in one step.
type Store struct {
	catalog model.Catalog
	state   model.InteractionState
}

func NewStore(catalog model.Catalog) *Store {
	return &Store{catalog: catalog, state: model.NewInteractionState()}
}

func (s *Store) Catalog() model.Catalog {
	return s.catalog
}

// State returns a deep copy; mutating it never affects the store.
func (s *Store) State() model.InteractionState {
	return s.state.Clone()
}

func (s *Store) SetShowCompleted(show bool) {
	s.state.ShowCompletedTodos = show
}

// VisibleTodos applies the current completed/pending filter to the catalog.
func (s *Store) VisibleTodos() []model.Todo {
	return FilterTodos(s.catalog.Todos(), s.state.CheckedTodos, s.state.ShowCompletedTodos)
}

// CanIncrement reports whether the plus control should be enabled.
func (s *Store) CanIncrement(habitID string) bool {
	h, ok := s.catalog.Habit(habitID)
	if !ok || !h.IsCount() {
		return false
	}
	return s.state.HabitCount(habitID) < h.EffectiveTarget()
}

func (s *Store) CanDecrement(habitID string) bool {
	h, ok := s.catalog.Habit(habitID)
	if !ok || !h.IsCount() {
		return false
	}
	return s.state.HabitCount(habitID) > 0
}

// Dispatch applies ev. Unknown ids or mismatched kinds are reported and leave
// the state untouched; none of them are fatal.
func (s *Store) Dispatch(ev Event) error {
	switch e := ev.(type) {
	case ToggleHabit:
		h, err := s.habit(e.HabitID)
		if err != nil {
			return err
		}
		if h.IsCount() {
			return fmt.Errorf("%w: %s on %q", ErrKindMismatch, ev.Name(), h.Title)
		}
		s.state.CheckedHabits = ToggleBoolean(s.state.CheckedHabits, h.ID)
	case IncrementHabit:
		h, err := s.countHabit(e.HabitID, ev)
		if err != nil {
			return err
		}
		s.state.HabitCounts = IncrementCount(s.state.HabitCounts, h.ID, h.EffectiveTarget())
	case DecrementHabit:
		h, err := s.countHabit(e.HabitID, ev)
		if err != nil {
			return err
		}
		s.state.HabitCounts = DecrementCount(s.state.HabitCounts, h.ID)
	case ToggleTodo:
		if _, ok := s.catalog.Todo(e.TodoID); !ok {
			return fmt.Errorf("%w: %s", model.ErrUnknownTodo, e.TodoID)
		}
		s.state.CheckedTodos = ToggleBoolean(s.state.CheckedTodos, e.TodoID)
	case ToggleSubItemEvent:
		t, ok := s.catalog.Todo(e.TodoID)
		if !ok {
			return fmt.Errorf("%w: %s", model.ErrUnknownTodo, e.TodoID)
		}
		if !t.HasSubItem(e.Item) {
			return fmt.Errorf("%w: %q in %q", ErrUnknownSubItem, e.Item, t.Title)
		}
		s.state.SubItemChecked = ToggleSubItem(s.state.SubItemChecked, t.ID, e.Item)
	case ToggleShowCompleted:
		s.state.ShowCompletedTodos = !s.state.ShowCompletedTodos
	default:
		return fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
	return nil
}

func (s *Store) habit(id string) (model.Habit, error) {
	h, ok := s.catalog.Habit(id)
	if !ok {
		return model.Habit{}, fmt.Errorf("%w: %s", model.ErrUnknownHabit, id)
	}
	return h, nil
}

func (s *Store) countHabit(id string, ev Event) (model.Habit, error) {
	h, err := s.habit(id)
	if err != nil {
		return model.Habit{}, err
	}
	if !h.IsCount() {
		return model.Habit{}, fmt.Errorf("%w: %s on %q", ErrKindMismatch, ev.Name(), h.Title)
	}
	return h, nil
}
