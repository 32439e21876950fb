package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitflower/internal/interaction"
	"github.com/sandeepkv93/habitflower/internal/model"
)

type RowKind string

const (
	RowHabit   RowKind = "habit"
	RowTodo    RowKind = "todo"
	RowSubItem RowKind = "sub_item"
)

// Row is one focusable line on the Overview tab.
type Row struct {
	Kind    RowKind
	HabitID string
	TodoID  string
	Item    string
}

// Rows lists habits in catalog order, then each visible to-do followed by its
// sub-items.
func (m Model) Rows() []Row {
	cat := m.store.Catalog()
	todos := m.store.VisibleTodos()
	out := make([]Row, 0, len(cat.Habits())+len(todos))
	for _, h := range cat.Habits() {
		out = append(out, Row{Kind: RowHabit, HabitID: h.ID})
	}
	for _, t := range todos {
		out = append(out, Row{Kind: RowTodo, TodoID: t.ID})
		for _, item := range t.SubItems {
			out = append(out, Row{Kind: RowSubItem, TodoID: t.ID, Item: item})
		}
	}
	return out
}

func (m Model) currentRow() (Row, bool) {
	rows := m.Rows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return Row{}, false
	}
	return rows[m.Cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.Rows())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// selectedTodo is the to-do under the cursor, or the parent of a selected
// sub-item.
func (m Model) selectedTodo() (model.Todo, bool) {
	row, ok := m.currentRow()
	if !ok || row.Kind == RowHabit {
		return model.Todo{}, false
	}
	return m.store.Catalog().Todo(row.TodoID)
}

func (m Model) handleOverviewKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Rows())-1 {
			m.Cursor++
		}
	case " ", "space", "enter":
		if ev, ok := m.activateEvent(); ok {
			m.dispatch(ev)
		}
	case "+", "=":
		if row, ok := m.currentRow(); ok && row.Kind == RowHabit {
			m.dispatch(interaction.IncrementHabit{HabitID: row.HabitID})
		}
	case "-", "_":
		if row, ok := m.currentRow(); ok && row.Kind == RowHabit {
			m.dispatch(interaction.DecrementHabit{HabitID: row.HabitID})
		}
	case "c":
		m.dispatch(interaction.ToggleShowCompleted{})
	}
	return m
}

// activateEvent maps space/enter on the current row to an event. On a count
// habit it increments.
func (m Model) activateEvent() (interaction.Event, bool) {
	row, ok := m.currentRow()
	if !ok {
		return nil, false
	}
	switch row.Kind {
	case RowHabit:
		h, ok := m.store.Catalog().Habit(row.HabitID)
		if ok && h.IsCount() {
			return interaction.IncrementHabit{HabitID: row.HabitID}, true
		}
		return interaction.ToggleHabit{HabitID: row.HabitID}, true
	case RowTodo:
		return interaction.ToggleTodo{TodoID: row.TodoID}, true
	case RowSubItem:
		return interaction.ToggleSubItemEvent{TodoID: row.TodoID, Item: row.Item}, true
	default:
		return nil, false
	}
}

// dispatch runs ev through the store and reports the outcome on the status bar.
// Failures are never fatal.
func (m *Model) dispatch(ev interaction.Event) {
	if err := m.store.Dispatch(ev); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Warn("dispatch rejected", "event", ev.Name(), "error", err)
		return
	}
	m.logger.Debug("dispatched", "event", ev.Name())
	m.Status = StatusBar{Text: m.describe(ev)}
	m.clampCursor()
}

func (m Model) describe(ev interaction.Event) string {
	st := m.store.State()
	cat := m.store.Catalog()
	switch e := ev.(type) {
	case interaction.ToggleHabit:
		h, _ := cat.Habit(e.HabitID)
		return fmt.Sprintf("%s: %s", h.Title, doneWord(st.HabitChecked(h.ID)))
	case interaction.IncrementHabit:
		h, _ := cat.Habit(e.HabitID)
		return fmt.Sprintf("%s: %d/%d", h.Title, st.HabitCount(h.ID), h.EffectiveTarget())
	case interaction.DecrementHabit:
		h, _ := cat.Habit(e.HabitID)
		return fmt.Sprintf("%s: %d/%d", h.Title, st.HabitCount(h.ID), h.EffectiveTarget())
	case interaction.ToggleTodo:
		t, _ := cat.Todo(e.TodoID)
		return fmt.Sprintf("%s: %s", t.Title, doneWord(st.TodoChecked(t.ID)))
	case interaction.ToggleSubItemEvent:
		return fmt.Sprintf("%s: %s", e.Item, doneWord(st.SubItemDone(e.TodoID, e.Item)))
	case interaction.ToggleShowCompleted:
		if st.ShowCompletedTodos {
			return "showing completed to-dos"
		}
		return "showing pending to-dos"
	default:
		return ev.Name()
	}
}

func doneWord(done bool) string {
	if done {
		return "done"
	}
	return "not done"
}
