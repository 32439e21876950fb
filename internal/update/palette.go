package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/cases"

	"github.com/sandeepkv93/habitflower/internal/commands"
	"github.com/sandeepkv93/habitflower/internal/interaction"
	"github.com/sandeepkv93/habitflower/internal/ui"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m *Model) openPalette() {
	m.Palette = CommandPaletteState{Active: true}
	m.commandInput.SetValue("")
	m.commandInput.Focus()
	m.Status = StatusBar{Text: "command palette active"}
}

func (m *Model) closePalette() {
	m.Palette = CommandPaletteState{}
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Warn("palette parse failed", "input", raw, "error", err)
		m.closePalette()
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Check: func(a commands.HabitArgs) (commands.Result, error) {
			h, err := m.store.Catalog().FindHabitByTitle(a.Title)
			if err != nil {
				return commands.Result{}, err
			}
			return m.apply(interaction.ToggleHabit{HabitID: h.ID})
		},
		Inc: func(a commands.HabitArgs) (commands.Result, error) {
			h, err := m.store.Catalog().FindHabitByTitle(a.Title)
			if err != nil {
				return commands.Result{}, err
			}
			return m.apply(interaction.IncrementHabit{HabitID: h.ID})
		},
		Dec: func(a commands.HabitArgs) (commands.Result, error) {
			h, err := m.store.Catalog().FindHabitByTitle(a.Title)
			if err != nil {
				return commands.Result{}, err
			}
			return m.apply(interaction.DecrementHabit{HabitID: h.ID})
		},
		Done: func(a commands.TodoArgs) (commands.Result, error) {
			t, err := m.store.Catalog().FindTodoByTitle(a.Title)
			if err != nil {
				return commands.Result{}, err
			}
			return m.apply(interaction.ToggleTodo{TodoID: t.ID})
		},
		Sub: func(a commands.SubItemArgs) (commands.Result, error) {
			t, err := m.store.Catalog().FindTodoByTitle(a.Todo)
			if err != nil {
				return commands.Result{}, err
			}
			item := a.Item
			fold := cases.Fold()
			for _, name := range t.SubItems {
				if fold.String(name) == fold.String(a.Item) {
					item = name
					break
				}
			}
			return m.apply(interaction.ToggleSubItemEvent{TodoID: t.ID, Item: item})
		},
		Completed: func() (commands.Result, error) {
			return m.apply(interaction.ToggleShowCompleted{})
		},
		Theme: func(a commands.ThemeArgs) (commands.Result, error) {
			if a.Scheme == "" {
				m.Scheme = m.Scheme.Toggle()
			} else {
				scheme, _ := ui.ParseScheme(a.Scheme)
				m.Scheme = scheme
			}
			return commands.Result{Message: fmt.Sprintf("theme: %s", m.Scheme)}, nil
		},
		Tab: func(a commands.TabArgs) (commands.Result, error) {
			for _, tab := range tabOrder {
				if strings.EqualFold(string(tab), a.Name) {
					m.CurrentTab = tab
					return commands.Result{Message: fmt.Sprintf("tab: %s", tab)}, nil
				}
			}
			return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown tab: %s", a.Name)}
		},
	})
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Warn("palette command failed", "input", raw, "error", err)
	} else {
		m.Status = StatusBar{Text: res.Message}
		m.logger.Debug("palette command", "input", raw)
	}

	m.closePalette()
	return m
}

// apply dispatches through the store and turns the outcome into a result.
func (m *Model) apply(ev interaction.Event) (commands.Result, error) {
	if err := m.store.Dispatch(ev); err != nil {
		return commands.Result{}, err
	}
	m.clampCursor()
	return commands.Result{Message: m.describe(ev)}, nil
}
