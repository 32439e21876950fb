package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitflower/internal/ui"
	"github.com/sandeepkv93/habitflower/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == "ctrl+c" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m.handlePaletteKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.openPalette()
			return m, nil
		case m.Keys.Overview:
			m.CurrentTab = TabOverview
			return m, nil
		case m.Keys.Friends:
			m.CurrentTab = TabFriends
			return m, nil
		case m.Keys.Settings:
			m.CurrentTab = TabSettings
			return m, nil
		case m.Keys.NextTab:
			m.CurrentTab = nextTab(m.CurrentTab)
			return m, nil
		case m.Keys.Theme:
			m.Scheme = m.Scheme.Toggle()
			m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", m.Scheme)}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case "D":
			m.cycleDensity()
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentTab {
		case TabOverview:
			return m.handleOverviewKey(typed), nil
		case TabFriends:
			var cmd tea.Cmd
			m.friendsTable, cmd = m.friendsTable.Update(typed)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.helpModel.Width = typed.Width
		return m, nil
	case SwitchTabMsg:
		if isKnownTab(typed.Tab) {
			m.CurrentTab = typed.Tab
		}
		return m, nil
	case DispatchMsg:
		if typed.Event != nil {
			m.dispatch(typed.Event)
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Error("app error", "error", typed.Err)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	st := ui.NewStyles(m.colors, m.Scheme)
	width, _, _, _ := densityDimensions(m.uiDensity)

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	main := ""
	detail := ""
	switch m.CurrentTab {
	case TabOverview:
		main = m.renderOverviewView(st)
		detail = m.renderTodoDetail(st)
	case TabFriends:
		main = m.renderFriendsView(st)
	case TabSettings:
		main = m.renderSettingsView(st)
	}
	detail = strings.TrimSpace(strings.Join([]string{detail, m.renderHelpIfVisible()}, "\n\n"))

	names := make([]string, 0, len(tabOrder))
	active := 0
	for i, tab := range tabOrder {
		names = append(names, string(tab))
		if tab == m.CurrentTab {
			active = i
		}
	}

	return views.RenderApp(views.AppData{
		Styles:      st,
		Tabs:        views.RenderTabs(st, names, active),
		MainPane:    main,
		DetailPane:  detail,
		StatusLine:  status,
		StatusError: m.Status.IsError,
		Palette:     m.renderCommandPalette(),
		Footer:      fmt.Sprintf("keys: %s/%s/%s tabs | / cmd | %s theme | %s help | %s quit", m.Keys.Overview, m.Keys.Friends, m.Keys.Settings, m.Keys.Theme, m.Keys.Help, m.Keys.Quit),
		PaneWidth:   width,
	})
}

func isKnownTab(t Tab) bool {
	for _, known := range tabOrder {
		if t == known {
			return true
		}
	}
	return false
}

func nextTab(t Tab) Tab {
	for i, known := range tabOrder {
		if known == t {
			return tabOrder[(i+1)%len(tabOrder)]
		}
	}
	return TabOverview
}
