package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/habitflower/internal/model"
	"github.com/sandeepkv93/habitflower/internal/progress"
	"github.com/sandeepkv93/habitflower/internal/views"
)

const (
	maxDensity     = 3
	historyTimeout = 250 * time.Millisecond
)

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "Name", Width: 14},
		{Title: "Username", Width: 14},
		{Title: "Habits", Width: 10},
	}
	m.friendsTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(6))

	m.activityList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.activityList.Title = "Activity"
	m.activityList.SetShowHelp(false)
	m.activityList.SetShowTitle(false)
	m.activityList.SetFilteringEnabled(false)

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.detailViewport = viewport.New(54, 12)
}

// syncBubbleData pushes store and catalog state into the widgets and
// re-derives the habit summaries.
func (m *Model) syncBubbleData() {
	width, listHeight, tableHeight, viewportHeight := densityDimensions(m.uiDensity)
	m.activityList.SetSize(width, listHeight)
	m.friendsTable.SetHeight(tableHeight)
	m.detailViewport.Width = width - 4
	m.detailViewport.Height = viewportHeight

	friends := model.SeedFriends()
	rows := make([]table.Row, 0, len(friends))
	for _, f := range friends {
		rows = append(rows, table.Row{f.Name, f.Username(), fmt.Sprintf("%d habits", f.HabitCount)})
	}
	m.friendsTable.SetRows(rows)

	activity := model.SeedActivity()
	items := make([]list.Item, 0, len(activity))
	for _, line := range activity {
		name, rest, _ := strings.Cut(line, " ")
		items = append(items, listItem{title: line, description: "@" + model.Friend{Name: name}.Username() + " " + rest})
	}
	m.activityList.SetItems(items)

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}

	m.clampCursor()
	if todo, ok := m.selectedTodo(); ok {
		md := todo.Description
		if strings.TrimSpace(md) == "" {
			md = "_No description_"
		}
		m.detailViewport.SetContent(views.RenderMarkdown(md, m.Scheme, m.detailViewport.Width))
	} else {
		m.detailViewport.SetContent("")
	}

	m.refreshSummaries()
}

// refreshSummaries derives every habit card. A failing history source falls
// back to the default pattern and is logged.
func (m *Model) refreshSummaries() {
	now := m.clock()
	st := m.store.State()
	habits := m.store.Catalog().Habits()
	out := make([]progress.HabitSummary, 0, len(habits))
	for _, h := range habits {
		ctx, cancel := context.WithTimeout(context.Background(), historyTimeout)
		sum, err := progress.Summarize(ctx, m.history, h, st, now, m.Scheme.IsLight())
		cancel()
		if err != nil {
			m.logger.Warn("history lookup failed", "habit", h.Title, "error", err)
		}
		out = append(out, sum)
	}
	m.summaries = out
}

func densityDimensions(level int) (width int, listHeight int, tableHeight int, viewportHeight int) {
	switch level {
	case 2:
		return 62, 14, 8, 14
	case 3:
		return 70, 16, 10, 18
	default:
		return 58, 12, 6, 12
	}
}

func (m *Model) cycleDensity() {
	m.uiDensity++
	if m.uiDensity > maxDensity {
		m.uiDensity = 1
	}
	m.Status = StatusBar{Text: fmt.Sprintf("density level: %d", m.uiDensity)}
}
