package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/habitflower/internal/ui"
)

// DayLabels are the weekday column headers, Sunday first.
var DayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const cellWidth = 4

type HabitCardData struct {
	Title        string
	Color        lipgloss.Color
	IsCount      bool
	Checked      bool
	Count        int
	Target       int
	CanIncrement bool
	CanDecrement bool
	TodayIndex   int
	CellOpacity  [7]float64
	PlantLabel   string
	Schedule     []string
	ProgressView string
	Selected     bool
}

type SubItemRowData struct {
	Name     string
	Done     bool
	Selected bool
}

type TodoRowData struct {
	Title    string
	Due      string
	Done     bool
	Selected bool
	SubItems []SubItemRowData
}

type TodoPanelData struct {
	ShowCompleted bool
	Items         []TodoRowData
}

type OverviewData struct {
	Now    time.Time
	Habits []HabitCardData
	Todos  TodoPanelData
}

type FriendsPanelData struct {
	TableView    string
	ActivityView string
}

type SettingsPanelData struct {
	Theme         string
	HistorySource string
	LogFile       string
	LogLevel      string
	Density       int
	ShowCompleted bool
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

// DateLabel formats the header date as "Sat 17 Oct".
func DateLabel(t time.Time) string {
	return t.Format("Mon 2 Jan")
}

func EmptyTodoLabel(showCompleted bool) string {
	if showCompleted {
		return "No completed to-dos"
	}
	return "No pending to-dos"
}

// FilterToggleLabel names the view the toggle switches to.
func FilterToggleLabel(showCompleted bool) string {
	if showCompleted {
		return "Show pending"
	}
	return "Show completed"
}

func RenderTabs(st ui.Styles, names []string, active int) string {
	parts := make([]string, 0, len(names))
	for i, name := range names {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == active {
			parts = append(parts, st.TabOn.Render(label))
		} else {
			parts = append(parts, st.TabOff.Render(label))
		}
	}
	return strings.Join(parts, "   ")
}

func RenderOverview(st ui.Styles, data OverviewData) string {
	var b strings.Builder
	b.WriteString(st.Date.Render(DateLabel(data.Now)) + "\n")
	b.WriteString(st.Title.Render("My HabitFlowers") + "\n")
	for _, card := range data.Habits {
		b.WriteString("\n" + RenderHabitCard(st, card) + "\n")
	}
	b.WriteString("\n" + RenderTodoPanel(st, data.Todos))
	return strings.TrimSpace(b.String())
}

func RenderHabitCard(st ui.Styles, data HabitCardData) string {
	var b strings.Builder
	cursor := " "
	if data.Selected {
		cursor = ">"
	}
	control := checkbox(data.Checked)
	if data.IsCount {
		control = counter(data)
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(data.Color).Render(data.Title)
	b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, title, control))

	b.WriteString("  " + weekdayRow(st, data.TodayIndex) + "\n")
	b.WriteString("  " + cellRow(st, data) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s days completed\n", ui.IconSeedling, data.PlantLabel))
	for _, line := range data.Schedule {
		b.WriteString("  " + st.Muted.Render(line) + "\n")
	}
	if data.IsCount && data.ProgressView != "" {
		b.WriteString("  " + data.ProgressView + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func weekdayRow(st ui.Styles, today int) string {
	cols := make([]string, 0, len(DayLabels))
	for i, label := range DayLabels {
		if i == today {
			cols = append(cols, st.Accent.Width(cellWidth).Render(label+ui.IconToday))
			continue
		}
		cols = append(cols, st.Muted.Width(cellWidth).Render(label))
	}
	return strings.Join(cols, " ")
}

func cellRow(st ui.Styles, data HabitCardData) string {
	cols := make([]string, 0, len(data.CellOpacity))
	for _, opacity := range data.CellOpacity {
		fill := ui.Blend(st.Background, data.Color, opacity)
		cols = append(cols, lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", cellWidth)))
	}
	return strings.Join(cols, " ")
}

func checkbox(done bool) string {
	if done {
		return "[" + ui.IconCheck + "]"
	}
	return "[ ]"
}

// counter renders "[-] cur/target [+]"; a disabled button drops its brackets.
func counter(data HabitCardData) string {
	dec := " - "
	if data.CanDecrement {
		dec = "[-]"
	}
	inc := " + "
	if data.CanIncrement {
		inc = "[+]"
	}
	return fmt.Sprintf("%s %d/%d %s", dec, data.Count, data.Target, inc)
}

func RenderTodoPanel(st ui.Styles, data TodoPanelData) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("To-dos"))
	b.WriteString("  " + st.Muted.Render("[c] "+FilterToggleLabel(data.ShowCompleted)) + "\n")
	if len(data.Items) == 0 {
		b.WriteString("  " + st.Muted.Render(EmptyTodoLabel(data.ShowCompleted)))
		return b.String()
	}
	for _, item := range data.Items {
		cursor := " "
		if item.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s", cursor, checkbox(item.Done), item.Title))
		if item.Due != "" {
			b.WriteString(" " + st.Date.Render("due "+item.Due))
		}
		b.WriteString("\n")
		for _, sub := range item.SubItems {
			subCursor := " "
			if sub.Selected {
				subCursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s     %s %s\n", subCursor, checkbox(sub.Done), sub.Name))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderFriendsPanel(st ui.Styles, data FriendsPanelData) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Friends") + "\n")
	b.WriteString(data.TableView + "\n\n")
	b.WriteString(st.Title.Render("Activity") + "\n")
	b.WriteString(data.ActivityView)
	return strings.TrimSpace(b.String())
}

func RenderSettingsPanel(st ui.Styles, data SettingsPanelData) string {
	history := data.HistorySource
	if history == "" {
		history = "built-in pattern"
	}
	logFile := data.LogFile
	if logFile == "" {
		logFile = "(discarded)"
	}
	var b strings.Builder
	b.WriteString(st.Title.Render("Settings") + "\n")
	b.WriteString(fmt.Sprintf("theme: %s  [t] toggle\n", data.Theme))
	b.WriteString(fmt.Sprintf("history: %s\n", history))
	b.WriteString(fmt.Sprintf("log: %s (%s)\n", logFile, data.LogLevel))
	b.WriteString(fmt.Sprintf("density: %d\n", data.Density))
	b.WriteString(fmt.Sprintf("show completed on start: %t", data.ShowCompleted))
	return b.String()
}

func RenderTodoDetail(st ui.Styles, title string, body string) string {
	if strings.TrimSpace(title) == "" {
		return ""
	}
	return st.Title.Render(ui.IconClipbd+" "+title) + "\n" + body
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", inputView)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
