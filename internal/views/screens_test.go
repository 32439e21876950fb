package views

import (
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/habitflower/internal/ui"
)

func testStyles() ui.Styles {
	return ui.NewStyles(ui.DefaultPalette, ui.SchemeLight)
}

func TestDateLabel(t *testing.T) {
	got := DateLabel(time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC))
	if got != "Sat 17 Oct" {
		t.Fatalf("unexpected date label: %q", got)
	}
}

func TestRenderOverviewHeaderAndPlaceholder(t *testing.T) {
	out := RenderOverview(testStyles(), OverviewData{
		Now:   time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
		Todos: TodoPanelData{},
	})
	for _, want := range []string{"Sat 17 Oct", "My HabitFlowers", "No pending to-dos", "Show completed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in overview:\n%s", want, out)
		}
	}

	out = RenderTodoPanel(testStyles(), TodoPanelData{ShowCompleted: true})
	if !strings.Contains(out, "No completed to-dos") || !strings.Contains(out, "Show pending") {
		t.Fatalf("unexpected completed placeholder:\n%s", out)
	}
}

func TestRenderHabitCardBoolean(t *testing.T) {
	out := RenderHabitCard(testStyles(), HabitCardData{
		Title:      "Hit the gym",
		Color:      ui.HabitColor(0),
		Checked:    true,
		TodayIndex: 3,
		PlantLabel: "5",
		Schedule:   []string{"3 days / week"},
		Selected:   true,
	})
	if !strings.HasPrefix(out, ">") {
		t.Fatalf("expected cursor on selected card:\n%s", out)
	}
	for _, want := range []string{"Hit the gym", "[" + ui.IconCheck + "]", "Wed" + ui.IconToday, "5 days completed", "3 days / week"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in card:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Mon"+ui.IconToday) {
		t.Fatalf("only today should carry the marker:\n%s", out)
	}
}

func TestRenderHabitCardCounterGuards(t *testing.T) {
	base := HabitCardData{
		Title:   "Push-ups",
		Color:   ui.HabitColor(1),
		IsCount: true,
		Target:  3,
	}

	atZero := base
	atZero.CanIncrement = true
	out := RenderHabitCard(testStyles(), atZero)
	if !strings.Contains(out, " -  0/3 [+]") {
		t.Fatalf("expected disabled decrement at zero:\n%s", out)
	}

	atTarget := base
	atTarget.Count = 3
	atTarget.CanDecrement = true
	out = RenderHabitCard(testStyles(), atTarget)
	if !strings.Contains(out, "[-] 3/3  + ") {
		t.Fatalf("expected disabled increment at target:\n%s", out)
	}
}

func TestRenderTodoPanelSubItems(t *testing.T) {
	out := RenderTodoPanel(testStyles(), TodoPanelData{
		Items: []TodoRowData{{
			Title: "Grocery run",
			Due:   "Sat 17 Oct",
			SubItems: []SubItemRowData{
				{Name: "Milk", Done: true},
				{Name: "Eggs", Selected: true},
			},
		}},
	})
	for _, want := range []string{"[ ] Grocery run", "due Sat 17 Oct", "[" + ui.IconCheck + "] Milk", "[ ] Eggs"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in to-dos:\n%s", want, out)
		}
	}
	if strings.Contains(out, "No pending to-dos") {
		t.Fatalf("placeholder should be hidden when items exist:\n%s", out)
	}
}

func TestRenderTabsAndSettings(t *testing.T) {
	tabs := RenderTabs(testStyles(), []string{"Overview", "Friends", "Settings"}, 1)
	if !strings.Contains(tabs, "2 Friends") || !strings.Contains(tabs, "3 Settings") {
		t.Fatalf("unexpected tabs: %q", tabs)
	}

	out := RenderSettingsPanel(testStyles(), SettingsPanelData{Theme: "dark", LogLevel: "info", Density: 2})
	for _, want := range []string{"theme: dark", "built-in pattern", "(discarded)", "density: 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in settings:\n%s", want, out)
		}
	}
}

func TestRenderAppIncludesStatusAndPalette(t *testing.T) {
	out := RenderApp(AppData{
		Styles:      testStyles(),
		Tabs:        "1 Overview",
		MainPane:    "main",
		DetailPane:  "detail",
		StatusLine:  "unknown habit",
		StatusError: true,
		Palette:     RenderCommandPalette(true, "/check"),
		Footer:      "keys",
	})
	for _, want := range []string{"main", "detail", "unknown habit", "command: /check", "keys"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in app view:\n%s", want, out)
		}
	}
	if RenderCommandPalette(false, "x") != "" {
		t.Fatal("inactive palette should render empty")
	}
}

func TestRenderMarkdownFallsBackOnEmpty(t *testing.T) {
	if RenderMarkdown("   ", ui.SchemeDark, 40) != "" {
		t.Fatal("expected empty render for blank markdown")
	}
	out := RenderMarkdown("# Outline\n\n- intro", ui.SchemeLight, 40)
	if !strings.Contains(out, "Outline") || !strings.Contains(out, "intro") {
		t.Fatalf("unexpected markdown render: %q", out)
	}
}
