package update

import (
	"github.com/charmbracelet/bubbles/progress"

	"github.com/sandeepkv93/habitflower/internal/model"
	"github.com/sandeepkv93/habitflower/internal/ui"
	"github.com/sandeepkv93/habitflower/internal/views"
)

const counterBarWidth = 28

func (m Model) renderOverviewView(st ui.Styles) string {
	selected, _ := m.currentRow()
	state := m.store.State()

	cards := make([]views.HabitCardData, 0, len(m.summaries))
	for i, sum := range m.summaries {
		color := ui.HabitColor(i)
		card := views.HabitCardData{
			Title:        sum.Title,
			Color:        color,
			IsCount:      sum.Kind == model.HabitKindCount,
			Checked:      sum.Checked,
			Count:        sum.Count,
			Target:       sum.Target,
			CanIncrement: m.store.CanIncrement(sum.HabitID),
			CanDecrement: m.store.CanDecrement(sum.HabitID),
			TodayIndex:   sum.TodayIndex,
			CellOpacity:  sum.CellOpacity,
			PlantLabel:   sum.PlantLevelLabel,
			Schedule:     sum.Schedule,
			Selected:     selected.Kind == RowHabit && selected.HabitID == sum.HabitID,
		}
		if card.IsCount {
			bar := progress.New(
				progress.WithSolidFill(string(color)),
				progress.WithWidth(counterBarWidth),
				progress.WithoutPercentage(),
			)
			card.ProgressView = bar.ViewAs(sum.TodayFraction)
		}
		cards = append(cards, card)
	}

	todos := m.store.VisibleTodos()
	rows := make([]views.TodoRowData, 0, len(todos))
	for _, t := range todos {
		row := views.TodoRowData{
			Title:    t.Title,
			Done:     state.TodoChecked(t.ID),
			Selected: selected.Kind == RowTodo && selected.TodoID == t.ID,
		}
		if t.Due != nil {
			row.Due = views.DateLabel(*t.Due)
		}
		for _, item := range t.SubItems {
			row.SubItems = append(row.SubItems, views.SubItemRowData{
				Name:     item,
				Done:     state.SubItemDone(t.ID, item),
				Selected: selected.Kind == RowSubItem && selected.TodoID == t.ID && selected.Item == item,
			})
		}
		rows = append(rows, row)
	}

	return views.RenderOverview(st, views.OverviewData{
		Now:    m.clock(),
		Habits: cards,
		Todos: views.TodoPanelData{
			ShowCompleted: state.ShowCompletedTodos,
			Items:         rows,
		},
	})
}

func (m Model) renderTodoDetail(st ui.Styles) string {
	todo, ok := m.selectedTodo()
	if !ok {
		return ""
	}
	return views.RenderTodoDetail(st, todo.Title, m.detailViewport.View())
}

func (m Model) renderFriendsView(st ui.Styles) string {
	return views.RenderFriendsPanel(st, views.FriendsPanelData{
		TableView:    m.friendsTable.View(),
		ActivityView: m.activityList.View(),
	})
}

func (m Model) renderSettingsView(st ui.Styles) string {
	return views.RenderSettingsPanel(st, views.SettingsPanelData{
		Theme:         string(m.Scheme),
		HistorySource: m.Config.HistoryDBPath,
		LogFile:       m.Config.LogFile,
		LogLevel:      m.Config.LogLevel.String(),
		Density:       m.uiDensity,
		ShowCompleted: m.Config.ShowCompleted,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}
