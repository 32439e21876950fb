package root

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitflower/internal/interaction"
	"github.com/sandeepkv93/habitflower/internal/model"
	"github.com/sandeepkv93/habitflower/internal/progress"
	"github.com/sandeepkv93/habitflower/internal/ui"
	"github.com/sandeepkv93/habitflower/internal/views"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print this week's habit flowers and the pending to-dos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			now := time.Now()
			store := interaction.NewStore(model.Seed(now))
			store.SetShowCompleted(rt.Config.ShowCompleted)
			return writeSummary(cmd, cmd.OutOrStdout(), rt, store, now)
		},
	}
}

func writeSummary(cmd *cobra.Command, out io.Writer, rt *runtimeEnv, store *interaction.Store, now time.Time) error {
	state := store.State()
	fmt.Fprintf(out, "%s  My HabitFlowers\n\n", views.DateLabel(now))
	for _, h := range store.Catalog().Habits() {
		sum, err := progress.Summarize(cmd.Context(), rt.History, h, state, now, rt.Config.Theme.IsLight())
		if err != nil {
			rt.Logger.Warn("history lookup failed", "habit", h.Title, "error", err)
		}
		fmt.Fprintf(out, "%s\n", sum.Title)
		fmt.Fprintf(out, "  %s\n", weekStrip(sum))
		fmt.Fprintf(out, "  %s %s days completed\n", ui.IconSeedling, sum.PlantLevelLabel)
		for _, line := range sum.Schedule {
			fmt.Fprintf(out, "  %s\n", line)
		}
		if sum.Kind == model.HabitKindCount {
			fmt.Fprintf(out, "  today %d/%d\n", sum.Count, sum.Target)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "To-dos")
	visible := store.VisibleTodos()
	if len(visible) == 0 {
		fmt.Fprintf(out, "  %s\n", views.EmptyTodoLabel(state.ShowCompletedTodos))
		return nil
	}
	for _, t := range visible {
		ts := progress.SummarizeTodo(t, state)
		line := fmt.Sprintf("  %s %s", box(ts.IsDone), ts.Title)
		if t.Due != nil {
			line += "  due " + views.DateLabel(*t.Due)
		}
		fmt.Fprintln(out, line)
		for _, item := range t.SubItems {
			fmt.Fprintf(out, "      %s %s\n", box(ts.SubItemStates[item]), item)
		}
	}
	return nil
}

// weekStrip prints "Sun:0 Mon:2 ..." with today marked.
func weekStrip(sum progress.HabitSummary) string {
	parts := make([]string, 0, len(sum.WeeklyLevels))
	for i, lvl := range sum.WeeklyLevels {
		label := views.DayLabels[i]
		if i == sum.TodayIndex {
			label += ui.IconToday
		}
		parts = append(parts, fmt.Sprintf("%s:%d", label, lvl))
	}
	return strings.Join(parts, " ")
}

func box(done bool) string {
	if done {
		return "[" + ui.IconCheck + "]"
	}
	return "[ ]"
}
