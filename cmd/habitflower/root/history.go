package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitflower/internal/model"
	"github.com/sandeepkv93/habitflower/internal/progress"
	"github.com/sandeepkv93/habitflower/internal/storage"
	"github.com/sandeepkv93/habitflower/internal/ui"
	"github.com/sandeepkv93/habitflower/internal/update"
	"github.com/sandeepkv93/habitflower/internal/views"
)

const dayLayout = "2006-01-02"

var errNoHistoryDB = errors.New("no history log configured: set HABITFLOWER_HISTORY_DB or pass --db")

func newHistoryCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Record or inspect the completion-history log",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "history log path (overrides HABITFLOWER_HISTORY_DB)")
	cmd.AddCommand(
		newHistorySetCmd(&dbPath),
		newHistoryUnsetCmd(&dbPath),
		newHistoryShowCmd(&dbPath),
	)
	return cmd
}

func newHistorySetCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <habit> <YYYY-MM-DD> <level>",
		Short: "Record a completion level (0..4) for one day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openHistoryRuntime(*dbPath)
			if err != nil {
				return err
			}
			defer rt.Close()

			habit, err := resolveHabit(args[0])
			if err != nil {
				return err
			}
			day, err := parseDay(args[1])
			if err != nil {
				return err
			}
			level, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("level must be a number: %q", args[2])
			}
			if err := rt.Repo.PutEntry(cmd.Context(), storage.Entry{HabitID: habit.ID, Day: day, Level: level}); err != nil {
				return err
			}
			rt.Logger.Info("history entry recorded", "habit", habit.Title, "day", args[1], "level", level)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: level %d\n", habit.Title, args[1], level)
			return nil
		},
	}
}

func newHistoryUnsetCmd(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <habit> <YYYY-MM-DD>",
		Short: "Remove the recorded level for one day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openHistoryRuntime(*dbPath)
			if err != nil {
				return err
			}
			defer rt.Close()

			habit, err := resolveHabit(args[0])
			if err != nil {
				return err
			}
			day, err := parseDay(args[1])
			if err != nil {
				return err
			}
			if err := rt.Repo.DeleteEntry(cmd.Context(), habit.ID, day); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("no entry for %s on %s", habit.Title, args[1])
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: cleared\n", habit.Title, args[1])
			return nil
		},
	}
}

func newHistoryShowCmd(dbPath *string) *cobra.Command {
	var week string
	cmd := &cobra.Command{
		Use:   "show <habit>",
		Short: "Print the Sunday..Saturday levels for a week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openHistoryRuntime(*dbPath)
			if err != nil {
				return err
			}
			defer rt.Close()

			habit, err := resolveHabit(args[0])
			if err != nil {
				return err
			}
			weekOf := time.Now()
			if week != "" {
				if weekOf, err = parseDay(week); err != nil {
					return err
				}
			}
			levels, err := progress.WeeklyLevels(cmd.Context(), rt.History, habit, weekOf)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s, week of %s\n", habit.Title, storage.WeekStart(weekOf).Format(dayLayout))
			for i, lvl := range levels {
				fmt.Fprintf(out, "  %s %d\n", views.DayLabels[i], lvl)
			}
			fmt.Fprintf(out, "%s %s days completed\n", ui.IconSeedling, progress.PlantLevelLabel(progress.PlantLevel(levels, habit)))
			return nil
		},
	}
	cmd.Flags().StringVar(&week, "week", "", "any day in the week to show (YYYY-MM-DD, default today)")
	return cmd
}

func openHistoryRuntime(dbPath string) (*runtimeEnv, error) {
	rt, err := loadRuntimeWith(func(cfg *update.RuntimeConfig) {
		if dbPath != "" {
			cfg.HistoryDBPath = dbPath
		}
	})
	if err != nil {
		return nil, err
	}
	if rt.Repo == nil {
		rt.Close()
		return nil, errNoHistoryDB
	}
	return rt, nil
}

// resolveHabit accepts either a catalog id or a case-insensitive title.
func resolveHabit(ref string) (model.Habit, error) {
	catalog := model.Seed(time.Now())
	if h, ok := catalog.Habit(strings.TrimSpace(ref)); ok {
		return h, nil
	}
	return catalog.FindHabitByTitle(ref)
}

func parseDay(raw string) (time.Time, error) {
	day, err := time.ParseInLocation(dayLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("day must be YYYY-MM-DD: %q", raw)
	}
	return day, nil
}
