package root

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitflower/internal/update"
)

const Version = "0.1.0"

// NewRootCmd builds the command tree. With no subcommand it runs the TUI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "habitflower",
		Short:         "Weekly habit flowers and to-dos in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			m := update.NewModelWithOptions(update.Options{
				History: rt.History,
				Logger:  rt.Logger,
				Config:  rt.Config,
			})
			rt.Logger.Info("starting tui", "theme", rt.Config.Theme, "history_db", rt.Config.HistoryDBPath)
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.AddCommand(
		newSummaryCmd(),
		newHistoryCmd(),
	)
	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "habitflower: %v\n", err)
		os.Exit(1)
	}
}
