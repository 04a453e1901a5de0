package main

import (
	"fmt"
	"os"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	dataDir string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Daily prayers, tasbeeh, verse and habits in the terminal",
		Long:          `Track the five daily prayers, a tasbeeh counter, a verse of the day and daily habits. State is kept in a local sqlite file and resets each day.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory for the database, config and log (default $DEEN_DATA_DIR, then $XDG_DATA_HOME/deen)")
	root.AddCommand(newStatusCmd(opts), newReportCmd(opts), newExportCmd(opts))
	return root
}

func runDashboard(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, opts.dataDir)
	if err != nil {
		return err
	}
	defer a.Close()

	// Piped or redirected output gets the plain status instead of the TUI.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return a.printStatus(ctx, cmd.OutOrStdout())
	}

	model := tui.NewMainModel(ctx, a.store, a.db, a.settings.Location)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
