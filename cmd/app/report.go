package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/deen/internal/config"
	"github.com/akyairhashvil/deen/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(opts *options) *cobra.Command {
	var out string
	var days int
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF summary of today and recent days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, opts.dataDir)
			if err != nil {
				return err
			}
			defer a.Close()

			now := time.Now()
			if err := a.catchUp(ctx, now); err != nil {
				return err
			}
			history, err := a.db.RecentDays(ctx, days)
			if err != nil {
				return err
			}
			snap := a.store.Snapshot()
			if out == "" {
				out = filepath.Join(a.settings.ReportDir, report.DefaultName(now))
			}
			in := report.Input{
				Location:    a.settings.Location,
				GeneratedAt: now,
				State:       snap.State,
				Habits:      snap.Habits,
				History:     history,
			}
			if err := report.WriteFile(out, in); err != nil {
				return err
			}
			abs, err := filepath.Abs(out)
			if err != nil {
				abs = out
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDF report generated: %s\n", abs)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <report_dir>/deen_report_<date>.pdf)")
	cmd.Flags().IntVar(&days, "days", config.ReportDays, "number of past days to include")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var out string
	var days int
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export state, habits and history as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, opts.dataDir)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := a.db.ExportJSON(ctx, config.StateKey, days)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Export saved: %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&days, "days", 30, "number of past days to include")
	return cmd
}
