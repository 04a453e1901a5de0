package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/deen/internal/prayer"
	"github.com/akyairhashvil/deen/internal/store"
	"github.com/akyairhashvil/deen/internal/util"
	"github.com/akyairhashvil/deen/internal/verses"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print today's prayers, tasbeeh, verse and habits",
		Long:  `Print a plain-text summary of today's state. Useful in scripts and status bars.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, opts.dataDir)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.printStatus(ctx, cmd.OutOrStdout())
		},
	}
}

func (a *app) printStatus(ctx context.Context, w io.Writer) error {
	if err := a.catchUp(ctx, time.Now()); err != nil {
		return err
	}
	writeStatus(w, a.store.Snapshot(), a.settings.Location)
	return nil
}

func writeStatus(w io.Writer, snap store.Snapshot, location string) {
	st := snap.State
	fmt.Fprintf(w, "%s  |  %s\n\n", snap.Now.Format("Monday, 2 January 2006 15:04"), location)

	fmt.Fprintln(w, "Prayers:")
	for _, p := range st.Prayers {
		mark := " "
		if p.Completed {
			mark = "x"
		}
		line := fmt.Sprintf("  [%s] %-8s %8s", mark, p.Name, prayer.Clock12(p.Time))
		if p.IsNext {
			line += "  <- next in " + prayer.TimeUntil(p, snap.Now)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "  %d/%d completed\n\n", st.CompletedPrayers(), len(st.Prayers))

	fmt.Fprintf(w, "Tasbeeh: %d/%d (%d%%)\n\n", st.TasbeehCount, st.TasbeehGoal, util.Percent(st.TasbeehCount, st.TasbeehGoal))

	v := verses.At(st.DailyVerseIndex)
	fmt.Fprintf(w, "Verse: %q\n       %s\n\n", v.Translation, v.Reference)

	done := 0
	for _, h := range snap.Habits {
		if h.Completed {
			done++
		}
	}
	fmt.Fprintf(w, "Habits: %d/%d completed\n", done, len(snap.Habits))
	for _, h := range snap.Habits {
		mark := " "
		if h.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %s (streak %d)\n", mark, h.Name, h.Streak)
	}
}
