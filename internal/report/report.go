// Package report renders the daily routine summary as a PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/deen/internal/models"
	"github.com/akyairhashvil/deen/internal/prayer"
	"github.com/akyairhashvil/deen/internal/util"
	"github.com/akyairhashvil/deen/internal/verses"
	"github.com/go-pdf/fpdf"
)

// Input is everything a report prints.
type Input struct {
	Location    string
	GeneratedAt time.Time
	State       models.AppState
	Habits      []models.Habit
	History     []models.DayLog
}

// Write renders the report to w.
func Write(w io.Writer, in Input) error {
	pdf := build(in)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// WriteFile renders the report to path, creating parent directories.
func WriteFile(path string, in Input) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	pdf := build(in)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// DefaultName is the file name used when no output path is given.
func DefaultName(at time.Time) string {
	return fmt.Sprintf("deen_report_%s.pdf", at.Format("2006-01-02"))
}

// Core PDF fonts are cp1252 only, so Arabic text and emoji icons are left out.
func build(in Input) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Deen Routine Report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Deen Routine: %s", in.State.LastUpdated.Format("Monday, 2 January 2006")))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("%s  |  generated %s", in.Location, in.GeneratedAt.Format("2006-01-02 15:04"))))
	pdf.Ln(10)

	section(pdf, "Prayers")
	for _, p := range in.State.Prayers {
		mark := "[ ]"
		if p.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s  %-8s  %s", mark, p.Name, prayer.Clock12(p.Time))
		if p.IsNext {
			line += "  (next)"
		}
		pdf.Cell(0, 7, line)
		pdf.Ln(6)
	}
	done := in.State.CompletedPrayers()
	pdf.Cell(0, 7, fmt.Sprintf("Completed: %d/%d", done, len(in.State.Prayers)))
	pdf.Ln(10)

	section(pdf, "Tasbeeh")
	pct := util.Percent(in.State.TasbeehCount, in.State.TasbeehGoal)
	pdf.Cell(0, 7, fmt.Sprintf("%d of %d (%d%%)", in.State.TasbeehCount, in.State.TasbeehGoal, pct))
	pdf.Ln(10)

	section(pdf, "Verse of the day")
	v := verses.At(in.State.DailyVerseIndex)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("%q", v.Translation)), "", "", false)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 6, tr(v.Reference))
	pdf.Ln(10)

	section(pdf, "Habits")
	if len(in.Habits) == 0 {
		pdf.Cell(0, 7, "  - No habits tracked.")
		pdf.Ln(6)
	}
	for _, h := range in.Habits {
		mark := "[ ]"
		if h.Completed {
			mark = "[x]"
		}
		pdf.Cell(0, 7, tr(fmt.Sprintf("%s  %s  (%s, streak %d)", mark, h.Name, h.Category, h.Streak)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if len(in.History) > 0 {
		section(pdf, "Recent days")
		pdf.SetFont("Arial", "B", 10)
		for _, col := range []struct {
			w float64
			s string
		}{{30, "Date"}, {30, "Prayers"}, {40, "Tasbeeh"}, {30, "Habits"}} {
			pdf.CellFormat(col.w, 7, col.s, "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
		for _, d := range in.History {
			pdf.CellFormat(30, 6, d.Date, "", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%d/5", d.PrayersCompleted), "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, fmt.Sprintf("%d/%d", d.TasbeehCount, d.TasbeehGoal), "", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%d/%d", d.HabitsCompleted, d.HabitsTotal), "", 0, "L", false, 0, "")
			pdf.Ln(-1)
		}
	}
	return pdf
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 9, title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
}
