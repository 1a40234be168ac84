package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/xuri/excelize/v2"

	"github.com/kubev2v/dequeue/internal/models"
)

const sheetName = "Results"

var header = []any{"ID", "Name", "Kind", "Status", "Exit Code", "Started At", "Duration", "Error", "Output"}

var (
	okColor     = color.New(color.FgGreen, color.Bold)
	failedColor = color.New(color.FgRed, color.Bold)
	nameColor   = color.New(color.FgHiWhite)
)

// WriteXLSX writes one row per result to a workbook saved at path.
func WriteXLSX(path string, results []models.JobResult) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.JobID,
			r.Name,
			string(r.Kind),
			status(r),
			r.ExitCode,
			r.StartedAt.UTC().Format(time.RFC3339),
			r.Duration.String(),
			r.Error,
			r.Output,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write result %s: %w", r.JobID, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}
	return nil
}

// Print renders a single result line:
//
//	[ OK ] build (exec) 1.2s
//	[FAIL] fetch (http) 30ms: unexpected status 503
func Print(w io.Writer, r models.JobResult) {
	label := okColor.Sprint("[ OK ]")
	if r.Failed() {
		label = failedColor.Sprint("[FAIL]")
	}

	line := fmt.Sprintf("%s %s (%s) %s", label, nameColor.Sprint(r.Name), r.Kind, r.Duration.Round(time.Millisecond))
	if r.Failed() {
		line += ": " + r.Error
	}
	fmt.Fprintln(w, line)
}

func status(r models.JobResult) string {
	if r.Failed() {
		return "failed"
	}
	return "succeeded"
}
