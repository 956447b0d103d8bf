// SPDX-License-Identifier: MIT
// Package: densegraph/harness
//
// writer.go: Report renderers.
//
// CSV: header + one row per (category, n) point. Skipped-only points keep
// empty time/bytes cells so spreadsheets plot them as gaps.
// Text: a styled title, then one bordered table per category.

package harness

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

var csvHeader = []string{"run_id", "algorithm", "category", "n", "succeeded", "skipped", "mean_ns", "mean_bytes", "excluded"}

// WriteCSV writes rep as CSV to w.
func WriteCSV(w io.Writer, rep *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("harness: csv header: %w", err)
	}
	for _, s := range rep.Series {
		for _, p := range s.Points {
			meanNs, meanBytes := "", ""
			if p.OK() {
				meanNs = strconv.FormatInt(p.MeanTime.Nanoseconds(), 10)
				meanBytes = strconv.FormatUint(p.MeanBytes, 10)
			}
			row := []string{
				rep.ID,
				rep.Algorithm,
				s.Category,
				strconv.Itoa(p.N),
				strconv.Itoa(p.Succeeded),
				strconv.Itoa(p.Skipped),
				meanNs,
				meanBytes,
				strconv.FormatBool(s.Excluded),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("harness: csv row: %w", err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleCategory = lipgloss.NewStyle().Bold(true)
	styleExcluded = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleHeader   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true).Padding(0, 1)
	styleBorder   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleCell     = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	styleSkipped  = styleCell.Foreground(lipgloss.Color("240"))
)

var textHeaders = []string{"n", "mean time", "allocated", "ok", "skipped"}

// WriteText writes rep as a human-readable table per category to w.
func WriteText(w io.Writer, rep *Report) error {
	var sb strings.Builder
	sb.WriteString(styleTitle.Render(fmt.Sprintf("%s: %d categories, n=%d..%d step %d, %d trials",
		rep.Algorithm, len(rep.Series), rep.Config.MinNodes, rep.Config.MaxNodes, rep.Config.Step, rep.Config.Trials)))
	sb.WriteString("\n")

	for _, s := range rep.Series {
		sb.WriteString("\n")
		sb.WriteString(styleCategory.Render(s.Category))
		if s.Excluded {
			sb.WriteString(" ")
			sb.WriteString(styleExcluded.Render("(excluded: not applicable)"))
			sb.WriteString("\n")
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(seriesTable(s).String())
		sb.WriteString("\n")
	}
	if ex := rep.Excluded(); len(ex) > 0 {
		sb.WriteString("\nexcluded: ")
		sb.WriteString(strings.Join(ex, ", "))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// seriesTable lays out one category's points; points with no successful
// trial are dimmed and show "-" for time and bytes.
func seriesTable(s Series) *table.Table {
	rows := make([][]string, 0, len(s.Points))
	for _, p := range s.Points {
		meanTime, allocated := "-", "-"
		if p.OK() {
			meanTime, allocated = p.MeanTime.String(), humanize.Bytes(p.MeanBytes)
		}
		rows = append(rows, []string{
			strconv.Itoa(p.N), meanTime, allocated,
			strconv.Itoa(p.Succeeded), strconv.Itoa(p.Skipped),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(textHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case row >= 0 && row < len(s.Points) && !s.Points[row].OK():
				return styleSkipped
			default:
				return styleCell
			}
		})
}
