// Package stats formats session results.
package stats

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/retype/internal/session"
)

// NotAvailable is printed in place of a metric that cannot be computed.
const NotAvailable = "n/a"

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// ReportOptions selects which lines the final report contains.
type ReportOptions struct {
	// Scored adds words, time, and WPM lines.
	Scored bool
	// Color styles the title and labels.
	Color bool
}

// ReportRows returns the label/value pairs for an outcome.
func ReportRows(out session.Outcome, opts ReportOptions) [][]string {
	rows := [][]string{
		{"Correct", fmt.Sprintf("%d/%d", out.CharsCorrect, out.CharsTotal), FormatPercent(out)},
	}
	if !opts.Scored {
		return rows
	}
	rows = append(rows,
		[]string{"Words", fmt.Sprintf("%d", out.WordsTyped)},
		[]string{"Time", fmt.Sprintf("%.2fs", out.ElapsedSeconds())},
		[]string{"WPM", FormatWPM(out)},
	)
	return rows
}

// WriteReport prints the final report for an outcome.
func WriteReport(w io.Writer, out session.Outcome, opts ReportOptions) error {
	title := "Session complete"
	if opts.Color {
		title = titleStyle.Render(title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	rows := ReportRows(out, opts)
	if opts.Color {
		// Pad labels before styling so escape codes do not skew alignment.
		rows = styleLabels(rows)
	}
	for _, line := range alignRows(rows, map[int]bool{2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatWPM renders words per minute with two decimals, or NotAvailable.
func FormatWPM(out session.Outcome) string {
	if !out.WPMAvailable {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f", out.WordsPerMinute)
}

// FormatPercent renders accuracy as a percentage with two decimals.
func FormatPercent(out session.Outcome) string {
	if out.CharsTotal == 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", out.Accuracy()*100)
}

func styleLabels(rows [][]string) [][]string {
	labelWidth := 0
	for _, row := range rows {
		if len(row) > 0 && len(row[0]) > labelWidth {
			labelWidth = len(row[0])
		}
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		styled := append([]string(nil), row...)
		if len(styled) > 0 {
			styled[0] = labelStyle.Render(padCell(styled[0], labelWidth, false))
		}
		out[i] = styled
	}
	return out
}
