package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ListWriter builds a column-aligned tabular list view.
//
// Usage:
//
//	lw := output.NewListWriter(w, "FROM", "TO", "SHAPE", "TEXT")
//	lw.Row("2023-01-01 00:00 UTC", "2023-01-12 23:59:59 UTC", "ACROSS_DAYS", "Jan 1 - 12")
//	lw.FlushWithFooter("Total: 1 range")
type ListWriter struct {
	w       io.Writer
	headers []string
	rows    [][]string
}

// NewListWriter creates a ListWriter with the given column headers.
// Headers should be in ALL CAPS.
func NewListWriter(w io.Writer, headers ...string) *ListWriter {
	return &ListWriter{
		w:       w,
		headers: headers,
	}
}

// Row adds a row of values. The number of values should match the number of headers.
func (lw *ListWriter) Row(values ...string) {
	lw.rows = append(lw.rows, values)
}

// Flush renders the table to the writer: headers, separator, rows, and optional footer.
func (lw *ListWriter) Flush() {
	lw.FlushWithFooter("")
}

// FlushWithFooter renders the table and appends a footer line (e.g. "Total: 5 ranges").
// Pass an empty string to omit the footer.
func (lw *ListWriter) FlushWithFooter(footer string) {
	colCount := len(lw.headers)
	if colCount == 0 {
		return
	}

	// Column widths are display widths, so month names such as "févr." and
	// colored cells line up.
	widths := make([]int, colCount)
	for i, h := range lw.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range lw.rows {
		for i := 0; i < colCount && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lw.printRow(lw.headers, widths, true)

	totalWidth := 0
	for i, w := range widths {
		totalWidth += w
		if i < colCount-1 {
			totalWidth += 4 // column gap
		}
	}
	if totalWidth < separatorWidth {
		totalWidth = separatorWidth
	}
	fmt.Fprintln(lw.w, strings.Repeat("─", totalWidth))

	for _, row := range lw.rows {
		lw.printRow(row, widths, false)
	}

	if footer != "" {
		fmt.Fprintln(lw.w)
		fmt.Fprintln(lw.w, footer)
	}
}

func (lw *ListWriter) printRow(values []string, widths []int, isHeader bool) {
	colCount := len(widths)
	var b strings.Builder
	for i := 0; i < colCount; i++ {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		raw := lipgloss.Width(val)
		if isHeader {
			val = Bold(val)
		}

		b.WriteString(val)
		if i < colCount-1 {
			if padding := widths[i] - raw + 4; padding > 0 {
				b.WriteString(strings.Repeat(" ", padding))
			}
		}
	}
	fmt.Fprintln(lw.w, b.String())
}
