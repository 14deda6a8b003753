package cli

import (
	"fmt"
	"io"
	"strings"
)

// renderTable writes a width-aligned table with " | " column separators:
// an optional underlined title, the header row, a dash rule, then the rows.
// Callers handle the empty case with a context-specific notice.
func renderTable(w io.Writer, title string, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, value := range row {
			if len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
	}

	formatRow := func(values []string) string {
		cells := make([]string, len(values))
		for i, value := range values {
			cells[i] = value + strings.Repeat(" ", widths[i]-len(value))
		}
		return strings.Join(cells, " | ")
	}

	if title != "" {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, strings.Repeat("-", len(title)))
	}

	fmt.Fprintln(w, formatRow(headers))
	ruleWidth := 3 * (len(headers) - 1)
	for _, width := range widths {
		ruleWidth += width
	}
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	for _, row := range rows {
		fmt.Fprintln(w, formatRow(row))
	}
}

// orDash substitutes a dash for empty optional values in listings
func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
