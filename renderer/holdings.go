package renderer

import (
	"fmt"
	"strings"

	"github.com/heikofkoehler/monarch"
)

// HoldingsMarkdown renders the full holdings table, one row per record,
// with the same columns and order as the CSV export. Columns are padded
// so the raw markdown stays readable in a pager or an editor.
func HoldingsMarkdown(records []monarch.HoldingRecord) string {
	headers := monarch.Headers()

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	rows := make([][]string, len(records))
	for i, r := range records {
		row := r.Row()
		rows[i] = row
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	var b strings.Builder
	printRow := func(cells []string) {
		b.WriteString("|")
		for i, cell := range cells {
			fmt.Fprintf(&b, " %-*s |", widths[i], cell)
		}
		b.WriteString("\n")
	}

	printRow(headers)

	b.WriteString("|")
	for _, w := range widths {
		fmt.Fprintf(&b, " %s |", strings.Repeat("-", w))
	}
	b.WriteString("\n")

	for _, row := range rows {
		printRow(row)
	}
	return b.String()
}
