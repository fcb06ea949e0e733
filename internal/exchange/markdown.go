package exchange

import (
	"strings"

	"github.com/jeanpaul/studentdb/internal/student"
)

// MarkdownTable renders records as a pipe table with an ID/Name/Grade header.
func MarkdownTable(records []student.Record) string {
	rows := [][]string{header}
	for _, r := range records {
		rows = append(rows, []string{r.ID, r.Name, r.Grade})
	}
	return rowsToMarkdown(rows)
}

// rowsToMarkdown converts a slice of string slices into a Markdown table.
// The first row is the header.
func rowsToMarkdown(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		cells := make([]string, maxCols)
		for j := range cells {
			if j < len(row) {
				// Pipes and newlines would break the table.
				cells[j] = strings.ReplaceAll(row[j], "|", "\\|")
				cells[j] = strings.ReplaceAll(cells[j], "\n", " ")
			}
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	writeRow(rows[0])
	sb.WriteString("|")
	for i := 0; i < maxCols; i++ {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}
	return sb.String()
}
