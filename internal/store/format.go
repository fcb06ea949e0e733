package store

import (
	"fmt"
	"strings"

	"github.com/jeanpaul/studentdb/internal/student"
)

// EmptyMessage is what List shows for a store with no records.
const EmptyMessage = "--- No records available ---"

const tableWidth = 45

// List renders the current records as a fixed-width table.
func (s *Store) List() string {
	return FormatTable(s.records)
}

// FormatTable renders records with 10/20/10 column padding.
func FormatTable(records []student.Record) string {
	if len(records) == 0 {
		return EmptyMessage
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("=", tableWidth) + "\n")
	fmt.Fprintf(&b, "%-10s | %-20s | %-10s\n", "ID", "Name", "Grade")
	b.WriteString(strings.Repeat("-", tableWidth) + "\n")
	for _, r := range records {
		fmt.Fprintf(&b, "%-10s | %-20s | %-10s\n", r.ID, r.Name, r.Grade)
	}
	b.WriteString(strings.Repeat("=", tableWidth))
	return b.String()
}
