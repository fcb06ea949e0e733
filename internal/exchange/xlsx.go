package exchange

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/studentdb/internal/student"
)

// SheetName is the worksheet written by exports and preferred by imports.
const SheetName = "Students"

var header = []string{"ID", "Name", "Grade"}

func writeXLSX(w io.Writer, records []student.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	rows := [][]string{header}
	for _, r := range records {
		rows = append(rows, []string{r.ID, r.Name, r.Grade})
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("xlsx: row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	return nil
}

// readXLSX reads the Students sheet, or the first sheet when there is
// none. A leading ID/Name/Grade header row is skipped, and rows with a
// blank id get a generated one.
func readXLSX(path string) ([]student.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := SheetName
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheet, err)
	}
	return rowsToRecords(rows), nil
}

func rowsToRecords(rows [][]string) []student.Record {
	if len(rows) > 0 && len(rows[0]) > 0 && strings.EqualFold(strings.TrimSpace(rows[0][0]), "id") {
		rows = rows[1:]
	}

	var records []student.Record
	for _, row := range rows {
		cells := make([]string, 3)
		copy(cells, row)
		if cells[0] == "" && cells[1] == "" && cells[2] == "" {
			continue
		}
		records = append(records, student.Record{ID: cells[0], Name: cells[1], Grade: cells[2]})
	}
	return records
}
