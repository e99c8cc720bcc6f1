// Package table holds the read-only column-oriented tables the audit
// consumes. Tables are borrowed by the checkers for one run and never
// mutated.
package table

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is an ordered set of named columns with string-valued rows.
// Missing cells are empty strings.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table is absent or has no data rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Column resolves the first candidate that matches one of the table's
// column names, comparing case-insensitively after trimming. Export
// tools spell the same attribute differently (arfcnDL vs ArfcnDL), so
// every checker resolves through candidate lists.
func (t *Table) Column(candidates ...string) (string, bool) {
	if t == nil {
		return "", false
	}
	for _, cand := range candidates {
		for _, col := range t.Columns {
			if strings.EqualFold(strings.TrimSpace(col), strings.TrimSpace(cand)) {
				return col, true
			}
		}
	}
	return "", false
}

// Index returns the position of an exact column name, or -1.
func (t *Table) Index(name string) int {
	if t == nil {
		return -1
	}
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Cell returns the value of a row at a column index, tolerating ragged
// rows.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Values returns every row's value for the given column name.
func (t *Table) Values(name string) []string {
	idx := t.Index(name)
	out := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, Cell(row, idx))
	}
	return out
}

var emptyMarkers = map[string]bool{
	"nan": true, "NaN": true, "None": true, "none": true,
	"NULL": true, "null": true,
}

func normalizeCell(s string) string {
	s = strings.TrimSpace(s)
	if emptyMarkers[s] {
		return ""
	}
	return s
}

// FromRows builds a Table from raw sheet rows; the first row is the
// header. Cells are trimmed and placeholder markers (nan, NULL, ...)
// collapse to empty, matching how the export files render missing data.
func FromRows(name string, rows [][]string) *Table {
	if len(rows) == 0 {
		return &Table{Name: name}
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	data := make([][]string, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make([]string, len(raw))
		for i, c := range raw {
			row[i] = normalizeCell(c)
		}
		data = append(data, row)
	}
	return &Table{Name: name, Columns: header, Rows: data}
}

// LoadWorkbook reads every sheet of an xlsx workbook into a Table,
// keyed by sheet name.
func LoadWorkbook(path string) (map[string]*Table, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer x.Close()

	out := map[string]*Table{}
	for _, sheet := range x.GetSheetList() {
		rows, err := x.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		out[sheet] = FromRows(sheet, rows)
	}
	return out, nil
}

// Find resolves a table by name from a loaded workbook, trying the
// candidates case-insensitively the same way Column does.
func Find(tables map[string]*Table, candidates ...string) *Table {
	for _, cand := range candidates {
		for name, t := range tables {
			if strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(cand)) {
				return t
			}
		}
	}
	return nil
}
