// Package export writes an audit report to an xlsx workbook for the
// engineers running the migration.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"n77audit/audit"
)

var reportHeader = []string{"Category", "SubCategory", "Metric", "Value", "ExtraInfo"}

// Write saves the report as a SummaryAudit sheet. details, when
// non-empty, becomes an extra Nodes sheet (first row is its header).
func Write(path string, rep audit.Report, details [][]string) error {
	rows := [][]string{reportHeader}
	for _, r := range rep {
		rows = append(rows, []string{r.Category, r.SubCategory, r.Metric, fmt.Sprint(r.Value), r.ExtraInfo})
	}

	x := excelize.NewFile()
	defer x.Close()

	add := func(name string, rows [][]string) error {
		idx, err := x.NewSheet(name)
		if err != nil {
			return err
		}
		for r, row := range rows {
			for c, v := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return err
				}
				if err := x.SetCellStr(name, cell, v); err != nil {
					return err
				}
			}
		}
		if name == "SummaryAudit" {
			x.SetActiveSheet(idx)
		}
		return nil
	}

	if err := add("SummaryAudit", rows); err != nil {
		return fmt.Errorf("write SummaryAudit sheet: %w", err)
	}
	if len(details) > 0 {
		if err := add("Nodes", details); err != nil {
			return fmt.Errorf("write Nodes sheet: %w", err)
		}
	}
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	if err := x.SaveAs(path); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}
	return nil
}
