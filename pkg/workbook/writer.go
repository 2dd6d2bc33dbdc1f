// Package workbook writes the test plan table as an xlsx file and applies
// the presentation styling of the reference workbook.
package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/storefront-qa/plangen/pkg/plan"
)

// SheetName is the single sheet the table is written to.
const SheetName = "Test Plan"

// Headers are the table columns in output order.
var Headers = []string{
	"SL No",
	"Type",
	"Test Case Title",
	"Test Steps",
	"Test Data",
	"Expected Result",
	"Actual Result",
	"Comments",
	"Test Duration (Hours)",
}

// Write creates a workbook at path holding the header row and one row per
// plan row. Styling is a separate pass; see Format.
func Write(path string, rows []plan.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("locating row %d: %w", i+2, err)
		}
		values := []interface{}{
			row.Serial,
			row.Type,
			row.Title,
			row.Steps,
			row.Data,
			row.Expected,
			row.Actual,
			row.Comments,
			row.DurationHours,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
