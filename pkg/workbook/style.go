package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Fill colors, taken from the reference workbook.
const (
	headerFillColor = "DDEBF7" // light blue
	prereqFillColor = "FFE0B2" // light orange
	passFillColor   = "E2EFDA" // light green
	failFillColor   = "FFCCCC" // light red
)

// Layout constants. The prerequisite block occupies the first ten rows,
// pushing the header row to row 11.
const (
	prereqRowCount  = 10
	headerRowIndex  = prereqRowCount + 1
	columnCount     = 9
	prereqRowHeight = 20
	dataRowHeight   = 30
)

// columnWidths indexes widths by column, A through I.
var columnWidths = []float64{10, 15, 30, 40, 25, 30, 30, 20, 15}

// prereqLines holds the fixed prerequisite block texts by row. Rows 2, 6,
// and 9 stay blank as visual separators.
var prereqLines = map[int]string{
	3:  "Pre-requisites:",
	4:  "1) Login to Storefront Test: https://snowboardstore.vercel.app/",
	5:  "2) Navigate to the Store (assumes user has login credentials)",
	7:  "Positive scenarios: 1) To check node fails at 0 if Loop OK fails, 2) Loop OK fails, 3) Loop Not fails",
	8:  "Failure scenarios: 1) To check if node fails at 0 if Loop OK fails, 2) Loop OK fails, 3) Loop Not fails",
	10: "Note: Test Data which is provided is sample data for reference. Not all of the variables names will be selected from the list. Story driver will populate the values displayed on the day of UI",
}

// styleSet holds the style IDs registered on one workbook.
type styleSet struct {
	title      int
	borderOnly int
	prereqBold int
	prereq     int
	header     int
	body       int
	pass       int
	fail       int
}

// Format reopens the workbook written by Write and applies presentation:
// the title/prerequisite block above the table, header styling, per-row
// pass/fail fills, and fixed column widths. Saves in place.
func Format(path, title string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if err := f.InsertRows(SheetName, 1, prereqRowCount); err != nil {
		return fmt.Errorf("inserting prerequisite rows: %w", err)
	}

	styles, err := registerStyles(f)
	if err != nil {
		return fmt.Errorf("registering styles: %w", err)
	}

	if err := writePrereqBlock(f, styles, title); err != nil {
		return err
	}
	if err := formatTable(f, styles); err != nil {
		return err
	}
	if err := setColumnWidths(f); err != nil {
		return err
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func registerStyles(f *excelize.File) (styleSet, error) {
	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}
	bodyAlign := &excelize.Alignment{Vertical: "center", WrapText: true}

	var s styleSet
	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Fill:      fill(headerFillColor),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return s, err
	}
	s.borderOnly, err = f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return s, err
	}
	s.prereqBold, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   fill(prereqFillColor),
		Border: border,
	})
	if err != nil {
		return s, err
	}
	s.prereq, err = f.NewStyle(&excelize.Style{
		Fill:   fill(prereqFillColor),
		Border: border,
	})
	if err != nil {
		return s, err
	}
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      fill(headerFillColor),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return s, err
	}
	s.body, err = f.NewStyle(&excelize.Style{Alignment: bodyAlign, Border: border})
	if err != nil {
		return s, err
	}
	s.pass, err = f.NewStyle(&excelize.Style{
		Fill:      fill(passFillColor),
		Alignment: bodyAlign,
		Border:    border,
	})
	if err != nil {
		return s, err
	}
	s.fail, err = f.NewStyle(&excelize.Style{
		Fill:      fill(failFillColor),
		Alignment: bodyAlign,
		Border:    border,
	})
	return s, err
}

// writePrereqBlock fills rows 1-10 with the title and prerequisite texts,
// styles them, and merges each banner row across columns A-I.
func writePrereqBlock(f *excelize.File, styles styleSet, title string) error {
	if err := f.SetCellValue(SheetName, "A1", title); err != nil {
		return fmt.Errorf("writing title: %w", err)
	}
	for row, text := range prereqLines {
		if err := f.SetCellValue(SheetName, cellRef(1, row), text); err != nil {
			return fmt.Errorf("writing prerequisite row %d: %w", row, err)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(columnCount)
	ranges := []struct {
		from, to string
		style    int
	}{
		{"A1", lastCol + "1", styles.title},
		{"A2", lastCol + "2", styles.borderOnly},
		{"A3", lastCol + "3", styles.prereqBold},
		{"A4", lastCol + "10", styles.prereq},
	}
	for _, r := range ranges {
		if err := f.SetCellStyle(SheetName, r.from, r.to, r.style); err != nil {
			return fmt.Errorf("styling range %s:%s: %w", r.from, r.to, err)
		}
	}

	if err := f.MergeCell(SheetName, "A1", lastCol+"1"); err != nil {
		return fmt.Errorf("merging title row: %w", err)
	}
	for row := 3; row <= prereqRowCount; row++ {
		if err := f.MergeCell(SheetName, cellRef(1, row), cellRef(columnCount, row)); err != nil {
			return fmt.Errorf("merging prerequisite row %d: %w", row, err)
		}
		if err := f.SetRowHeight(SheetName, row, prereqRowHeight); err != nil {
			return fmt.Errorf("sizing prerequisite row %d: %w", row, err)
		}
	}
	return nil
}

// formatTable styles the header row and every data row, coloring a whole
// row by the pass/fail wording of its Actual Result cell.
func formatTable(f *excelize.File, styles styleSet) error {
	if err := f.SetCellStyle(SheetName, cellRef(1, headerRowIndex), cellRef(columnCount, headerRowIndex), styles.header); err != nil {
		return fmt.Errorf("styling header row: %w", err)
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return fmt.Errorf("reading rows: %w", err)
	}
	for row := headerRowIndex + 1; row <= len(rows); row++ {
		if err := f.SetRowHeight(SheetName, row, dataRowHeight); err != nil {
			return fmt.Errorf("sizing row %d: %w", row, err)
		}
		actual, err := f.GetCellValue(SheetName, cellRef(7, row))
		if err != nil {
			return fmt.Errorf("reading actual result in row %d: %w", row, err)
		}
		style := styles.body
		switch lower := strings.ToLower(actual); {
		case strings.Contains(lower, "passed"):
			style = styles.pass
		case strings.Contains(lower, "failed"):
			style = styles.fail
		}
		if err := f.SetCellStyle(SheetName, cellRef(1, row), cellRef(columnCount, row), style); err != nil {
			return fmt.Errorf("styling row %d: %w", row, err)
		}
	}
	return nil
}

func setColumnWidths(f *excelize.File) error {
	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("resolving column %d: %w", i+1, err)
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}
	return nil
}

func cellRef(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}
