// Package plan synthesizes test plan rows from raw test results.
//
// Every text field is derived from the test's name, category, and failure
// messages by ordered keyword rules, then sanitized for spreadsheet cells.
package plan

import "github.com/storefront-qa/plangen/pkg/results"

// DefaultDurationHours is the planning estimate assigned to every test.
const DefaultDurationHours = 2

// Row is one synthesized row of the test plan table. Rows are created
// once per test record and never mutated.
type Row struct {
	Serial        int
	Type          string
	Title         string
	Steps         string
	Data          string
	Expected      string
	Actual        string
	Comments      string
	DurationHours int
}

// BuildRows converts the document's records into plan rows: passed tests
// first, then failed, each group in report order, with dense 1-based
// serials matching the final table position.
func BuildRows(doc *results.Document) []Row {
	records := doc.All()
	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		rows = append(rows, buildRow(i+1, rec))
	}
	return rows
}

func buildRow(serial int, rec results.TestRecord) Row {
	return Row{
		Serial:        serial,
		Type:          CleanCellText(classify(rec.Name)),
		Title:         CleanCellText(StripPriority(rec.Name)),
		Steps:         CleanCellText(steps(rec.Name)),
		Data:          CleanCellText(testData(rec.Category)),
		Expected:      CleanCellText(expected(rec.Name)),
		Actual:        CleanCellText(actualResult(rec)),
		Comments:      "",
		DurationHours: DefaultDurationHours,
	}
}
