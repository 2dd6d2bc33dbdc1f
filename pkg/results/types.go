// Package results loads test execution results from the runner's JSON report.
package results

// Test statuses as they appear in the report.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// DefaultCategory is assigned to records that carry no category.
const DefaultCategory = "other"

// TestRecord is one test's execution outcome as read from the report.
type TestRecord struct {
	Name            string   `json:"name"`
	Status          string   `json:"status"`
	Category        string   `json:"category"`
	FailureMessages []string `json:"failureMessages"`
}

// TestSet groups records by outcome, preserving the runner's order.
type TestSet struct {
	Passed []TestRecord `json:"passed"`
	Failed []TestRecord `json:"failed"`
}

// Document is the top-level report object. Tests is a pointer so a report
// missing the "tests" key can be told apart from one with empty arrays.
type Document struct {
	Tests *TestSet `json:"tests"`
}

// All returns every record, passed tests first, each group in report order.
func (d *Document) All() []TestRecord {
	all := make([]TestRecord, 0, len(d.Tests.Passed)+len(d.Tests.Failed))
	all = append(all, d.Tests.Passed...)
	all = append(all, d.Tests.Failed...)
	return all
}
