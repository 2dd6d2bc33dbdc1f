package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// rawDocument mirrors Document with pointer fields so absent keys can be
// told apart from empty arrays.
type rawDocument struct {
	Tests *struct {
		Passed *[]TestRecord `json:"passed"`
		Failed *[]TestRecord `json:"failed"`
	} `json:"tests"`
}

// Load reads and parses a test results report from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses a test results report from raw JSON. The "tests"
// object and both its "passed" and "failed" arrays must be present.
// Records without a category get DefaultCategory.
func ParseBytes(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing results: %w", err)
	}
	if raw.Tests == nil {
		return nil, errors.New(`parsing results: missing "tests" object`)
	}
	if raw.Tests.Passed == nil {
		return nil, errors.New(`parsing results: missing "tests.passed" array`)
	}
	if raw.Tests.Failed == nil {
		return nil, errors.New(`parsing results: missing "tests.failed" array`)
	}

	doc := &Document{Tests: &TestSet{
		Passed: *raw.Tests.Passed,
		Failed: *raw.Tests.Failed,
	}}
	normalize(doc.Tests.Passed)
	normalize(doc.Tests.Failed)
	return doc, nil
}

func normalize(records []TestRecord) {
	for i := range records {
		if records[i].Category == "" {
			records[i].Category = DefaultCategory
		}
	}
}
