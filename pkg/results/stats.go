package results

// Stats holds aggregate counts across the report.
type Stats struct {
	Passed int
	Failed int
	Total  int
}

// ComputeStats aggregates counts from the document.
func ComputeStats(doc *Document) Stats {
	s := Stats{
		Passed: len(doc.Tests.Passed),
		Failed: len(doc.Tests.Failed),
	}
	s.Total = s.Passed + s.Failed
	return s
}
