package analysis

// AggregateResults groups results by category and computes the arithmetic
// mean of their scores. Grouping is stable: categories keep the order in
// which they first appear in the input.
func AggregateResults(results []ScoredResult) []CategoryAverage {
	if len(results) == 0 {
		return nil
	}

	byCategory := make(map[string]int) // categoryID -> index in averages
	var averages []CategoryAverage
	for _, res := range results {
		idx, ok := byCategory[res.CategoryID]
		if !ok {
			idx = len(averages)
			byCategory[res.CategoryID] = idx
			averages = append(averages, CategoryAverage{
				CategoryID:   res.CategoryID,
				CategoryName: res.CategoryName,
			})
		}
		averages[idx].Tests = append(averages[idx].Tests, res)
	}

	for i := range averages {
		var sum int
		for _, res := range averages[i].Tests {
			sum += res.Score
		}
		averages[i].AverageScore = float64(sum) / float64(len(averages[i].Tests))
	}

	return averages
}

// SessionSummary is the per-session aggregation view. Overall is nil for an
// empty session, callers must check for absence instead of assuming 0.
type SessionSummary struct {
	PerCategory []CategoryAverage `json:"perCategory"`
	Overall     *float64          `json:"overall,omitempty"`
}

// SummarizeSession computes per-category averages plus one overall average
// across all results of the session regardless of category.
func SummarizeSession(results []ScoredResult) SessionSummary {
	summary := SessionSummary{
		PerCategory: AggregateResults(results),
	}

	if len(results) == 0 {
		return summary
	}

	var sum int
	for _, res := range results {
		sum += res.Score
	}
	overall := float64(sum) / float64(len(results))
	summary.Overall = &overall

	return summary
}
