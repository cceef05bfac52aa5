package analysis

import "sort"

const (
	strengthThreshold = 4.0
	weaknessThreshold = 2.0
)

// Classification partitions category averages into strengths (>= 4) and
// weaknesses (<= 2). Categories strictly between the thresholds land in
// neither bucket, that banding is intentional.
type Classification struct {
	Strengths  []CategoryAverage `json:"strengths"`
	Weaknesses []CategoryAverage `json:"weaknesses"`
}

// Classify sorts the averages descending by score (stable, input untouched)
// and picks the threshold bands. Weaknesses keep the descending order of the
// full sorted list, they are not re-sorted ascending.
func Classify(averages []CategoryAverage) Classification {
	sorted := make([]CategoryAverage, len(averages))
	copy(sorted, averages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AverageScore > sorted[j].AverageScore
	})

	var classification Classification
	for _, avg := range sorted {
		switch {
		case avg.AverageScore >= strengthThreshold:
			classification.Strengths = append(classification.Strengths, avg)
		case avg.AverageScore <= weaknessThreshold:
			classification.Weaknesses = append(classification.Weaknesses, avg)
		}
	}

	return classification
}

// CategoryNames is a convenience for response payloads that only need the
// category names of a classification bucket.
func CategoryNames(averages []CategoryAverage) []string {
	names := make([]string, 0, len(averages))
	for _, avg := range averages {
		names = append(names, avg.CategoryName)
	}
	return names
}
