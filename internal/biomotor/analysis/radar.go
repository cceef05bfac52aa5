package analysis

// RadarMaxScore is the fixed full-scale value of every radar axis.
const RadarMaxScore = 5.0

// Axis is one spoke of the radar chart. The axis list is externally defined
// and fixed, its shape never changes at render time.
type Axis struct {
	CategoryID string `json:"categoryId"`
	Label      string `json:"label"`
}

// RadarEntry is one ordered radar vector entry.
type RadarEntry struct {
	Label      string   `json:"label"`
	Score      float64  `json:"score"`
	Max        float64  `json:"max"`
	Comparison *float64 `json:"comparison,omitempty"`
}

// BuildRadar projects a scores-by-category map onto the fixed axis order.
// Categories missing from the map default to 0. When a comparison map is
// given, both vectors are built over the same axis enumeration and merged
// by position.
func BuildRadar(axes []Axis, scores, comparison map[string]float64) []RadarEntry {
	entries := make([]RadarEntry, 0, len(axes))
	for _, axis := range axes {
		entries = append(entries, RadarEntry{
			Label: axis.Label,
			Score: scores[axis.CategoryID], // zero value for absent categories
			Max:   RadarMaxScore,
		})
	}

	if comparison == nil {
		return entries
	}

	comparisonVector := make([]float64, 0, len(axes))
	for _, axis := range axes {
		comparisonVector = append(comparisonVector, comparison[axis.CategoryID])
	}
	for i := range entries {
		entries[i].Comparison = &comparisonVector[i]
	}

	return entries
}

// ScoresByCategory flattens category averages into the score map consumed
// by BuildRadar.
func ScoresByCategory(averages []CategoryAverage) map[string]float64 {
	scores := make(map[string]float64, len(averages))
	for _, avg := range averages {
		scores[avg.CategoryID] = avg.AverageScore
	}
	return scores
}
