package analysis

import (
	"sort"
	"time"
)

const trendDateLabelFormat = "02 Jan 2006"

// TrendPoint is one session projected onto the longitudinal chart.
// Categories absent from the session are omitted from the map, consumers
// must treat missing keys as gaps, not zeros.
type TrendPoint struct {
	DateLabel  string             `json:"dateLabel"`
	Date       time.Time          `json:"date"`
	Categories map[string]float64 `json:"categories"`
	Overall    *float64           `json:"overall,omitempty"`
}

// TrendCategory identifies one chart series.
type TrendCategory struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// Trend is the full longitudinal view: one point per session, ascending by
// date, plus the union of categories seen across all sessions (for legends).
type Trend struct {
	Points     []TrendPoint    `json:"points"`
	Categories []TrendCategory `json:"categories"`
}

// BuildTrend builds the longitudinal series for one athlete. The input
// collection may arrive in any order and is never mutated: sorting happens
// on a copy, stable, ties broken by input order.
func BuildTrend(sessions []Session) Trend {
	sorted := make([]Session, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	trend := Trend{
		Points: make([]TrendPoint, 0, len(sorted)),
	}

	seenCategories := make(map[string]bool)
	for _, session := range sorted {
		summary := SummarizeSession(session.Results)

		point := TrendPoint{
			DateLabel:  session.Date.Format(trendDateLabelFormat),
			Date:       session.Date,
			Categories: make(map[string]float64, len(summary.PerCategory)),
			Overall:    summary.Overall,
		}
		for _, avg := range summary.PerCategory {
			point.Categories[avg.CategoryID] = avg.AverageScore
			if !seenCategories[avg.CategoryID] {
				seenCategories[avg.CategoryID] = true
				trend.Categories = append(trend.Categories, TrendCategory{
					CategoryID:   avg.CategoryID,
					CategoryName: avg.CategoryName,
				})
			}
		}

		trend.Points = append(trend.Points, point)
	}

	return trend
}
