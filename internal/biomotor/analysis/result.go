package analysis

import "time"

// ScoredResult is one test measurement already graded to a 1..5 score.
// Category and test names travel with it so that downstream consumers
// (trend charts, prompts) never need a second lookup.
type ScoredResult struct {
	CategoryID   string    `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	TestID       string    `json:"testId"`
	TestName     string    `json:"testName"`
	Value        float64   `json:"value"`
	Unit         string    `json:"unit"`
	Score        int       `json:"score"`
	Date         time.Time `json:"date,omitzero"`
}

// CategoryAverage is a derived view, recomputed on every aggregation call
// and never persisted.
type CategoryAverage struct {
	CategoryID   string         `json:"categoryId"`
	CategoryName string         `json:"categoryName"`
	AverageScore float64        `json:"averageScore"`
	Tests        []ScoredResult `json:"tests"`
}

// Session is one dated batch of test results for one athlete.
type Session struct {
	ID        int            `json:"id"`
	Date      time.Time      `json:"date"`
	Results   []ScoredResult `json:"results"`
	Notes     string         `json:"notes,omitempty"`
	AthleteID int            `json:"athleteId"`
}
