package athletes

import "time"

// Athlete is a registered test subject. Weight and height are optional,
// younger squads often get registered before their first measurement.
type Athlete struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Sport     string    `json:"sport"`
	TeamID    *int      `json:"teamId,omitempty"`
	WeightKg  *float64  `json:"weightKg,omitempty"`
	HeightCm  *float64  `json:"heightCm,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Team struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Sport string `json:"sport"`
}

// TestDefinition describes one biomotor test and the category it belongs to.
// The definitions double as the radar chart axis source, the distinct
// categories in definition order are the fixed axes.
type TestDefinition struct {
	TestID       string `json:"testId"`
	TestName     string `json:"testName"`
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Unit         string `json:"unit"`
}
