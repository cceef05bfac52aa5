package advisor

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/atletiklab/biomotor/internal/biomotor/analysis"
)

// AnalysisRequest is the external boundary entity of the analysis endpoint.
// Everything in it is re-validated and re-derived server-side, client-sent
// aggregates are never trusted.
type AnalysisRequest struct {
	AthleteData AthleteData `json:"athleteData" validate:"required"`
}

type AthleteData struct {
	Name    string                 `json:"name" validate:"required,min=1,max=100"`
	Age     int                    `json:"age" validate:"required,min=1,max=120"`
	Gender  string                 `json:"gender" validate:"required,min=1,max=100"`
	Sport   string                 `json:"sport" validate:"required,min=1,max=20"`
	Weight  *float64               `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Height  *float64               `json:"height,omitempty" validate:"omitempty,gt=0"`
	Results []TestResultSubmission `json:"results" validate:"required,min=1,max=100,dive"`
}

// TestResultSubmission carries category/test names and the unit denormalized,
// they go straight into the prompt text and are not re-looked-up server-side.
type TestResultSubmission struct {
	CategoryID   string  `json:"categoryId" validate:"required,min=1,max=100"`
	CategoryName string  `json:"categoryName" validate:"required,min=1,max=100"`
	TestID       string  `json:"testId" validate:"required,min=1,max=100"`
	TestName     string  `json:"testName" validate:"required,min=1,max=100"`
	Value        float64 `json:"value"`
	Unit         string  `json:"unit" validate:"required,max=20"`
	Score        int     `json:"score" validate:"required,min=1,max=5"`
}

// ValidationDetail names one offending field so the caller can fix and resubmit.
type ValidationDetail struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report field paths by their json names, e.g. athleteData.age
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate checks the request against the analysis schema and returns one
// detail entry per violated field.
func (r *AnalysisRequest) Validate() []ValidationDetail {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationDetail{{Path: "athleteData", Message: err.Error()}}
	}

	details := make([]ValidationDetail, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, ValidationDetail{
			Path:    trimRootNamespace(fieldErr.Namespace()),
			Message: validationMessage(fieldErr),
		})
	}
	return details
}

// trimRootNamespace drops the struct type prefix:
// AnalysisRequest.athleteData.age -> athleteData.age
func trimRootNamespace(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fieldErr.Tag())
	}
}

// ScoredResults converts the submissions into the analysis core input.
func (d AthleteData) ScoredResults() []analysis.ScoredResult {
	results := make([]analysis.ScoredResult, 0, len(d.Results))
	for _, sub := range d.Results {
		results = append(results, analysis.ScoredResult{
			CategoryID:   sub.CategoryID,
			CategoryName: sub.CategoryName,
			TestID:       sub.TestID,
			TestName:     sub.TestName,
			Value:        sub.Value,
			Unit:         sub.Unit,
			Score:        sub.Score,
		})
	}
	return results
}
