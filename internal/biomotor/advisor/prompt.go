package advisor

import (
	"fmt"
	"strings"

	"github.com/atletiklab/biomotor/internal/biomotor/analysis"
)

const systemPrompt = `You are an experienced strength and conditioning coach specialized in youth and amateur athletes. You analyze biomotor test results and give short, concrete, actionable training advice. Answer in plain text without markdown formatting.`

// BuildPrompt renders the athlete profile and classified category averages
// into the coaching prompt. Weak categories get full test detail since the
// advice centers on them, strong categories are only named.
func BuildPrompt(athlete AthleteData, classification analysis.Classification) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"Athlete: %s, %d years old, %s, sport: %s.\n",
		athlete.Name, athlete.Age, athlete.Gender, athlete.Sport,
	))
	if athlete.Weight != nil && athlete.Height != nil {
		sb.WriteString(fmt.Sprintf(
			"Body: %.1f kg, %.1f cm.\n",
			*athlete.Weight, *athlete.Height,
		))
	}

	sb.WriteString("\n")

	if len(classification.Weaknesses) > 0 {
		sb.WriteString("Weak biomotor categories (scores on a 1-5 scale):\n")
		for _, cat := range classification.Weaknesses {
			sb.WriteString(fmt.Sprintf("- %s: average score %.1f\n", cat.CategoryName, cat.AverageScore))
			for _, test := range cat.Tests {
				sb.WriteString(fmt.Sprintf(
					"  * %s: %.2f %s (score %d)\n",
					test.TestName, test.Value, test.Unit, test.Score,
				))
			}
		}
	} else {
		sb.WriteString("No weak biomotor categories, all averages are above the weakness threshold.\n")
	}

	if len(classification.Strengths) > 0 {
		sb.WriteString(fmt.Sprintf(
			"Strong categories: %s.\n",
			strings.Join(analysis.CategoryNames(classification.Strengths), ", "),
		))
	}

	sb.WriteString(`
Based on this, provide:
1. The primary problem to address first.
2. 3-4 specific exercises with sets, reps and frequency to fix the weak categories.
3. A priority order for the next 4 weeks.
4. One short recovery and nutrition note.
Keep the whole answer short and practical.`)

	return sb.String()
}
