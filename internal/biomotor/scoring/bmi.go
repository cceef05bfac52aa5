package scoring

// BMICategory is one of the four fixed BMI bands.
type BMICategory struct {
	Label string `json:"label"`
	Band  int    `json:"band"`
}

var (
	BMIUnderweight = BMICategory{Label: "Underweight/Kurus", Band: 0}
	BMINormal      = BMICategory{Label: "Normal", Band: 1}
	BMIOverweight  = BMICategory{Label: "Overweight/Gemuk", Band: 2}
	BMIObese       = BMICategory{Label: "Obese/Obesitas", Band: 3}
)

// gauge domain for BMI visualization, values outside are clamped
const (
	gaugeBMIMin = 10.0
	gaugeBMIMax = 40.0
)

// ComputeBMI returns weight(kg) / height(m)². Height is given in centimeters.
// No rounding is done here, display layers round independently.
func ComputeBMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// CategorizeBMI maps a BMI value onto the four fixed half-open bands.
// Boundary values belong to the higher band.
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// GaugeAngle clamps the bmi to [10,40] and linearly maps it to [-90°,+90°].
// It never extrapolates outside that range.
func GaugeAngle(bmi float64) float64 {
	if bmi < gaugeBMIMin {
		bmi = gaugeBMIMin
	}
	if bmi > gaugeBMIMax {
		bmi = gaugeBMIMax
	}
	return (bmi-gaugeBMIMin)/(gaugeBMIMax-gaugeBMIMin)*180 - 90
}
