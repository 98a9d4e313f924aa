package nutrition

// BMI computes the body mass index and its WHO category label.
func BMI(weightKG, heightCM float64) (float64, string) {
	heightM := heightCM / 100
	bmi := weightKG / (heightM * heightM)

	var category string
	switch {
	case bmi < 18.5:
		category = "underweight"
	case bmi < 25:
		category = "normal"
	case bmi < 30:
		category = "overweight"
	case bmi < 35:
		category = "obesity class I"
	case bmi < 40:
		category = "obesity class II"
	default:
		category = "obesity class III"
	}
	return round1(bmi), category
}
