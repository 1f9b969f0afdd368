// internal/measurements/calculator.go
package measurements

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid calculator input")

type Sex string

const (
	Male   Sex = "Male"
	Female Sex = "Female"
)

// ActivityLevel names a TDEE multiplier.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "light"
	ModeratelyActive ActivityLevel = "moderate"
	VeryActive       ActivityLevel = "very"
	ExtraActive      ActivityLevel = "extreme"
)

var activityFactors = map[ActivityLevel]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

// Factor returns the multiplier for l.
func (l ActivityLevel) Factor() (float64, bool) {
	f, ok := activityFactors[l]
	return f, ok
}

// BMI returns weight / height² with weight in kilograms and height in metres.
func BMI(weightKg, heightM float64) (float64, error) {
	if weightKg <= 0 || heightM <= 0 {
		return 0, fmt.Errorf("%w: weight and height must be positive", ErrInvalidInput)
	}
	return weightKg / (heightM * heightM), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 24.9:
		return "Normal weight (Healthy)"
	case bmi < 29.9:
		return "Overweight"
	default:
		return "Obesity"
	}
}

// BMR estimates basal metabolic rate in kcal/day with the Mifflin-St Jeor
// equation. Height is in centimetres.
func BMR(weightKg, heightCm float64, age int, sex Sex) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, fmt.Errorf("%w: weight, height and age must be positive", ErrInvalidInput)
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch sex {
	case Male:
		return bmr + 5, nil
	case Female:
		return bmr - 161, nil
	default:
		return 0, fmt.Errorf("%w: unknown sex %q", ErrInvalidInput, sex)
	}
}

// TDEE scales bmr by the activity factor for level.
func TDEE(bmr float64, level ActivityLevel) (float64, error) {
	if bmr <= 0 {
		return 0, fmt.Errorf("%w: bmr must be positive", ErrInvalidInput)
	}
	f, ok := level.Factor()
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, level)
	}
	return bmr * f, nil
}
