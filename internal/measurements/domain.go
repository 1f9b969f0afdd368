// internal/measurements/domain.go
package measurements

// Measurement is one body-composition record for a member. Weight is in
// kilograms and height in centimetres.
type Measurement struct {
	ID                int64   `json:"measurement_id"`
	MemberID          string  `json:"member_id"`
	MemberName        string  `json:"member_name,omitempty"`
	Weight            float64 `json:"weight"`
	Height            float64 `json:"height"`
	BMI               float64 `json:"bmi"`
	BodyFatPercentage float64 `json:"body_fat_percentage"`
}
