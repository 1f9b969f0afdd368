// internal/members/domain.go
package members

import "time"

// Member is a registered gym member. ID is assigned on create as M####.
type Member struct {
	ID            string    `json:"member_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	JoiningDate   time.Time `json:"joining_date"`
	Address       string    `json:"address"`
}
