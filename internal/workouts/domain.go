// internal/workouts/domain.go
package workouts

import "time"

type Plan struct {
	ID          int64  `json:"plan_id"`
	Name        string `json:"plan_name"`
	Description string `json:"description"`
}

// Assignment links a member to a plan. MemberName and PlanName are display
// fields filled by List.
type Assignment struct {
	ID           int64     `json:"assignment_id"`
	MemberID     string    `json:"member_id"`
	MemberName   string    `json:"member_name,omitempty"`
	PlanID       int64     `json:"plan_id"`
	PlanName     string    `json:"plan_name,omitempty"`
	AssignedDate time.Time `json:"assigned_date"`
}
