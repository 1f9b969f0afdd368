// internal/reports/domain.go
package reports

import "time"

// MemberStatus is one row of the membership status listing.
type MemberStatus struct {
	MemberID       string    `json:"member_id"`
	MemberName     string    `json:"member_name"`
	MembershipType string    `json:"membership_type"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	PaymentStatus  string    `json:"payment_status"`
}

// Transaction is one row of the financial listing.
type Transaction struct {
	MemberID       string    `json:"member_id"`
	MemberName     string    `json:"member_name"`
	MembershipType string    `json:"membership_type"`
	PaymentDate    time.Time `json:"payment_date"`
	PaymentAmount  float64   `json:"payment_amount"`
	PaymentStatus  string    `json:"payment_status"`
}

// Summary holds the dashboard counters.
type Summary struct {
	Members           int64   `json:"members"`
	ActiveMemberships int64   `json:"active_memberships"`
	WorkoutPlans      int64   `json:"workout_plans"`
	SystemUsers       int64   `json:"system_users"`
	TotalRevenue      float64 `json:"total_revenue"`
}
