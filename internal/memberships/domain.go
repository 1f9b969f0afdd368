// internal/memberships/domain.go
package memberships

import "time"

// StatusPaid is the only status counted as revenue.
const StatusPaid = "Paid"

// Membership is a member's plan over a date range. MemberName is filled by
// List from the members table and ignored on writes.
type Membership struct {
	ID             int64     `json:"membership_id"`
	MemberID       string    `json:"member_id"`
	MemberName     string    `json:"member_name,omitempty"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	MembershipType string    `json:"membership_type"`
	PaymentAmount  *float64  `json:"payment_amount"`
	PaymentDate    time.Time `json:"payment_date"`
	PaymentStatus  string    `json:"payment_status"`
}

var (
	PlanTypes = []string{"Monthly", "Quarterly", "Annual", "Premium"}
	Statuses  = []string{StatusPaid, "Pending", "Cancelled"}
)
