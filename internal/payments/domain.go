// internal/payments/domain.go
package payments

import "time"

// Payment records money received from a member. It is kept separately from
// the membership's own payment fields. ID is assigned on create as P####.
type Payment struct {
	ID               string    `json:"payment_id"`
	MemberID         string    `json:"member_id"`
	MemberName       string    `json:"member_name,omitempty"`
	MembershipTypeID string    `json:"membership_type_id"`
	PaymentDate      time.Time `json:"payment_date"`
	AmountPaid       float64   `json:"amount_paid"`
	PaymentMethod    string    `json:"payment_method"`
}
