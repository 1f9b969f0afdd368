// internal/payments/implementation.go
package payments

import (
	"context"
	"database/sql"

	"apollotrainer/internal/storage"
	"apollotrainer/pkg/sequence"
)

const (
	insertPaymentQuery = `
		INSERT INTO payments (payment_id, member_id, membership_type_id, payment_date, amount_paid, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6)`

	listPaymentsQuery = `
		SELECT p.payment_id, p.member_id, m.first_name || ' ' || m.last_name,
			p.membership_type_id, p.payment_date, p.amount_paid, p.payment_method
		FROM payments p
		JOIN members m ON m.member_id = p.member_id
		ORDER BY p.payment_date DESC, LENGTH(p.payment_id) DESC, p.payment_id DESC`

	updatePaymentQuery = `
		UPDATE payments
		SET member_id = $1, membership_type_id = $2, payment_date = $3, amount_paid = $4, payment_method = $5
		WHERE payment_id = $6`
)

type repository struct {
	db  *sql.DB
	ids *sequence.Sequence
}

func NewRepository(db *sql.DB) Repository {
	return &repository{
		db:  db,
		ids: sequence.New("payments", "payment_id", "P", 4),
	}
}

func (r *repository) Create(ctx context.Context, p *Payment) error {
	id, err := r.ids.Insert(ctx, r.db, func(ctx context.Context, tx *sql.Tx, id string) error {
		return storage.Exec(ctx, tx, "payments.create", insertPaymentQuery,
			id, p.MemberID, p.MembershipTypeID, p.PaymentDate, p.AmountPaid, p.PaymentMethod)
	})
	if err != nil {
		return storage.Fail("payments.create", err)
	}
	p.ID = id
	return nil
}

func (r *repository) List(ctx context.Context) ([]Payment, error) {
	return storage.Collect(ctx, r.db, "payments.list", listPaymentsQuery, func(s storage.Scanner) (Payment, error) {
		var p Payment
		err := s.Scan(&p.ID, &p.MemberID, &p.MemberName, &p.MembershipTypeID, &p.PaymentDate, &p.AmountPaid, &p.PaymentMethod)
		return p, err
	})
}

func (r *repository) Update(ctx context.Context, p *Payment) error {
	return storage.Exec(ctx, r.db, "payments.update", updatePaymentQuery,
		p.MemberID, p.MembershipTypeID, p.PaymentDate, p.AmountPaid, p.PaymentMethod, p.ID)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return storage.Exec(ctx, r.db, "payments.delete", `DELETE FROM payments WHERE payment_id = $1`, id)
}
