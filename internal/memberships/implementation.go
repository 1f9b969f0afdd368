// internal/memberships/implementation.go
package memberships

import (
	"context"
	"database/sql"

	"apollotrainer/internal/storage"
)

const (
	insertMembershipQuery = `
		INSERT INTO memberships (member_id, start_date, end_date, membership_type, payment_amount, payment_date, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING membership_id`

	listMembershipsQuery = `
		SELECT ms.membership_id, ms.member_id, m.first_name || ' ' || m.last_name,
			ms.start_date, ms.end_date, ms.membership_type, ms.payment_amount, ms.payment_date, ms.payment_status
		FROM memberships ms
		JOIN members m ON m.member_id = ms.member_id
		ORDER BY ms.membership_id DESC`

	updateMembershipQuery = `
		UPDATE memberships
		SET member_id = $1, start_date = $2, end_date = $3, membership_type = $4,
			payment_amount = $5, payment_date = $6, payment_status = $7
		WHERE membership_id = $8`
)

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ms *Membership) error {
	id, err := storage.InsertReturningID(ctx, r.db, "memberships.create", insertMembershipQuery,
		ms.MemberID, ms.StartDate, ms.EndDate, ms.MembershipType, amount(ms.PaymentAmount), ms.PaymentDate, ms.PaymentStatus)
	if err != nil {
		return err
	}
	ms.ID = id
	return nil
}

func (r *repository) List(ctx context.Context) ([]Membership, error) {
	return storage.Collect(ctx, r.db, "memberships.list", listMembershipsQuery, scanMembership)
}

func (r *repository) Update(ctx context.Context, ms *Membership) error {
	return storage.Exec(ctx, r.db, "memberships.update", updateMembershipQuery,
		ms.MemberID, ms.StartDate, ms.EndDate, ms.MembershipType, amount(ms.PaymentAmount), ms.PaymentDate, ms.PaymentStatus, ms.ID)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return storage.Exec(ctx, r.db, "memberships.delete", `DELETE FROM memberships WHERE membership_id = $1`, id)
}

func amount(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func scanMembership(s storage.Scanner) (Membership, error) {
	var (
		ms  Membership
		amt sql.NullFloat64
	)
	err := s.Scan(&ms.ID, &ms.MemberID, &ms.MemberName, &ms.StartDate, &ms.EndDate,
		&ms.MembershipType, &amt, &ms.PaymentDate, &ms.PaymentStatus)
	if amt.Valid {
		ms.PaymentAmount = &amt.Float64
	}
	return ms, err
}
