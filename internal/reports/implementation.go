// internal/reports/implementation.go
package reports

import (
	"context"
	"database/sql"

	"apollotrainer/internal/memberships"
	"apollotrainer/internal/storage"
)

const (
	memberReportQuery = `
		SELECT m.member_id, m.first_name || ' ' || m.last_name,
			ms.membership_type, ms.start_date, ms.end_date, ms.payment_status
		FROM members m
		JOIN memberships ms ON ms.member_id = m.member_id
		ORDER BY m.last_name, ms.start_date DESC`

	financialReportQuery = `
		SELECT m.member_id, m.first_name || ' ' || m.last_name,
			ms.membership_type, ms.payment_date, ms.payment_amount, ms.payment_status
		FROM members m
		JOIN memberships ms ON ms.member_id = m.member_id
		WHERE ms.payment_amount IS NOT NULL AND ms.payment_amount > 0
		ORDER BY ms.payment_date DESC`

	totalRevenueQuery = `
		SELECT COALESCE(SUM(payment_amount), 0)
		FROM memberships
		WHERE payment_status = $1`

	summaryQuery = `
		SELECT
			(SELECT COUNT(*) FROM members),
			(SELECT COUNT(*) FROM memberships WHERE end_date >= CURRENT_DATE),
			(SELECT COUNT(*) FROM workout_plans),
			(SELECT COUNT(*) FROM system_users),
			(SELECT COALESCE(SUM(payment_amount), 0) FROM memberships WHERE payment_status = $1)`
)

type service struct {
	db *sql.DB
}

func NewService(db *sql.DB) Service {
	return &service{db: db}
}

func (s *service) MemberReport(ctx context.Context) ([]MemberStatus, error) {
	return storage.Collect(ctx, s.db, "reports.members", memberReportQuery,
		func(sc storage.Scanner) (MemberStatus, error) {
			var r MemberStatus
			err := sc.Scan(&r.MemberID, &r.MemberName, &r.MembershipType, &r.StartDate, &r.EndDate, &r.PaymentStatus)
			return r, err
		})
}

func (s *service) FinancialReport(ctx context.Context) ([]Transaction, error) {
	return storage.Collect(ctx, s.db, "reports.financial", financialReportQuery,
		func(sc storage.Scanner) (Transaction, error) {
			var r Transaction
			err := sc.Scan(&r.MemberID, &r.MemberName, &r.MembershipType, &r.PaymentDate, &r.PaymentAmount, &r.PaymentStatus)
			return r, err
		})
}

func (s *service) TotalRevenue(ctx context.Context) (float64, error) {
	return storage.Get(ctx, s.db, "reports.revenue", totalRevenueQuery, scanFloat, memberships.StatusPaid)
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	sum, err := storage.Get(ctx, s.db, "reports.summary", summaryQuery,
		func(sc storage.Scanner) (Summary, error) {
			var v Summary
			err := sc.Scan(&v.Members, &v.ActiveMemberships, &v.WorkoutPlans, &v.SystemUsers, &v.TotalRevenue)
			return v, err
		}, memberships.StatusPaid)
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

func scanFloat(sc storage.Scanner) (float64, error) {
	var v float64
	err := sc.Scan(&v)
	return v, err
}
