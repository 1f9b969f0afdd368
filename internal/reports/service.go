// internal/reports/service.go
package reports

import "context"

// Service is read-only. Every call runs a fresh query.
type Service interface {
	MemberReport(ctx context.Context) ([]MemberStatus, error)
	FinancialReport(ctx context.Context) ([]Transaction, error)
	TotalRevenue(ctx context.Context) (float64, error)
	Summary(ctx context.Context) (*Summary, error)
}
