package reports

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"apollotrainer/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	revenue float64
	err     error
}

func (f *fakeService) MemberReport(ctx context.Context) ([]MemberStatus, error) {
	return []MemberStatus{}, f.err
}

func (f *fakeService) FinancialReport(ctx context.Context) ([]Transaction, error) {
	return []Transaction{}, f.err
}

func (f *fakeService) TotalRevenue(ctx context.Context) (float64, error) {
	return f.revenue, f.err
}

func (f *fakeService) Summary(ctx context.Context) (*Summary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &Summary{Members: 1, TotalRevenue: f.revenue}, nil
}

func serve(svc Service, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	NewHandler(svc).Register(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandleRevenue(t *testing.T) {
	rec := serve(&fakeService{revenue: 99.5}, "/reports/revenue")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_revenue":99.5}`, rec.Body.String())
}

func TestHandleLists_EmptyArrays(t *testing.T) {
	for _, path := range []string{"/reports/members", "/reports/financial"} {
		rec := serve(&fakeService{}, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `[]`, rec.Body.String(), path)
	}
}

func TestHandleSummary_Unavailable(t *testing.T) {
	rec := serve(&fakeService{err: &storage.Error{Op: "reports.summary", Kind: storage.KindConnectivity}}, "/reports/summary")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
