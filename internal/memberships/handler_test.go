package memberships

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created *Membership
	updated *Membership
	deleted int64
	err     error
}

func (f *fakeRepo) Create(ctx context.Context, ms *Membership) error {
	ms.ID = 5
	f.created = ms
	return f.err
}

func (f *fakeRepo) List(ctx context.Context) ([]Membership, error) {
	return []Membership{}, f.err
}

func (f *fakeRepo) Update(ctx context.Context, ms *Membership) error {
	f.updated = ms
	return f.err
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = id
	return f.err
}

func serve(repo Repository, method, path, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	NewHandler(repo).Register(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

const validMembership = `{
	"member_id": "M0001",
	"start_date": "2024-01-01T00:00:00Z",
	"end_date": "2024-01-31T00:00:00Z",
	"membership_type": "Monthly",
	"payment_amount": 49.99,
	"payment_date": "2024-01-01T00:00:00Z",
	"payment_status": "Paid"
}`

func TestHandleCreate(t *testing.T) {
	repo := &fakeRepo{}
	rec := serve(repo, http.MethodPost, "/memberships", validMembership)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"membership_id":5`)
	require.NotNil(t, repo.created.PaymentAmount)
	assert.InDelta(t, 49.99, *repo.created.PaymentAmount, 0.001)
}

func TestHandleCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
	}{
		{"unknown plan", [2]string{`"Monthly"`, `"Weekly"`}},
		{"unknown status", [2]string{`"Paid"`, `"Refunded"`}},
		{"non-positive amount", [2]string{`49.99`, `0`}},
		{"end before start", [2]string{`"2024-01-31T00:00:00Z"`, `"2023-12-31T00:00:00Z"`}},
		{"missing member", [2]string{`"M0001"`, `""`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.Replace(validMembership, tt.replace[0], tt.replace[1], 1)
			repo := &fakeRepo{}
			rec := serve(repo, http.MethodPost, "/memberships", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, repo.created)
		})
	}
}

func TestHandleUpdate_ParsesNumericID(t *testing.T) {
	repo := &fakeRepo{}
	rec := serve(repo, http.MethodPut, "/memberships/42", validMembership)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), repo.updated.ID)
}

func TestHandleDelete_RejectsNonNumericID(t *testing.T) {
	repo := &fakeRepo{}
	rec := serve(repo, http.MethodDelete, "/memberships/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, repo.deleted)
}
