package storage

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBreaker(t *testing.T, threshold uint32) {
	t.Helper()
	old := breaker
	breaker = newBreaker(threshold, time.Minute)
	t.Cleanup(func() { breaker = old })
}

func TestBreaker_OpensAfterConnectivityFailures(t *testing.T) {
	withBreaker(t, 2)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < 2; i++ {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM members")).WillReturnError(sql.ErrConnDone)
	}

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		err := Exec(ctx, db, "members.delete", "DELETE FROM members WHERE member_id = $1", "M0001")
		assert.ErrorIs(t, err, ErrUnavailable)
	}

	// Open: the statement never reaches the driver.
	err = Exec(ctx, db, "members.delete", "DELETE FROM members WHERE member_id = $1", "M0001")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBreaker_AnsweredErrorsDoNotTrip(t *testing.T) {
	withBreaker(t, 2)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE members")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM members")).WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM members")).WillReturnError(&pq.Error{Code: "23503"})
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM members")).WillReturnResult(sqlmock.NewResult(0, 1))

	ctx := context.Background()
	assert.ErrorIs(t, Exec(ctx, db, "members.update", "UPDATE members SET email = $1", "x"), ErrNotFound)
	assert.ErrorIs(t, Exec(ctx, db, "members.delete", "DELETE FROM members"), ErrConstraint)
	assert.ErrorIs(t, Exec(ctx, db, "members.delete", "DELETE FROM members"), ErrConstraint)
	assert.NoError(t, Exec(ctx, db, "members.delete", "DELETE FROM members"))
	assert.Equal(t, gobreaker.StateClosed, breaker.State())
}
