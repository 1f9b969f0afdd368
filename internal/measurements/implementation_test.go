package measurements

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"apollotrainer/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestCreate_StampsReturnedID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO body_measurements")).
		WithArgs("M0001", 70.0, 175.0, 22.86, 18.5).
		WillReturnRows(sqlmock.NewRows([]string{"measurement_id"}).AddRow(int64(3)))

	m := &Measurement{MemberID: "M0001", Weight: 70, Height: 175, BMI: 22.86, BodyFatPercentage: 18.5}
	require.NoError(t, repo.Create(context.Background(), m))
	assert.Equal(t, int64(3), m.ID)
}

func TestList_NewestFirstWithMemberName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN members m ON m.member_id = bm.member_id ORDER BY bm.measurement_id DESC")).
		WillReturnRows(sqlmock.NewRows([]string{
			"measurement_id", "member_id", "member_name", "weight", "height", "bmi", "body_fat_percentage",
		}).
			AddRow(int64(2), "M0001", "Ada Lovelace", 69.0, 175.0, 22.53, 18.0).
			AddRow(int64(1), "M0001", "Ada Lovelace", 70.0, 175.0, 22.86, 18.5))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, "Ada Lovelace", list[0].MemberName)
}

func TestUpdate_UnknownMemberIsConstraint(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE body_measurements SET member_id = $1")).
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.Update(context.Background(), &Measurement{ID: 1, MemberID: "M9999"})
	assert.ErrorIs(t, err, storage.ErrConstraint)
}

func TestDelete_ZeroRowsIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM body_measurements WHERE measurement_id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 5), storage.ErrNotFound)
}
