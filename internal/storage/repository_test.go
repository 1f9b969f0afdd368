package storage

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plan struct {
	ID   int64
	Name string
}

func scanPlan(s Scanner) (plan, error) {
	var p plan
	err := s.Scan(&p.ID, &p.Name)
	return p, err
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestExec_ZeroRowsIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE workout_plans SET")).
		WithArgs("Push", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := Exec(context.Background(), db, "workouts.update_plan",
		"UPDATE workout_plans SET plan_name = $1 WHERE plan_id = $2", "Push", int64(99))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExec_AffectedRowIsSuccess(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM workout_plans")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := Exec(context.Background(), db, "workouts.delete_plan",
		"DELETE FROM workout_plans WHERE plan_id = $1", int64(1))
	assert.NoError(t, err)
}

func TestExec_ForeignKeyIsConstraint(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM workout_plans")).
		WillReturnError(&pq.Error{Code: "23503"})

	err := Exec(context.Background(), db, "workouts.delete_plan",
		"DELETE FROM workout_plans WHERE plan_id = $1", int64(1))
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestInsertReturningID(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO workout_plans")).
		WithArgs("Legs", "Squats").
		WillReturnRows(sqlmock.NewRows([]string{"plan_id"}).AddRow(int64(7)))

	id, err := InsertReturningID(context.Background(), db, "workouts.create_plan",
		"INSERT INTO workout_plans (plan_name, description) VALUES ($1, $2) RETURNING plan_id", "Legs", "Squats")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestCollect_EmptyIsNonNil(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT plan_id, plan_name FROM workout_plans")).
		WillReturnRows(sqlmock.NewRows([]string{"plan_id", "plan_name"}))

	out, err := Collect(context.Background(), db, "workouts.list_plans",
		"SELECT plan_id, plan_name FROM workout_plans", scanPlan)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestCollect_PreservesOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT plan_id, plan_name FROM workout_plans")).
		WillReturnRows(sqlmock.NewRows([]string{"plan_id", "plan_name"}).
			AddRow(int64(3), "Pull").
			AddRow(int64(1), "Push"))

	out, err := Collect(context.Background(), db, "workouts.list_plans",
		"SELECT plan_id, plan_name FROM workout_plans ORDER BY plan_id DESC", scanPlan)
	require.NoError(t, err)
	assert.Equal(t, []plan{{3, "Pull"}, {1, "Push"}}, out)
}

func TestCollect_RowErrorFailsWholeListing(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT plan_id, plan_name FROM workout_plans")).
		WillReturnRows(sqlmock.NewRows([]string{"plan_id", "plan_name"}).
			AddRow(int64(1), "Push").
			RowError(0, sql.ErrConnDone))

	out, err := Collect(context.Background(), db, "workouts.list_plans",
		"SELECT plan_id, plan_name FROM workout_plans", scanPlan)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGet_MissingRowIsNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT plan_id, plan_name FROM workout_plans WHERE")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"plan_id", "plan_name"}))

	_, err := Get(context.Background(), db, "workouts.get_plan",
		"SELECT plan_id, plan_name FROM workout_plans WHERE plan_id = $1", scanPlan, int64(5))
	assert.ErrorIs(t, err, ErrNotFound)
}
