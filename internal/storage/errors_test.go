package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"apollotrainer/pkg/sequence"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Kinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"no rows", sql.ErrNoRows, KindNotFound},
		{"foreign key", &pq.Error{Code: "23503"}, KindConstraint},
		{"unique", &pq.Error{Code: "23505"}, KindConstraint},
		{"not null", &pq.Error{Code: "23502"}, KindConstraint},
		{"connection failure", &pq.Error{Code: "08006"}, KindConnectivity},
		{"admin shutdown", &pq.Error{Code: "57P01"}, KindConnectivity},
		{"bad conn", driver.ErrBadConn, KindConnectivity},
		{"conn done", sql.ErrConnDone, KindConnectivity},
		{"deadline", context.DeadlineExceeded, KindConnectivity},
		{"syntax", &pq.Error{Code: "42601"}, KindUnknown},
		{"plain", errors.New("boom"), KindUnknown},
		{"id conflict", sequence.ErrConflict, KindConstraint},
		{"malformed id", sequence.ErrMalformedID, KindUnknown},
		{"wrapped fk", fmt.Errorf("insert: %w", &pq.Error{Code: "23503"}), KindConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("members.delete", tt.err)
			assert.Equal(t, tt.want, KindOf(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClassify_NilAndAlreadyClassified(t *testing.T) {
	assert.NoError(t, Classify("op", nil))

	original := NotFound("members.update")
	again := Classify("members.other", original)
	assert.Same(t, original, again)
}

func TestError_IsMatchesKindSentinel(t *testing.T) {
	assert.ErrorIs(t, NotFound("op"), ErrNotFound)
	assert.NotErrorIs(t, NotFound("op"), ErrConstraint)

	fk := Classify("members.delete", &pq.Error{Code: "23503"})
	assert.ErrorIs(t, fk, ErrConstraint)
	assert.NotErrorIs(t, fk, ErrNotFound)

	lost := Classify("members.list", sql.ErrConnDone)
	assert.ErrorIs(t, lost, ErrUnavailable)

	unknown := Classify("members.list", errors.New("boom"))
	assert.NotErrorIs(t, unknown, ErrNotFound)
	assert.NotErrorIs(t, unknown, ErrConstraint)
	assert.NotErrorIs(t, unknown, ErrUnavailable)
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "members.update: not_found", NotFound("members.update").Error())

	err := Classify("members.delete", errors.New("boom"))
	assert.Equal(t, "members.delete: unknown: boom", err.Error())
}

func TestKindOf_UnclassifiedIsUnknown(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestFail_ClassifiesOnce(t *testing.T) {
	assert.NoError(t, Fail("op", nil))

	err := Fail("members.create", fmt.Errorf("next id: %w", sequence.ErrMalformedID))
	assert.Equal(t, KindUnknown, KindOf(err))
	assert.ErrorIs(t, err, sequence.ErrMalformedID)

	original := NotFound("members.update")
	assert.Same(t, original, Fail("members.create", original))
}
