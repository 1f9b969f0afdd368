// internal/storage/errors.go
package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"apollotrainer/pkg/sequence"

	"github.com/lib/pq"
	"github.com/sony/gobreaker"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrConstraint  = errors.New("constraint violation")
	ErrUnavailable = errors.New("storage unavailable")
)

// Kind classifies a storage failure so callers can tell a missing row from a
// blocked write or a lost connection without reading logs.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConstraint
	KindConnectivity
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConstraint:
		return "constraint"
	case KindConnectivity:
		return "connectivity"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindConstraint:
		return ErrConstraint
	case KindConnectivity:
		return ErrUnavailable
	default:
		return nil
	}
}

// Error is the failure returned by every repository operation.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for the error's kind, so errors.Is(err, ErrNotFound) works.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// NotFound builds a KindNotFound error for op.
func NotFound(op string) error {
	return &Error{Op: op, Kind: KindNotFound}
}

// Classify wraps err in an *Error tagged with op. Errors already classified
// are returned unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Kind: kindFor(err), Err: err}
}

func kindFor(err error) Kind {
	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}
	if errors.Is(err, sequence.ErrConflict) {
		return KindConstraint
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "23":
			return KindConstraint
		case "08", "57":
			return KindConnectivity
		}
		return KindUnknown
	}

	var netErr net.Error
	switch {
	case errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return KindConnectivity
	}
	return KindUnknown
}
