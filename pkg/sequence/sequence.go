package sequence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrMalformedID = errors.New("malformed identifier")
	ErrConflict    = errors.New("identifier conflict: retries exhausted")
)

// DefaultMaxAttempts bounds how many times Insert re-reads the maximum after a conflict.
const DefaultMaxAttempts = 5

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InsertFunc writes the row for id inside tx.
type InsertFunc func(ctx context.Context, tx *sql.Tx, id string) error

// Sequence derives human-readable identifiers such as M0001 from the
// greatest identifier stored in a table column.
type Sequence struct {
	table       string
	column      string
	prefix      string
	width       int
	MaxAttempts int
	tracer      trace.Tracer
}

// New creates a sequence over table.column with a fixed prefix and zero-padded width.
func New(table, column, prefix string, width int) *Sequence {
	return &Sequence{
		table:       table,
		column:      column,
		prefix:      prefix,
		width:       width,
		MaxAttempts: DefaultMaxAttempts,
		tracer:      otel.Tracer("apollotrainer/sequence"),
	}
}

// Format renders n as prefix plus n zero-padded to the sequence width.
// Values wider than the width are rendered in full.
func (s *Sequence) Format(n int) string {
	return fmt.Sprintf("%s%0*d", s.prefix, s.width, n)
}

// Parse returns the numeric suffix of id.
func (s *Sequence) Parse(id string) (int, error) {
	suffix, ok := strings.CutPrefix(id, s.prefix)
	if !ok || suffix == "" {
		return 0, fmt.Errorf("%w: %q lacks prefix %q", ErrMalformedID, id, s.prefix)
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q has non-numeric suffix", ErrMalformedID, id)
		}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedID, id, err)
	}
	return n, nil
}

func (s *Sequence) maxQuery() string {
	// Length first so that M10000 sorts after M9999.
	return fmt.Sprintf(
		"SELECT %[1]s FROM %[2]s ORDER BY LENGTH(%[1]s) DESC, %[1]s DESC LIMIT 1",
		s.column, s.table,
	)
}

// Next returns the identifier following the greatest one currently stored.
func (s *Sequence) Next(ctx context.Context, q Querier) (string, error) {
	ctx, span := s.tracer.Start(ctx, "sequence.next",
		trace.WithAttributes(
			attribute.String("sequence.table", s.table),
			attribute.String("sequence.prefix", s.prefix),
		),
	)
	defer span.End()

	var current string
	err := q.QueryRowContext(ctx, s.maxQuery()).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return s.Format(1), nil
	}
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("query current %s: %w", s.column, err)
	}

	n, err := s.Parse(current)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	next := s.Format(n + 1)
	span.SetAttributes(attribute.String("sequence.next", next))
	return next, nil
}

// Insert assigns the next identifier and runs insert in the same serializable
// transaction. A duplicate primary key or serialization failure restarts the
// whole read-then-insert step, up to MaxAttempts times.
func (s *Sequence) Insert(ctx context.Context, db *sql.DB, insert InsertFunc) (string, error) {
	ctx, span := s.tracer.Start(ctx, "sequence.insert",
		trace.WithAttributes(attribute.String("sequence.table", s.table)),
	)
	defer span.End()

	attempts := s.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		id, err := s.tryInsert(ctx, db, insert)
		if err == nil {
			span.SetAttributes(
				attribute.String("sequence.id", id),
				attribute.Int("sequence.attempts", attempt),
			)
			return id, nil
		}
		if !s.isConflict(err) {
			span.RecordError(err)
			return "", err
		}
		span.AddEvent("sequence.conflict", trace.WithAttributes(attribute.Int("attempt", attempt)))
	}

	span.SetAttributes(attribute.Bool("conflict.exhausted", true))
	return "", ErrConflict
}

func (s *Sequence) tryInsert(ctx context.Context, db *sql.DB, insert InsertFunc) (string, error) {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := s.Next(ctx, tx)
	if err != nil {
		return "", err
	}
	if err := insert(ctx, tx, id); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

// isConflict reports whether err came from another writer taking the same id.
func (s *Sequence) isConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case "40001":
		return true
	case "23505":
		return pqErr.Constraint == "" || pqErr.Constraint == s.table+"_pkey"
	}
	return false
}
