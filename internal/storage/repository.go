// internal/storage/repository.go
package storage

import (
	"context"
	"database/sql"
	"errors"

	"apollotrainer/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Repository is the lifecycle contract every entity store satisfies.
// Create stamps the generated key onto the record, List returns a fresh
// snapshot in the store's display order, and Update and Delete report
// KindNotFound when no row matched.
type Repository[T any, K comparable] interface {
	Create(ctx context.Context, record *T) error
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, record *T) error
	Delete(ctx context.Context, key K) error
}

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

var (
	tracer = otel.Tracer("apollotrainer/storage")
	meter  = otel.Meter("apollotrainer/storage")

	operations metric.Int64Counter
)

func init() {
	var err error
	operations, err = meter.Int64Counter("storage.operations",
		metric.WithDescription("Repository operations by op and outcome"),
	)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create storage.operations counter")
	}
}

func start(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, op, trace.WithAttributes(attribute.String("db.operation", op)))
}

// finish classifies err, records the outcome and logs failures once.
func finish(ctx context.Context, span trace.Span, op string, err error) error {
	defer span.End()

	outcome := "ok"
	if err != nil {
		err = Classify(op, err)
		kind := KindOf(err)
		outcome = kind.String()
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.kind", outcome))

		event := logger.Error()
		if kind == KindNotFound {
			event = logger.Warn()
		}
		event.Err(err).Str("op", op).Str("kind", outcome).Msg("storage operation failed")
	}

	if operations != nil {
		operations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("op", op),
			attribute.String("outcome", outcome),
		))
	}
	return err
}

// Fail classifies and logs an error raised outside the helpers below, such as
// a sequence failure. Errors the helpers already handled pass through.
func Fail(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	err = Classify(op, err)
	logger.Error().Err(err).Str("op", op).Str("kind", KindOf(err).String()).Msg("storage operation failed")
	return err
}

// Exec runs a write that must affect at least one row.
func Exec(ctx context.Context, q Querier, op, query string, args ...any) (err error) {
	ctx, span := start(ctx, op)
	defer func() { err = finish(ctx, span, op, err) }()

	var n int64
	err = guard(func() error {
		res, err := q.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return NotFound(op)
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", n))
	return nil
}

// InsertReturningID runs an INSERT ... RETURNING statement and returns the
// storage-assigned key.
func InsertReturningID(ctx context.Context, q Querier, op, query string, args ...any) (id int64, err error) {
	ctx, span := start(ctx, op)
	defer func() { err = finish(ctx, span, op, err) }()

	err = guard(func() error {
		return q.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	span.SetAttributes(attribute.Int64("db.generated_id", id))
	return id, nil
}

// Collect scans every row returned by query. The result is never nil.
func Collect[T any](ctx context.Context, q Querier, op, query string, scan func(Scanner) (T, error), args ...any) (out []T, err error) {
	ctx, span := start(ctx, op)
	defer func() { err = finish(ctx, span, op, err) }()

	out = make([]T, 0)
	err = guard(func() error {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			v, err := scan(rows)
			if err != nil {
				return err
			}
			out = append(out, v)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("db.rows", len(out)))
	return out, nil
}

// Get scans a single row. A missing row is reported as KindNotFound.
func Get[T any](ctx context.Context, q Querier, op, query string, scan func(Scanner) (T, error), args ...any) (v T, err error) {
	ctx, span := start(ctx, op)
	defer func() { err = finish(ctx, span, op, err) }()

	err = guard(func() error {
		var err error
		v, err = scan(q.QueryRowContext(ctx, query, args...))
		return err
	})
	return v, err
}
