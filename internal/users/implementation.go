// internal/users/implementation.go
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"apollotrainer/internal/storage"
	"apollotrainer/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	userColumns = `user_id, username, first_name, last_name, role, is_active`

	insertUserQuery = `
		INSERT INTO system_users (username, password_hash, password_salt, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id`

	updateProfileQuery = `
		UPDATE system_users
		SET username = $1, first_name = $2, last_name = $3, role = $4, is_active = $5
		WHERE user_id = $6`

	updateProfileAndPasswordQuery = `
		UPDATE system_users
		SET username = $1, first_name = $2, last_name = $3, role = $4, is_active = $5,
			password_hash = $6, password_salt = $7
		WHERE user_id = $8`

	authenticateQuery = `
		SELECT ` + userColumns + `, password_hash, password_salt
		FROM system_users
		WHERE username = $1`
)

var authAttempts metric.Int64Counter

func init() {
	var err error
	authAttempts, err = otel.Meter("apollotrainer/users").Int64Counter("auth.attempts",
		metric.WithDescription("Login attempts by outcome"),
	)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create auth.attempts counter")
	}
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *SystemUser, password string) error {
	cred, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	id, err := storage.InsertReturningID(ctx, r.db, "system_users.create", insertUserQuery,
		u.Username, cred.Hash, cred.Salt, u.FirstName, u.LastName, u.Role, u.IsActive)
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func (r *repository) List(ctx context.Context) ([]SystemUser, error) {
	return storage.Collect(ctx, r.db, "system_users.list",
		`SELECT `+userColumns+` FROM system_users ORDER BY user_id DESC`, scanUser)
}

func (r *repository) Get(ctx context.Context, id int64) (*SystemUser, error) {
	u, err := storage.Get(ctx, r.db, "system_users.get",
		`SELECT `+userColumns+` FROM system_users WHERE user_id = $1`, scanUser, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) UpdateProfile(ctx context.Context, u *SystemUser) error {
	return storage.Exec(ctx, r.db, "system_users.update_profile", updateProfileQuery,
		u.Username, u.FirstName, u.LastName, u.Role, u.IsActive, u.ID)
}

func (r *repository) UpdateProfileAndPassword(ctx context.Context, u *SystemUser, password string) error {
	cred, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return storage.Exec(ctx, r.db, "system_users.update_profile_and_password", updateProfileAndPasswordQuery,
		u.Username, u.FirstName, u.LastName, u.Role, u.IsActive, cred.Hash, cred.Salt, u.ID)
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return storage.Exec(ctx, r.db, "system_users.delete", `DELETE FROM system_users WHERE user_id = $1`, id)
}

func (r *repository) Authenticate(ctx context.Context, username, password string) (*SystemUser, error) {
	type row struct {
		user SystemUser
		cred credential
	}

	found, err := storage.Get(ctx, r.db, "system_users.authenticate", authenticateQuery,
		func(s storage.Scanner) (row, error) {
			var v row
			err := s.Scan(&v.user.ID, &v.user.Username, &v.user.FirstName, &v.user.LastName,
				&v.user.Role, &v.user.IsActive, &v.cred.Hash, &v.cred.Salt)
			return v, err
		}, username)
	if errors.Is(err, storage.ErrNotFound) {
		r.record(ctx, "unknown_user")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		r.record(ctx, "error")
		return nil, err
	}

	ok, err := verifyPassword(password, found.cred)
	if err != nil {
		r.record(ctx, "error")
		return nil, fmt.Errorf("verify credential for %q: %w", username, err)
	}
	if !ok {
		r.record(ctx, "bad_password")
		return nil, ErrInvalidCredentials
	}

	r.record(ctx, "ok")
	return &found.user, nil
}

func (r *repository) record(ctx context.Context, outcome string) {
	if authAttempts != nil {
		authAttempts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}
}

func scanUser(s storage.Scanner) (SystemUser, error) {
	var u SystemUser
	err := s.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Role, &u.IsActive)
	return u, err
}
