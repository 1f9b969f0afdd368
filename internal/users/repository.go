// internal/users/repository.go
package users

import "context"

// Repository stores system users. Create and UpdateProfileAndPassword are the
// only operations that write a credential. UpdateProfile never touches it.
type Repository interface {
	Create(ctx context.Context, u *SystemUser, password string) error
	List(ctx context.Context) ([]SystemUser, error)
	Get(ctx context.Context, id int64) (*SystemUser, error)
	UpdateProfile(ctx context.Context, u *SystemUser) error
	UpdateProfileAndPassword(ctx context.Context, u *SystemUser, password string) error
	Delete(ctx context.Context, id int64) error

	// Authenticate returns the matching user, active or not. An unknown
	// username and a wrong password both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*SystemUser, error)
}
