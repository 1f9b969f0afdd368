// internal/users/domain.go
package users

import "errors"

var ErrInvalidCredentials = errors.New("invalid username or password")

var Roles = []string{"Admin", "Instructor", "Staff"}

// SystemUser is a staff account. The credential lives only in storage and
// is never loaded into this type.
type SystemUser struct {
	ID        int64  `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
}

// credential is the stored argon2id hash and salt, both base64.
type credential struct {
	Hash string
	Salt string
}
