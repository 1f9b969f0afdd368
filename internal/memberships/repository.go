// internal/memberships/repository.go
package memberships

import "apollotrainer/internal/storage"

type Repository interface {
	storage.Repository[Membership, int64]
}
