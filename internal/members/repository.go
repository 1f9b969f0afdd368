// internal/members/repository.go
package members

import (
	"context"

	"apollotrainer/internal/storage"
)

type Repository interface {
	storage.Repository[Member, string]
	Get(ctx context.Context, id string) (*Member, error)
}
