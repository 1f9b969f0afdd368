// internal/payments/repository.go
package payments

import "apollotrainer/internal/storage"

type Repository interface {
	storage.Repository[Payment, string]
}
