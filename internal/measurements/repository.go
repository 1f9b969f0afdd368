// internal/measurements/repository.go
package measurements

import "apollotrainer/internal/storage"

type Repository interface {
	storage.Repository[Measurement, int64]
}
