// internal/workouts/repository.go
package workouts

import "apollotrainer/internal/storage"

type PlanRepository interface {
	storage.Repository[Plan, int64]
}

type AssignmentRepository interface {
	storage.Repository[Assignment, int64]
}
