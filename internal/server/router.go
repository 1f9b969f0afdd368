// internal/server/router.go
package server

import (
	"context"
	"net/http"

	"apollotrainer/internal/config"
	"apollotrainer/internal/httpx"
	"apollotrainer/internal/measurements"
	"apollotrainer/internal/members"
	"apollotrainer/internal/memberships"
	"apollotrainer/internal/payments"
	"apollotrainer/internal/reports"
	"apollotrainer/internal/users"
	"apollotrainer/internal/workouts"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Deps is everything the router serves.
type Deps struct {
	Members      members.Repository
	Memberships  memberships.Repository
	Payments     payments.Repository
	Plans        workouts.PlanRepository
	Assignments  workouts.AssignmentRepository
	Measurements measurements.Repository
	Users        users.Repository
	Reports      reports.Service

	// Ping backs /health. Nil reports healthy.
	Ping func(context.Context) error
	// Metrics is mounted at /metrics when non-nil.
	Metrics   http.Handler
	RateLimit config.RateLimitConfig
}

// NewRouter builds the HTTP API. Background work it starts stops with ctx.
func NewRouter(ctx context.Context, d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if d.Ping != nil {
			if err := d.Ping(r.Context()); err != nil {
				httpx.WriteStatus(w, http.StatusServiceUnavailable, "database unreachable")
				return
			}
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Group(func(r chi.Router) {
		if d.RateLimit.RPS > 0 {
			r.Use(NewRateLimiter(ctx, d.RateLimit.RPS, d.RateLimit.Burst).Middleware)
		}

		members.NewHandler(d.Members).Register(r)
		memberships.NewHandler(d.Memberships).Register(r)
		payments.NewHandler(d.Payments).Register(r)
		workouts.NewHandler(d.Plans, d.Assignments).Register(r)
		measurements.NewHandler(d.Measurements).Register(r)
		users.NewHandler(d.Users).Register(r)
		reports.NewHandler(d.Reports).Register(r)
	})

	return r
}
