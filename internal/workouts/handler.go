// internal/workouts/handler.go
package workouts

import (
	"net/http"
	"strings"
	"time"

	"apollotrainer/internal/httpx"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	plans       PlanRepository
	assignments AssignmentRepository
}

func NewHandler(plans PlanRepository, assignments AssignmentRepository) *Handler {
	return &Handler{plans: plans, assignments: assignments}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/workout-plans", func(r chi.Router) {
		r.Get("/", h.handleListPlans)
		r.Post("/", h.handleCreatePlan)
		r.Put("/{id}", h.handleUpdatePlan)
		r.Delete("/{id}", h.handleDeletePlan)
	})
	r.Route("/workout-assignments", func(r chi.Router) {
		r.Get("/", h.handleListAssignments)
		r.Post("/", h.handleCreateAssignment)
		r.Put("/{id}", h.handleUpdateAssignment)
		r.Delete("/{id}", h.handleDeleteAssignment)
	})
}

type planRequest struct {
	Name        string `json:"plan_name"`
	Description string `json:"description"`
}

func (req planRequest) plan(id int64) (*Plan, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, httpx.Invalid("plan_name is required")
	}
	return &Plan{ID: id, Name: strings.TrimSpace(req.Name), Description: req.Description}, nil
}

type assignmentRequest struct {
	MemberID     string    `json:"member_id"`
	PlanID       int64     `json:"plan_id"`
	AssignedDate time.Time `json:"assigned_date"`
}

func (req assignmentRequest) assignment(id int64) (*Assignment, error) {
	switch {
	case strings.TrimSpace(req.MemberID) == "":
		return nil, httpx.Invalid("member_id is required")
	case req.PlanID <= 0:
		return nil, httpx.Invalid("plan_id is required")
	case req.AssignedDate.IsZero():
		return nil, httpx.Invalid("assigned_date is required")
	}
	return &Assignment{ID: id, MemberID: strings.TrimSpace(req.MemberID), PlanID: req.PlanID, AssignedDate: req.AssignedDate}, nil
}

func (h *Handler) handleListPlans(w http.ResponseWriter, r *http.Request) {
	list, err := h.plans.List(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	p, err := req.plan(0)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.plans.Create(r.Context(), p); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	var req planRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	p, err := req.plan(id)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.plans.Update(r.Context(), p); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.plans.Delete(r.Context(), id); err != nil {
		httpx.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	list, err := h.assignments.List(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if req.AssignedDate.IsZero() {
		req.AssignedDate = time.Now().UTC().Truncate(24 * time.Hour)
	}
	a, err := req.assignment(0)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.assignments.Create(r.Context(), a); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) handleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	var req assignmentRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	a, err := req.assignment(id)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.assignments.Update(r.Context(), a); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) handleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.assignments.Delete(r.Context(), id); err != nil {
		httpx.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
