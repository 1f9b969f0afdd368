// internal/memberships/handler.go
package memberships

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"apollotrainer/internal/httpx"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/memberships", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

type membershipRequest struct {
	MemberID       string    `json:"member_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	MembershipType string    `json:"membership_type"`
	PaymentAmount  *float64  `json:"payment_amount"`
	PaymentDate    time.Time `json:"payment_date"`
	PaymentStatus  string    `json:"payment_status"`
}

func (req membershipRequest) membership(id int64) (*Membership, error) {
	switch {
	case strings.TrimSpace(req.MemberID) == "":
		return nil, httpx.Invalid("member_id is required")
	case !slices.Contains(PlanTypes, req.MembershipType):
		return nil, httpx.Invalid("membership_type must be one of %s", strings.Join(PlanTypes, ", "))
	case req.StartDate.IsZero() || req.EndDate.IsZero():
		return nil, httpx.Invalid("start_date and end_date are required")
	case req.EndDate.Before(req.StartDate):
		return nil, httpx.Invalid("end_date is before start_date")
	case req.PaymentDate.IsZero():
		return nil, httpx.Invalid("payment_date is required")
	case !slices.Contains(Statuses, req.PaymentStatus):
		return nil, httpx.Invalid("payment_status must be one of %s", strings.Join(Statuses, ", "))
	case req.PaymentAmount != nil && *req.PaymentAmount <= 0:
		return nil, httpx.Invalid("payment_amount must be greater than zero")
	}

	return &Membership{
		ID:             id,
		MemberID:       strings.TrimSpace(req.MemberID),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		MembershipType: req.MembershipType,
		PaymentAmount:  req.PaymentAmount,
		PaymentDate:    req.PaymentDate,
		PaymentStatus:  req.PaymentStatus,
	}, nil
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req membershipRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	ms, err := req.membership(0)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	if err := h.repo.Create(r.Context(), ms); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, ms)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	var req membershipRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	ms, err := req.membership(id)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	if err := h.repo.Update(r.Context(), ms); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ms)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		httpx.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
