// internal/payments/handler.go
package payments

import (
	"net/http"
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
	r.Route("/payments", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

type paymentRequest struct {
	MemberID         string    `json:"member_id"`
	MembershipTypeID string    `json:"membership_type_id"`
	PaymentDate      time.Time `json:"payment_date"`
	AmountPaid       float64   `json:"amount_paid"`
	PaymentMethod    string    `json:"payment_method"`
}

func (req paymentRequest) payment(id string) (*Payment, error) {
	switch {
	case strings.TrimSpace(req.MemberID) == "":
		return nil, httpx.Invalid("member_id is required")
	case strings.TrimSpace(req.MembershipTypeID) == "":
		return nil, httpx.Invalid("membership_type_id is required")
	case req.AmountPaid <= 0:
		return nil, httpx.Invalid("amount_paid must be greater than zero")
	case strings.TrimSpace(req.PaymentMethod) == "":
		return nil, httpx.Invalid("payment_method is required")
	case req.PaymentDate.IsZero():
		return nil, httpx.Invalid("payment_date is required")
	}
	return &Payment{
		ID:               id,
		MemberID:         strings.TrimSpace(req.MemberID),
		MembershipTypeID: strings.TrimSpace(req.MembershipTypeID),
		PaymentDate:      req.PaymentDate,
		AmountPaid:       req.AmountPaid,
		PaymentMethod:    strings.TrimSpace(req.PaymentMethod),
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
	var req paymentRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if req.PaymentDate.IsZero() {
		req.PaymentDate = time.Now().UTC().Truncate(24 * time.Hour)
	}
	p, err := req.payment("")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	if err := h.repo.Create(r.Context(), p); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	p, err := req.payment(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	if err := h.repo.Update(r.Context(), p); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
