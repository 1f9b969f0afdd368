// internal/members/handler.go
package members

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

// Register mounts the member routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/members", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

type memberRequest struct {
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	JoiningDate   time.Time `json:"joining_date"`
	Address       string    `json:"address"`
}

func (req memberRequest) member(id string) (*Member, error) {
	switch {
	case strings.TrimSpace(req.FirstName) == "":
		return nil, httpx.Invalid("first_name is required")
	case strings.TrimSpace(req.LastName) == "":
		return nil, httpx.Invalid("last_name is required")
	case strings.TrimSpace(req.ContactNumber) == "":
		return nil, httpx.Invalid("contact_number is required")
	case req.DateOfBirth.IsZero():
		return nil, httpx.Invalid("date_of_birth is required")
	case req.JoiningDate.IsZero():
		return nil, httpx.Invalid("joining_date is required")
	}

	return &Member{
		ID:            id,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Email:         strings.TrimSpace(req.Email),
		DateOfBirth:   req.DateOfBirth,
		JoiningDate:   req.JoiningDate,
		Address:       req.Address,
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

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	m, err := h.repo.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if req.JoiningDate.IsZero() {
		req.JoiningDate = time.Now().UTC().Truncate(24 * time.Hour)
	}
	m, err := req.member("")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	if err := h.repo.Create(r.Context(), m); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	m, err := req.member(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	if err := h.repo.Update(r.Context(), m); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
