// internal/users/handler.go
package users

import (
	"errors"
	"net/http"
	"slices"
	"strings"

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
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
	r.Post("/auth/login", h.handleLogin)
}

type userRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsActive  *bool  `json:"is_active"`
}

func (req userRequest) user(id int64) (*SystemUser, error) {
	switch {
	case strings.TrimSpace(req.Username) == "":
		return nil, httpx.Invalid("username is required")
	case strings.TrimSpace(req.FirstName) == "":
		return nil, httpx.Invalid("first_name is required")
	case !slices.Contains(Roles, req.Role):
		return nil, httpx.Invalid("role must be one of %s", strings.Join(Roles, ", "))
	case req.IsActive == nil:
		return nil, httpx.Invalid("is_active is required")
	}
	return &SystemUser{
		ID:        id,
		Username:  strings.TrimSpace(req.Username),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Role:      req.Role,
		IsActive:  *req.IsActive,
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
	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	u, err := h.repo.Get(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	if req.IsActive == nil {
		active := true
		req.IsActive = &active
	}
	u, err := req.user(0)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if req.Password == "" {
		httpx.WriteError(w, httpx.Invalid("password is required"))
		return
	}

	if err := h.repo.Create(r.Context(), u, req.Password); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

// handleUpdate changes the credential only when a password is supplied.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	var req userRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	u, err := req.user(id)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	if req.Password == "" {
		err = h.repo.UpdateProfile(r.Context(), u)
	} else {
		err = h.repo.UpdateProfileAndPassword(r.Context(), u, req.Password)
	}
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
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

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	u, err := h.repo.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		httpx.WriteStatus(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}
