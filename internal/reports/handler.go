// internal/reports/handler.go
package reports

import (
	"net/http"

	"apollotrainer/internal/httpx"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/members", h.handleMembers)
		r.Get("/financial", h.handleFinancial)
		r.Get("/revenue", h.handleRevenue)
		r.Get("/summary", h.handleSummary)
	})
}

func (h *Handler) handleMembers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.MemberReport(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleFinancial(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.FinancialReport(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleRevenue(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalRevenue(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]float64{"total_revenue": total})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sum)
}
