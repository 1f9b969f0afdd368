// internal/measurements/handler.go
package measurements

import (
	"errors"
	"math"
	"net/http"
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
	r.Route("/measurements", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
	r.Route("/calculators", func(r chi.Router) {
		r.Post("/bmi", h.handleBMI)
		r.Post("/bmr", h.handleBMR)
		r.Post("/tdee", h.handleTDEE)
	})
}

type measurementRequest struct {
	MemberID          string  `json:"member_id"`
	Weight            float64 `json:"weight"`
	Height            float64 `json:"height"`
	BMI               float64 `json:"bmi"`
	BodyFatPercentage float64 `json:"body_fat_percentage"`
}

// measurement validates req. A missing BMI is derived from weight and height.
func (req measurementRequest) measurement(id int64) (*Measurement, error) {
	switch {
	case strings.TrimSpace(req.MemberID) == "":
		return nil, httpx.Invalid("member_id is required")
	case req.Weight <= 0 || req.Height <= 0:
		return nil, httpx.Invalid("weight and height must be positive")
	case req.BMI < 0:
		return nil, httpx.Invalid("bmi must not be negative")
	case req.BodyFatPercentage < 0 || req.BodyFatPercentage > 100:
		return nil, httpx.Invalid("body_fat_percentage must be between 0 and 100")
	}

	bmi := req.BMI
	if bmi == 0 {
		v, err := BMI(req.Weight, req.Height/100)
		if err != nil {
			return nil, httpx.Invalid("%v", err)
		}
		bmi = round2(v)
	}

	return &Measurement{
		ID:                id,
		MemberID:          strings.TrimSpace(req.MemberID),
		Weight:            req.Weight,
		Height:            req.Height,
		BMI:               bmi,
		BodyFatPercentage: req.BodyFatPercentage,
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
	var req measurementRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	m, err := req.measurement(0)
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
	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	var req measurementRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	m, err := req.measurement(id)
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

func (h *Handler) handleBMI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeightKg float64 `json:"weight_kg"`
		HeightM  float64 `json:"height_m"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	bmi, err := BMI(req.WeightKg, req.HeightM)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"bmi":      round2(bmi),
		"category": BMICategory(bmi),
	})
}

func (h *Handler) handleBMR(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeightKg float64 `json:"weight_kg"`
		HeightCm float64 `json:"height_cm"`
		Age      int     `json:"age"`
		Sex      Sex     `json:"sex"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	bmr, err := BMR(req.WeightKg, req.HeightCm, req.Age, req.Sex)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]float64{"bmr": round2(bmr)})
}

func (h *Handler) handleTDEE(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BMR   float64       `json:"bmr"`
		Level ActivityLevel `json:"activity_level"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	tdee, err := TDEE(req.BMR, req.Level)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]float64{"tdee": round2(tdee)})
}

func writeCalcError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		httpx.WriteStatus(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.WriteError(w, err)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
