// internal/httpx/response.go
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"apollotrainer/internal/storage"
	"apollotrainer/pkg/logger"

	"github.com/go-chi/chi/v5"
)

var ErrBadRequest = errors.New("bad request")

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

// WriteError maps err to a status code and writes it as JSON.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	kind := ""

	switch {
	case errors.Is(err, ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		status, kind = http.StatusNotFound, storage.KindNotFound.String()
	case errors.Is(err, storage.ErrConstraint):
		status, kind = http.StatusConflict, storage.KindConstraint.String()
	case errors.Is(err, storage.ErrUnavailable):
		status, kind = http.StatusServiceUnavailable, storage.KindConnectivity.String()
	}

	WriteJSON(w, status, errorBody{Error: err.Error(), Kind: kind})
}

// WriteStatus writes a bare error message with status.
func WriteStatus(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, errorBody{Error: msg})
}

// Decode reads a JSON body into v. Failures wrap ErrBadRequest.
func Decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

// Invalid returns an ErrBadRequest describing a failed field check.
func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}

// Int64Param parses a numeric URL parameter.
func Int64Param(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, Invalid("invalid %s %q", name, raw)
	}
	return id, nil
}
