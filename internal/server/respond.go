package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/aditya10866/personal-pomo/internal/apperr"
	"github.com/aditya10866/personal-pomo/internal/repository"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// respondError maps the error taxonomy onto status codes. Validation
// failures echo their message; storage failures only leak a generic one.
func (s *Server) respondError(w http.ResponseWriter, err error, generic string) {
	var validationErr *apperr.ValidationError
	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": validationErr.Msg})
	case errors.Is(err, repository.ErrNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		s.logger.Error(generic, zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": generic})
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validationf("invalid request body")
	}
	return nil
}
