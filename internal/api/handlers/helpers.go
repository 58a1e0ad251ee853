package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Harshitk-cp/lineage/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps registry errors onto HTTP statuses. Unrecognized
// errors are treated as internal.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateName):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrCycle),
		errors.Is(err, domain.ErrIndefeasible):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnknownParent),
		errors.Is(err, domain.ErrMonotonicity):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
