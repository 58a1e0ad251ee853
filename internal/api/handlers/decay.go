package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/lineage/internal/service"
)

type DecayHandler struct {
	ledger *service.LedgerService
}

func NewDecayHandler(ledger *service.LedgerService) *DecayHandler {
	return &DecayHandler{ledger: ledger}
}

type triggerDecayRequest struct {
	Days float64 `json:"days"`
}

type triggerDecayResponse struct {
	Days               float64 `json:"days"`
	DerivationsDecayed int     `json:"derivations_decayed"`
}

// TriggerDecay runs one decay cycle for an explicit number of days,
// independent of the background worker's schedule.
func (h *DecayHandler) TriggerDecay(w http.ResponseWriter, r *http.Request) {
	var req triggerDecayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Days <= 0 {
		writeError(w, http.StatusBadRequest, "days must be positive")
		return
	}

	changed, err := h.ledger.RunDecay(r.Context(), req.Days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record decay")
		return
	}

	writeJSON(w, http.StatusOK, triggerDecayResponse{Days: req.Days, DerivationsDecayed: changed})
}
