package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/lineage/internal/service"
	"github.com/go-chi/chi/v5"
)

type EvidenceHandler struct {
	ledger   *service.LedgerService
	registry *service.RegistryService
}

func NewEvidenceHandler(ledger *service.LedgerService, registry *service.RegistryService) *EvidenceHandler {
	return &EvidenceHandler{ledger: ledger, registry: registry}
}

type updateEvidenceRequest struct {
	AshcScore  *float64 `json:"ashc_score,omitempty"`
	UsageCount *int     `json:"usage_count,omitempty"`
}

func (h *EvidenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req updateEvidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.AshcScore == nil && req.UsageCount == nil {
		writeError(w, http.StatusBadRequest, "ashc_score or usage_count is required")
		return
	}
	if req.AshcScore != nil && (*req.AshcScore < 0 || *req.AshcScore > 1) {
		writeError(w, http.StatusBadRequest, "ashc_score must be in [0,1]")
		return
	}
	if req.UsageCount != nil && *req.UsageCount < 0 {
		writeError(w, http.StatusBadRequest, "usage_count must be non-negative")
		return
	}

	d, err := h.ledger.UpdateEvidence(r.Context(), name, req.AshcScore, req.UsageCount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, derivationResponse{
		Derivation:      d,
		TotalConfidence: d.TotalConfidence(),
		UsageCount:      h.registry.UsageCount(name),
	})
}

type incrementUsageResponse struct {
	Name            string  `json:"name"`
	UsageCount      int     `json:"usage_count"`
	TotalConfidence float64 `json:"total_confidence"`
}

func (h *EvidenceHandler) IncrementUsage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	count, err := h.ledger.IncrementUsage(r.Context(), name)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	d, err := h.registry.Get(name)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, incrementUsageResponse{
		Name:            name,
		UsageCount:      count,
		TotalConfidence: d.TotalConfidence(),
	})
}
