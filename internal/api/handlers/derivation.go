package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Harshitk-cp/lineage/internal/domain"
	"github.com/Harshitk-cp/lineage/internal/service"
	"github.com/go-chi/chi/v5"
)

type DerivationHandler struct {
	ledger   *service.LedgerService
	registry *service.RegistryService
}

func NewDerivationHandler(ledger *service.LedgerService, registry *service.RegistryService) *DerivationHandler {
	return &DerivationHandler{ledger: ledger, registry: registry}
}

type drawRequest struct {
	Principle    string   `json:"principle"`
	Strength     float64  `json:"strength"`
	EvidenceType string   `json:"evidence_type"`
	Sources      []string `json:"sources,omitempty"`
}

type registerRequest struct {
	Name        string        `json:"name"`
	Tier        string        `json:"tier"`
	DerivesFrom []string      `json:"derives_from"`
	Draws       []drawRequest `json:"draws,omitempty"`
}

type derivationResponse struct {
	domain.Derivation
	TotalConfidence float64 `json:"total_confidence"`
	UsageCount      int     `json:"usage_count"`
}

func (h *DerivationHandler) respond(d domain.Derivation) derivationResponse {
	return derivationResponse{
		Derivation:      d,
		TotalConfidence: d.TotalConfidence(),
		UsageCount:      h.registry.UsageCount(d.Name),
	}
}

func (h *DerivationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !domain.ValidTier(req.Tier) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid tier %q", req.Tier))
		return
	}
	if len(req.DerivesFrom) == 0 {
		writeError(w, http.StatusBadRequest, "derives_from is required")
		return
	}

	draws := make([]domain.PrincipleDraw, 0, len(req.Draws))
	for _, dr := range req.Draws {
		if dr.Principle == "" {
			writeError(w, http.StatusBadRequest, "draw principle is required")
			return
		}
		if !domain.ValidEvidenceType(dr.EvidenceType) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid evidence type %q", dr.EvidenceType))
			return
		}
		draws = append(draws, domain.NewPrincipleDraw(dr.Principle, dr.Strength, domain.EvidenceType(dr.EvidenceType), dr.Sources))
	}

	d, err := h.ledger.Register(r.Context(), req.Name, req.DerivesFrom, draws, domain.Tier(req.Tier))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.respond(d))
}

func (h *DerivationHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	d, err := h.registry.Get(name)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.respond(d))
}

type listResponse struct {
	Derivations []derivationResponse `json:"derivations"`
	Count       int                  `json:"count"`
}

func (h *DerivationHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.registry.List()

	out := make([]derivationResponse, 0, len(all))
	for _, d := range all {
		out = append(out, h.respond(d))
	}

	writeJSON(w, http.StatusOK, listResponse{Derivations: out, Count: len(out)})
}

type lineageResponse struct {
	Name  string   `json:"name"`
	Names []string `json:"names"`
	Count int      `json:"count"`
}

func (h *DerivationHandler) Ancestors(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	names := h.registry.Ancestors(name)
	writeJSON(w, http.StatusOK, lineageResponse{Name: name, Names: names, Count: len(names)})
}

func (h *DerivationHandler) Dependents(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	names := h.registry.Dependents(name)
	writeJSON(w, http.StatusOK, lineageResponse{Name: name, Names: names, Count: len(names)})
}
