package handlers

import (
	"net/http"
	"strconv"

	"github.com/Harshitk-cp/lineage/internal/service"
	"github.com/go-chi/chi/v5"
)

type TrustHandler struct {
	gate             *service.TrustGate
	defaultThreshold float64
}

func NewTrustHandler(gate *service.TrustGate, defaultThreshold float64) *TrustHandler {
	return &TrustHandler{gate: gate, defaultThreshold: defaultThreshold}
}

type trustCheckResponse struct {
	service.TrustReport
	Threshold float64 `json:"threshold"`
	Allowed   bool    `json:"allowed"`
}

// Check evaluates an entity against a caller-supplied threshold. Unknown
// entities are zero trust, not 404: the answer to "should I trust this"
// is always well-defined.
func (h *TrustHandler) Check(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	threshold := h.defaultThreshold
	if s := r.URL.Query().Get("threshold"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 || v > 1 {
			writeError(w, http.StatusBadRequest, "threshold must be a number in [0,1]")
			return
		}
		threshold = v
	}

	report, allowed := h.gate.Check(name, threshold)
	writeJSON(w, http.StatusOK, trustCheckResponse{
		TrustReport: report,
		Threshold:   threshold,
		Allowed:     allowed,
	})
}
