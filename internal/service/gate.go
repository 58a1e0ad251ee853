package service

import (
	"errors"

	"github.com/Harshitk-cp/lineage/internal/domain"
	"go.uber.org/zap"
)

// TrustReport is what consumers compare against their thresholds.
type TrustReport struct {
	Name            string      `json:"name"`
	Known           bool        `json:"known"`
	Tier            domain.Tier `json:"tier,omitempty"`
	TotalConfidence float64     `json:"total_confidence"`
	IsBootstrap     bool        `json:"is_bootstrap"`
	IsIndefeasible  bool        `json:"is_indefeasible"`
}

// TrustGate answers "should this entity's outputs be trusted for an
// operation requiring the given threshold". Unknown names are zero trust,
// never an error.
type TrustGate struct {
	registry *RegistryService
	logger   *zap.Logger
}

func NewTrustGate(registry *RegistryService, logger *zap.Logger) *TrustGate {
	return &TrustGate{registry: registry, logger: logger}
}

func (g *TrustGate) Check(name string, threshold float64) (TrustReport, bool) {
	d, err := g.registry.Get(name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			g.logger.Warn("trust check failed", zap.String("name", name), zap.Error(err))
		}
		return TrustReport{Name: name}, false
	}

	report := TrustReport{
		Name:            name,
		Known:           true,
		Tier:            d.Tier,
		TotalConfidence: d.TotalConfidence(),
		IsBootstrap:     d.IsBootstrap(),
		IsIndefeasible:  d.IsIndefeasible(),
	}
	return report, report.TotalConfidence >= threshold
}
