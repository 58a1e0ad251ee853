package service

import (
	"testing"
	"time"

	"github.com/Harshitk-cp/lineage/internal/domain"
	"go.uber.org/zap"
)

func TestDecayServiceRun(t *testing.T) {
	s := newTestRegistry(t)
	svc := NewDecayService(s, zap.NewNop())

	draws := []domain.PrincipleDraw{
		domain.NewPrincipleDraw("benchmarked", 0.9, domain.EvidenceEmpirical, nil),
	}
	if _, err := s.Register("app.cli", []string{"bootstrap.kernel"}, draws, domain.TierApp); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if changed := svc.Run(30); changed != 1 {
		t.Errorf("Run(30) changed %d, want 1", changed)
	}

	d, _ := s.Get("app.cli")
	if d.Draws[0].Strength >= 0.9 {
		t.Errorf("draw did not decay: %v", d.Draws[0].Strength)
	}
}

func TestDecayServiceRunNonPositiveDays(t *testing.T) {
	s := newTestRegistry(t)
	svc := NewDecayService(s, zap.NewNop())

	if changed := svc.Run(0); changed != 0 {
		t.Errorf("Run(0) changed %d, want 0", changed)
	}
	if changed := svc.Run(-3); changed != 0 {
		t.Errorf("Run(-3) changed %d, want 0", changed)
	}
}

func TestDecayServiceStartStop(t *testing.T) {
	s := newTestRegistry(t)
	svc := NewDecayService(s, zap.NewNop())
	svc.SetInterval(10 * time.Millisecond)

	svc.Start()
	time.Sleep(30 * time.Millisecond)
	svc.Stop()
	// Stop returns only after the worker goroutine exits
}
