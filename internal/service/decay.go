package service

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultDecayInterval = 24 * time.Hour

// DecayService runs periodic decay cycles against the registry. Elapsed
// time between runs is converted to fractional days so a late tick still
// decays by the true wall-clock gap.
type DecayService struct {
	registry *RegistryService
	logger   *zap.Logger

	interval  time.Duration
	lastRunAt time.Time
	mu        sync.Mutex
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

func NewDecayService(registry *RegistryService, logger *zap.Logger) *DecayService {
	return &DecayService{
		registry:  registry,
		logger:    logger,
		interval:  defaultDecayInterval,
		lastRunAt: time.Now().UTC(),
		stopCh:    make(chan struct{}),
	}
}

func (s *DecayService) SetInterval(d time.Duration) {
	s.interval = d
}

func (s *DecayService) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("decay worker started", zap.Duration("interval", s.interval))

		for {
			select {
			case <-ticker.C:
				s.RunElapsed()
			case <-s.stopCh:
				s.logger.Info("decay worker stopped")
				return
			}
		}
	}()
}

func (s *DecayService) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

// RunElapsed decays by the wall-clock days since the previous run.
func (s *DecayService) RunElapsed() int {
	s.mu.Lock()
	now := time.Now().UTC()
	days := now.Sub(s.lastRunAt).Hours() / 24
	s.lastRunAt = now
	s.mu.Unlock()

	return s.Run(days)
}

// Run decays every non-indefeasible derivation by the given days.
func (s *DecayService) Run(days float64) int {
	if days <= 0 {
		return 0
	}
	changed := s.registry.DecayAll(days)
	s.logger.Debug("decay run finished",
		zap.Float64("days", days),
		zap.Int("derivations_decayed", changed))
	return changed
}
