package checkin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PawsCheckinService/pkg/metrics"
)

// SessionSweeper хранилище, умеющее удалять простаивающие сессии
type SessionSweeper interface {
	Sweep(now time.Time, ttl time.Duration) []uuid.UUID
}

// Sweeper периодически удаляет сессии, брошенные сотрудниками
type Sweeper struct {
	store        SessionSweeper
	ttl          time.Duration
	interval     time.Duration
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewSweeper создает очистку сессий старше ttl с периодом interval
func NewSweeper(store SessionSweeper, ttl, interval time.Duration, metrics Metrics, logger Logger) *Sweeper {
	return &Sweeper{
		store:        store,
		ttl:          ttl,
		interval:     interval,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Run работает до отмены ctx
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Sweeper: started, ttl=%s, interval=%s", s.ttl, s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sweeper: stopped")
			return
		case <-ticker.C:
			s.SweepOnce()
		}
	}
}

// SweepOnce удаляет истекшие сессии и возвращает их количество
func (s *Sweeper) SweepOnce() int {
	removed := s.store.Sweep(s.timeProvider.Now(), s.ttl)
	for range removed {
		s.metrics.CheckinEvent(metrics.EventCheckinExpired)
	}
	if len(removed) > 0 {
		s.logger.Info("Sweeper: expired %d sessions", len(removed))
	}
	return len(removed)
}
