package checkin

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PawsCheckinService/internal/domain"
	checkinRepo "github.com/m04kA/PawsCheckinService/internal/infra/storage/checkin"
	"github.com/m04kA/PawsCheckinService/pkg/logger"
	"github.com/m04kA/PawsCheckinService/pkg/metrics"
)

func TestSweeper_SweepOnce(t *testing.T) {
	svc, repo := newTestService(t, hotelView())
	start(t, svc, "")
	start(t, svc, "")

	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer("test", reg)
	sweeper := NewSweeper(repo, time.Hour, time.Minute, m, logger.Nop())

	// Сессии созданы в 09:00, проверяем через полчаса и через два часа
	sweeper.timeProvider = &fixedTime{now: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)}
	assert.Equal(t, 0, sweeper.SweepOnce())

	sweeper.timeProvider = &fixedTime{now: time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)}
	assert.Equal(t, 2, sweeper.SweepOnce())
	assert.Equal(t, 0, repo.Len())

	count, err := testutil.GatherAndCount(reg, "checkins_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSweeper_RunStopsOnCancel(t *testing.T) {
	repo := checkinRepo.NewRepository()
	sweeper := NewSweeper(repo, time.Hour, 10*time.Millisecond, (*metrics.Metrics)(nil), logger.Nop())

	require.NoError(t, repo.Create(context.Background(), &domain.CheckinSession{
		State:     domain.StateServiceTypeSelected,
		UpdatedAt: time.Now().Add(-2 * time.Hour),
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return repo.Len() == 0 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
