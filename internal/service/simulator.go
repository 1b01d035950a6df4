package service

import (
	"context"
	"sync/atomic"
	"time"

	"climatesim/internal/logger"
	"climatesim/internal/metrics"
	"climatesim/internal/repository"
	"climatesim/internal/sim"
)

// SimulatorService drives the periodic tick loop. Ticks are strictly
// sequential: the engine transition runs inline on the ticker goroutine,
// and only the snapshot write is pushed to the background. A slow write
// never delays the next tick, and at most one write is in flight at a
// time (a newer snapshot makes a queued older one pointless anyway).
type SimulatorService struct {
	engine    *sim.Engine
	snapshots *repository.SnapshotRepo
	metrics   *metrics.Metrics
	log       *logger.Logger

	persistInFlight atomic.Bool
}

func NewSimulatorService(engine *sim.Engine, snapshots *repository.SnapshotRepo, m *metrics.Metrics, log *logger.Logger) *SimulatorService {
	return &SimulatorService{engine: engine, snapshots: snapshots, metrics: m, log: log}
}

// Run ticks at the given interval until ctx is canceled. Cancellation
// stops the ticker deterministically; no callbacks outlive this loop.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			res := s.engine.Tick(now.UTC())
			s.observe(res)
			s.persistAsync(ctx)
		}
	}
}

func (s *SimulatorService) observe(res sim.TickResult) {
	if s.metrics == nil {
		return
	}
	room := string(res.Settings.SelectedRoom)
	s.metrics.TicksTotal.Inc()
	s.metrics.InsideTempC.WithLabelValues(room).Set(res.Sample.InsideTempC)
	s.metrics.TargetTempC.WithLabelValues(room).Set(res.Sample.TargetTempC)
	s.metrics.OutsideTempC.Set(res.Sample.OutsideTempC)
	if usage, cost, err := s.engine.Energy(res.Settings.SelectedRoom); err == nil {
		s.metrics.EnergyKWh.WithLabelValues(room).Set(usage)
		s.metrics.CostCurrency.WithLabelValues(room).Set(cost)
	}
}

// persistAsync writes the room snapshot fire-and-forget. Skipped entirely
// while a previous write is still in flight.
func (s *SimulatorService) persistAsync(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	if !s.persistInFlight.CompareAndSwap(false, true) {
		return
	}
	states := s.engine.RoomStates()
	go func() {
		defer s.persistInFlight.Store(false)
		if err := s.snapshots.SaveRoomData(ctx, states); err != nil && s.log != nil {
			s.log.Warnw("persist_failed", "key", "roomData", "err", err)
		}
	}()
}
