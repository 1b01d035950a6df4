package service

import (
	"context"

	"climatesim/internal/logger"
	"climatesim/internal/repository"
	"climatesim/internal/sim"
)

// BootstrapEngine builds the engine from config, overlaying whatever
// persisted state survives a round trip through the key-value store.
// Missing or malformed entries silently keep the configured defaults; a
// fresh database starts a fresh simulation.
func BootstrapEngine(ctx context.Context, cfg sim.Config, kv repository.KVStore, log *logger.Logger) (*sim.Engine, error) {
	snapshots := repository.NewSnapshotRepo(kv)

	if room, ok := snapshots.LoadSelectedRoom(ctx); ok {
		cfg.Initial.SelectedRoom = room
	}
	if unit, ok := snapshots.LoadTempUnit(ctx); ok {
		cfg.Initial.Unit = unit
	}
	if dark, ok := snapshots.LoadDarkMode(ctx); ok {
		cfg.Initial.DarkMode = dark
	}

	engine, err := sim.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	states, statesOK := snapshots.LoadRoomData(ctx)
	schedules, schedulesOK := snapshots.LoadSchedules(ctx)
	if statesOK || schedulesOK {
		engine.Restore(states, schedules)
	}
	if log != nil {
		log.Infow("engine_restored",
			"room", cfg.Initial.SelectedRoom,
			"unit", cfg.Initial.Unit,
			"room_data", statesOK,
			"schedules", schedulesOK,
		)
	}
	return engine, nil
}
