package service

import (
	"context"

	"climatesim"
	"climatesim/internal/sim"
)

// MonitoringService is the renderer's read-only window into the engine.
type MonitoringService struct {
	engine *sim.Engine
}

func NewMonitoringService(engine *sim.Engine) *MonitoringService {
	return &MonitoringService{engine: engine}
}

// Snapshot returns the current settings plus per-room state, with the
// temperature fields additionally converted to the display unit.
func (s *MonitoringService) Snapshot(ctx context.Context) (StatusSnapshot, error) {
	settings := s.engine.Settings()

	snap := StatusSnapshot{
		Settings:           settings,
		DisplayInsideTemp:  settings.InsideTempC,
		DisplayOutsideTemp: settings.OutsideTempC,
		DisplayDesiredTemp: settings.DesiredTempC,
		Rooms:              s.engine.RoomStates(),
		Locations:          sim.Locations(),
	}
	if settings.Unit == climatesim.UnitFahrenheit {
		snap.DisplayInsideTemp = sim.ToFahrenheit(settings.InsideTempC)
		snap.DisplayOutsideTemp = sim.ToFahrenheit(settings.OutsideTempC)
		snap.DisplayDesiredTemp = sim.ToFahrenheit(settings.DesiredTempC)
	}
	return snap, nil
}

// History returns an ordered copy of the room's chart samples.
func (s *MonitoringService) History(ctx context.Context, room climatesim.Room) ([]climatesim.Sample, error) {
	return s.engine.History(room)
}

// Schedule returns a copy of the room's hour→setpoint map.
func (s *MonitoringService) Schedule(ctx context.Context, room climatesim.Room) (map[int]float64, error) {
	return s.engine.Schedule(room)
}
