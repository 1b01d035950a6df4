package service

import (
	"context"
	"time"

	"climatesim"
	"climatesim/internal/logger"
	"climatesim/internal/metrics"
	"climatesim/internal/repository"
	"climatesim/internal/sim"
)

// Controls exposes the user-facing mutations. Every input is validated
// here (or in the engine) before it can reach the simulation state, and
// every successful mutation is persisted and logged to the activity log.
type Controls interface {
	SelectRoom(ctx context.Context, room climatesim.Room) error
	SetLocation(ctx context.Context, name string) error
	SetMode(ctx context.Context, mode climatesim.SystemMode) error
	SetFan(ctx context.Context, fan climatesim.FanSpeed) error
	SetUnit(ctx context.Context, unit climatesim.TempUnit) error
	SetDesiredTemp(ctx context.Context, value float64, unit climatesim.TempUnit) error
	SetScheduleEntry(ctx context.Context, room climatesim.Room, hour int, tempC float64) error
	RemoveScheduleEntry(ctx context.Context, room climatesim.Room, hour int) error
	SetDarkMode(ctx context.Context, on bool) error
	ResetEnergy(ctx context.Context, room climatesim.Room) error
}

// Monitoring exposes read-only state for the renderer. It never mutates
// the simulation.
type Monitoring interface {
	Snapshot(ctx context.Context) (StatusSnapshot, error)
	History(ctx context.Context, room climatesim.Room) ([]climatesim.Sample, error)
	Schedule(ctx context.Context, room climatesim.Room) (map[int]float64, error)
}

// EventLog exposes the append-only activity log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]climatesim.ClimateEvent, error)
}

// Simulator runs the periodic tick loop. Stop via context cancellation in
// main() for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// StatusSnapshot is what one read of the simulation exposes: the settled
// global settings, display-unit views of the temperatures, and every
// room's accrued state.
type StatusSnapshot struct {
	Settings climatesim.Settings `json:"settings"`

	// Presentation-unit views. Equal to the Celsius values when the
	// display unit is C, converted (whole degrees) when it is F.
	DisplayInsideTemp  float64 `json:"display_inside_temp"`
	DisplayOutsideTemp float64 `json:"display_outside_temp"`
	DisplayDesiredTemp float64 `json:"display_desired_temp"`

	Rooms     map[climatesim.Room]climatesim.RoomState `json:"rooms"`
	Locations []string                                 `json:"locations"`
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", or one of the climatesim.Event* constants
}

// Service aggregates all sub-services.
type Service struct {
	Controls
	Monitoring
	EventLog
	Simulator
}

// NewService wires the engine, repositories and metrics into concrete
// services.
func NewService(engine *sim.Engine, repos *repository.Repository, m *metrics.Metrics, log *logger.Logger) *Service {
	snapshots := repository.NewSnapshotRepo(repos.KV)
	return &Service{
		Controls:   NewControlsService(engine, snapshots, repos.Events, log),
		Monitoring: NewMonitoringService(engine),
		EventLog:   NewEventLogService(repos.Events),
		Simulator:  NewSimulatorService(engine, snapshots, m, log),
	}
}
