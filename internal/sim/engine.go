package sim

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"climatesim"
)

// Manual desired-temperature bounds, Celsius (60–86 °F).
const (
	DesiredMinC = 16.0
	DesiredMaxC = 30.0
)

// Config carries the fixed simulation parameters.
type Config struct {
	TickInterval time.Duration // authoritative; the energy divisor derives from it
	WattageW     float64       // draw while mode != off
	TariffPerKWh float64
	Rand         RandSource // nil for a time-seeded source
	Initial      climatesim.Settings
}

// TickResult is what one tick exposes to observers: the sample appended to
// the active room plus the settled settings.
type TickResult struct {
	Sample   climatesim.Sample
	Settings climatesim.Settings
}

// Engine is the simulation state machine. One mutex makes every tick atomic
// with respect to readers: observers see pre- or post-tick state, never a
// partial update.
type Engine struct {
	mu       sync.RWMutex
	settings climatesim.Settings
	envelope Envelope

	schedule *ScheduleStore
	thermal  *ThermalModel
	registry *RoomRegistry

	kwhPerTick float64
}

// NewEngine builds an engine from config. The per-tick energy increment is
// (wattage/1000)/ticksPerHour with ticksPerHour derived from the configured
// interval, so accrual over one simulated hour is exactly wattage/1000
// regardless of the interval chosen.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive, got %v", cfg.TickInterval)
	}
	if !cfg.Initial.SelectedRoom.Valid() {
		return nil, fmt.Errorf("invalid initial room %q", cfg.Initial.SelectedRoom)
	}
	env, err := LookupEnvelope(cfg.Initial.Location)
	if err != nil {
		return nil, err
	}
	rnd := cfg.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	ticksPerHour := float64(time.Hour) / float64(cfg.TickInterval)
	return &Engine{
		settings:   cfg.Initial,
		envelope:   env,
		schedule:   NewScheduleStore(),
		thermal:    NewThermalModel(rnd),
		registry:   NewRoomRegistry(cfg.TariffPerKWh),
		kwhPerTick: cfg.WattageW / 1000 / ticksPerHour,
	}, nil
}

// Tick advances the simulation one step: resolve the effective target for
// the current hour, converge the indoor temperature, redraw the outdoor
// temperature, accrue energy when running, and append the sample to the
// active room's history.
func (e *Engine) Tick(now time.Time) TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	room := e.settings.SelectedRoom
	target := e.schedule.ResolveEffectiveTarget(room, now.Hour(), e.settings.DesiredTempC)

	e.settings.InsideTempC = e.thermal.NextIndoor(e.settings.InsideTempC, target, e.settings.Mode)
	e.settings.OutsideTempC = e.thermal.DrawOutdoor(e.envelope)

	if e.settings.Mode != climatesim.ModeOff {
		_ = e.registry.Accrue(room, e.kwhPerTick)
	}

	sample := climatesim.Sample{
		Timestamp:    now,
		InsideTempC:  e.settings.InsideTempC,
		OutsideTempC: e.settings.OutsideTempC,
		TargetTempC:  target,
	}
	_ = e.registry.AppendSample(room, sample)

	return TickResult{Sample: sample, Settings: e.settings}
}

// Settings returns the current global simulation state.
func (e *Engine) Settings() climatesim.Settings {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.settings
}

// SelectRoom switches which room subsequent ticks update.
func (e *Engine) SelectRoom(room climatesim.Room) error {
	if !room.Valid() {
		return fmt.Errorf("unknown room %q", room)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.SelectedRoom = room
	return nil
}

// SetLocation switches the climate envelope for outdoor draws.
func (e *Engine) SetLocation(name string) error {
	env, err := LookupEnvelope(name)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.Location = name
	e.envelope = env
	return nil
}

// SetMode changes the global operating mode.
func (e *Engine) SetMode(mode climatesim.SystemMode) error {
	if !mode.Valid() {
		return fmt.Errorf("invalid mode %q", mode)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.Mode = mode
	return nil
}

// SetFan changes the fan setting. Presentation only; the thermal model
// ignores it.
func (e *Engine) SetFan(fan climatesim.FanSpeed) error {
	if !fan.Valid() {
		return fmt.Errorf("invalid fan speed %q", fan)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.Fan = fan
	return nil
}

// SetUnit changes the display unit. Canonical storage stays Celsius.
func (e *Engine) SetUnit(unit climatesim.TempUnit) error {
	if !unit.Valid() {
		return fmt.Errorf("invalid unit %q", unit)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.Unit = unit
	return nil
}

// SetDesiredTemp sets the manual desired temperature in Celsius. The value
// must already be validated against [DesiredMinC, DesiredMaxC].
func (e *Engine) SetDesiredTemp(tempC float64) error {
	if tempC < DesiredMinC || tempC > DesiredMaxC {
		return fmt.Errorf("desired temperature %.1f°C outside [%.0f, %.0f]", tempC, DesiredMinC, DesiredMaxC)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.DesiredTempC = tempC
	return nil
}

// SetDarkMode flips the presentation flag. No simulation effect.
func (e *Engine) SetDarkMode(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.DarkMode = on
}

// SetScheduleEntry stores an hour→setpoint pair for the room, overwriting
// unconditionally. Hour and temperature are validated here as the last
// line before the store.
func (e *Engine) SetScheduleEntry(room climatesim.Room, hour int, tempC float64) error {
	if !room.Valid() {
		return fmt.Errorf("unknown room %q", room)
	}
	if hour < 0 || hour > 23 {
		return fmt.Errorf("hour %d outside [0, 23]", hour)
	}
	if tempC < DesiredMinC || tempC > DesiredMaxC {
		return fmt.Errorf("scheduled temperature %.1f°C outside [%.0f, %.0f]", tempC, DesiredMinC, DesiredMaxC)
	}
	e.schedule.Set(room, hour, tempC)
	return nil
}

// RemoveScheduleEntry drops the room's entry for the hour, if any.
func (e *Engine) RemoveScheduleEntry(room climatesim.Room, hour int) error {
	if !room.Valid() {
		return fmt.Errorf("unknown room %q", room)
	}
	if hour < 0 || hour > 23 {
		return fmt.Errorf("hour %d outside [0, 23]", hour)
	}
	e.schedule.Remove(room, hour)
	return nil
}

// Schedule returns a copy of the room's hour→setpoint map.
func (e *Engine) Schedule(room climatesim.Room) (map[int]float64, error) {
	if !room.Valid() {
		return nil, fmt.Errorf("unknown room %q", room)
	}
	return e.schedule.Hours(room), nil
}

// Schedules returns every room's schedule, for persistence.
func (e *Engine) Schedules() map[climatesim.Room]map[int]float64 {
	return e.schedule.All()
}

// History returns an ordered copy of the room's samples.
func (e *Engine) History(room climatesim.Room) ([]climatesim.Sample, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.History(room)
}

// RoomStates returns every room's serializable state.
func (e *Engine) RoomStates() map[climatesim.Room]climatesim.RoomState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.SnapshotAll()
}

// Energy returns one room's accrued usage and derived cost.
func (e *Engine) Energy(room climatesim.Room) (usageKWh, cost float64, err error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	st, err := e.registry.Snapshot(room)
	if err != nil {
		return 0, 0, err
	}
	return st.EnergyUsageKWh, st.CostInCurrency, nil
}

// ResetEnergy zeroes one room's ledger.
func (e *Engine) ResetEnergy(room climatesim.Room) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.ResetEnergy(room)
}

// Restore loads persisted room state and schedules, used once at startup.
func (e *Engine) Restore(states map[climatesim.Room]climatesim.RoomState, schedules map[climatesim.Room]map[int]float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if states != nil {
		e.registry.Restore(states)
	}
	if schedules != nil {
		e.schedule.Restore(schedules)
	}
}
