package climatesim

import (
	"fmt"
	"time"
)

// Room identifies one of the fixed set of tracked rooms.
type Room string

const (
	RoomLivingRoom Room = "living-room"
	RoomBedroom    Room = "bedroom"
	RoomKitchen    Room = "kitchen"
	RoomOffice     Room = "office"
)

// Rooms is the fixed room set, in display order.
func Rooms() []Room {
	return []Room{RoomLivingRoom, RoomBedroom, RoomKitchen, RoomOffice}
}

func (r Room) Valid() bool {
	switch r {
	case RoomLivingRoom, RoomBedroom, RoomKitchen, RoomOffice:
		return true
	}
	return false
}

// SystemMode is the global operating mode. It applies to whichever room is
// currently selected, not per room.
type SystemMode string

const (
	ModeOff  SystemMode = "off"
	ModeCool SystemMode = "cool"
	ModeHeat SystemMode = "heat"
)

func (m SystemMode) Valid() bool {
	return m == ModeOff || m == ModeCool || m == ModeHeat
}

func ParseSystemMode(s string) (SystemMode, error) {
	m := SystemMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("invalid mode %q: must be off, cool, or heat", s)
	}
	return m, nil
}

// FanSpeed is the fan setting. It has no effect on the thermal model.
type FanSpeed string

const (
	FanAuto   FanSpeed = "auto"
	FanLow    FanSpeed = "low"
	FanMedium FanSpeed = "medium"
	FanHigh   FanSpeed = "high"
)

func (f FanSpeed) Valid() bool {
	switch f {
	case FanAuto, FanLow, FanMedium, FanHigh:
		return true
	}
	return false
}

func ParseFanSpeed(s string) (FanSpeed, error) {
	f := FanSpeed(s)
	if !f.Valid() {
		return "", fmt.Errorf("invalid fan speed %q: must be auto, low, medium, or high", s)
	}
	return f, nil
}

// TempUnit is the display unit. Storage is always Celsius; the unit only
// affects the presentation boundary.
type TempUnit string

const (
	UnitCelsius    TempUnit = "C"
	UnitFahrenheit TempUnit = "F"
)

func (u TempUnit) Valid() bool {
	return u == UnitCelsius || u == UnitFahrenheit
}

func ParseTempUnit(s string) (TempUnit, error) {
	u := TempUnit(s)
	if !u.Valid() {
		return "", fmt.Errorf("invalid temperature unit %q: must be C or F", s)
	}
	return u, nil
}

// Sample is one charted data point. Immutable once appended to a room's
// history.
type Sample struct {
	Timestamp    time.Time `json:"timestamp"`
	InsideTempC  float64   `json:"inside_temp_c"`
	OutsideTempC float64   `json:"outside_temp_c"`
	TargetTempC  float64   `json:"target_temp_c"`
}

// RoomState is the serializable per-room snapshot: the rolling sample
// history plus accrued energy. CostInCurrency is always derived from
// EnergyUsageKWh at read time, never stored on its own.
type RoomState struct {
	Samples        []Sample `json:"samples"`
	EnergyUsageKWh float64  `json:"energy_usage_kwh"`
	CostInCurrency float64  `json:"cost_in_currency"`
}

// Settings is the global simulation state: selected room, mode, fan, unit,
// manual desired temperature, and the current readings for the active room.
// Temperatures are Celsius throughout.
type Settings struct {
	SelectedRoom Room       `json:"selected_room"`
	Location     string     `json:"location"`
	Mode         SystemMode `json:"mode"`
	Fan          FanSpeed   `json:"fan"`
	Unit         TempUnit   `json:"unit"`
	DesiredTempC float64    `json:"desired_temp_c"`
	InsideTempC  float64    `json:"inside_temp_c"`
	OutsideTempC float64    `json:"outside_temp_c"`
	DarkMode     bool       `json:"dark_mode"`
}

// ClimateEvent is a single activity-log entry for a user-facing control
// action.
type ClimateEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // ROOM_SELECT | MODE_CHANGE | ...
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}

// Event types recorded by the controls service.
const (
	EventRoomSelect     = "ROOM_SELECT"
	EventLocationChange = "LOCATION_CHANGE"
	EventModeChange     = "MODE_CHANGE"
	EventFanChange      = "FAN_CHANGE"
	EventUnitChange     = "UNIT_CHANGE"
	EventTempChange     = "TEMP_CHANGE"
	EventScheduleSet    = "SCHEDULE_SET"
	EventScheduleRemove = "SCHEDULE_REMOVE"
	EventDarkMode       = "DARK_MODE"
	EventEnergyReset    = "ENERGY_RESET"
)
