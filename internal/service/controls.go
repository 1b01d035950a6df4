package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"climatesim"
	"climatesim/internal/logger"
	"climatesim/internal/repository"
	"climatesim/internal/sim"
)

// ControlsService applies user-facing mutations to the engine and persists
// the affected keys afterwards. Persistence failures are logged and never
// surfaced: the simulation keeps running on its in-memory state.
type ControlsService struct {
	engine    *sim.Engine
	snapshots *repository.SnapshotRepo
	events    repository.EventRepo
	log       *logger.Logger
}

func NewControlsService(engine *sim.Engine, snapshots *repository.SnapshotRepo, events repository.EventRepo, log *logger.Logger) *ControlsService {
	return &ControlsService{engine: engine, snapshots: snapshots, events: events, log: log}
}

func (s *ControlsService) SelectRoom(ctx context.Context, room climatesim.Room) error {
	if err := s.engine.SelectRoom(room); err != nil {
		return err
	}
	if err := s.snapshots.SaveSelectedRoom(ctx, room); err != nil {
		s.logPersistFailure("selectedRoom", err)
	}
	s.appendEvent(ctx, climatesim.EventRoomSelect, "Selected room "+string(room), map[string]any{"room": room})
	return nil
}

func (s *ControlsService) SetLocation(ctx context.Context, name string) error {
	if err := s.engine.SetLocation(name); err != nil {
		return err
	}
	s.appendEvent(ctx, climatesim.EventLocationChange, "Location set to "+name, map[string]any{"location": name})
	return nil
}

func (s *ControlsService) SetMode(ctx context.Context, mode climatesim.SystemMode) error {
	if err := s.engine.SetMode(mode); err != nil {
		return err
	}
	s.appendEvent(ctx, climatesim.EventModeChange, "Mode changed to "+string(mode), map[string]any{"mode": mode})
	return nil
}

func (s *ControlsService) SetFan(ctx context.Context, fan climatesim.FanSpeed) error {
	if err := s.engine.SetFan(fan); err != nil {
		return err
	}
	s.appendEvent(ctx, climatesim.EventFanChange, "Fan set to "+string(fan), map[string]any{"fan": fan})
	return nil
}

func (s *ControlsService) SetUnit(ctx context.Context, unit climatesim.TempUnit) error {
	if err := s.engine.SetUnit(unit); err != nil {
		return err
	}
	if err := s.snapshots.SaveTempUnit(ctx, unit); err != nil {
		s.logPersistFailure("tempUnit", err)
	}
	s.appendEvent(ctx, climatesim.EventUnitChange, "Display unit set to "+string(unit), map[string]any{"unit": unit})
	return nil
}

// SetDesiredTemp accepts the value in the caller's unit, validates it
// against the configured bounds and stores the Celsius canonical value.
func (s *ControlsService) SetDesiredTemp(ctx context.Context, value float64, unit climatesim.TempUnit) error {
	tempC := value
	switch unit {
	case climatesim.UnitCelsius, "":
		// already canonical
	case climatesim.UnitFahrenheit:
		tempC = sim.ToCelsius(value)
	default:
		return fmt.Errorf("invalid temperature unit %q", unit)
	}
	if err := s.engine.SetDesiredTemp(tempC); err != nil {
		return err
	}
	s.appendEvent(ctx, climatesim.EventTempChange,
		fmt.Sprintf("Desired temperature set to %.1f°C", tempC),
		map[string]any{"temp_c": tempC})
	return nil
}

func (s *ControlsService) SetScheduleEntry(ctx context.Context, room climatesim.Room, hour int, tempC float64) error {
	if err := s.engine.SetScheduleEntry(room, hour, tempC); err != nil {
		return err
	}
	if err := s.snapshots.SaveSchedules(ctx, s.engine.Schedules()); err != nil {
		s.logPersistFailure("scheduledTemps", err)
	}
	s.appendEvent(ctx, climatesim.EventScheduleSet,
		fmt.Sprintf("Scheduled %.1f°C at %02d:00 for %s", tempC, hour, room),
		map[string]any{"room": room, "hour": hour, "temp_c": tempC})
	return nil
}

func (s *ControlsService) RemoveScheduleEntry(ctx context.Context, room climatesim.Room, hour int) error {
	if err := s.engine.RemoveScheduleEntry(room, hour); err != nil {
		return err
	}
	if err := s.snapshots.SaveSchedules(ctx, s.engine.Schedules()); err != nil {
		s.logPersistFailure("scheduledTemps", err)
	}
	s.appendEvent(ctx, climatesim.EventScheduleRemove,
		fmt.Sprintf("Removed schedule at %02d:00 for %s", hour, room),
		map[string]any{"room": room, "hour": hour})
	return nil
}

func (s *ControlsService) SetDarkMode(ctx context.Context, on bool) error {
	s.engine.SetDarkMode(on)
	if err := s.snapshots.SaveDarkMode(ctx, on); err != nil {
		s.logPersistFailure("darkMode", err)
	}
	s.appendEvent(ctx, climatesim.EventDarkMode, fmt.Sprintf("Dark mode set to %v", on), map[string]any{"on": on})
	return nil
}

func (s *ControlsService) ResetEnergy(ctx context.Context, room climatesim.Room) error {
	if err := s.engine.ResetEnergy(room); err != nil {
		return err
	}
	if err := s.snapshots.SaveRoomData(ctx, s.engine.RoomStates()); err != nil {
		s.logPersistFailure("roomData", err)
	}
	s.appendEvent(ctx, climatesim.EventEnergyReset, "Energy ledger reset for "+string(room), map[string]any{"room": room})
	return nil
}

func (s *ControlsService) appendEvent(ctx context.Context, typ, desc string, meta map[string]any) {
	err := s.events.Append(ctx, climatesim.ClimateEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil && s.log != nil {
		s.log.Warnw("event_append_failed", "type", typ, "err", err)
	}
}

func (s *ControlsService) logPersistFailure(key string, err error) {
	if s.log != nil {
		s.log.Warnw("persist_failed", "key", key, "err", err)
	}
}
