package sim

import (
	"sync"

	"climatesim"
)

// ScheduleStore maps, per room, an hour of day (0–23) to a setpoint in
// Celsius. Hours outside [0,23] are a caller bug and are rejected at the
// service boundary, not here.
type ScheduleStore struct {
	mu      sync.RWMutex
	entries map[climatesim.Room]map[int]float64
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{entries: make(map[climatesim.Room]map[int]float64)}
}

// Get returns the scheduled setpoint for the room and hour, if any.
func (s *ScheduleStore) Get(room climatesim.Room, hour int) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[room][hour]
	return v, ok
}

// Set overwrites any existing entry for the hour unconditionally.
func (s *ScheduleStore) Set(room climatesim.Room, hour int, tempC float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hours, ok := s.entries[room]
	if !ok {
		hours = make(map[int]float64)
		s.entries[room] = hours
	}
	hours[hour] = tempC
}

// Remove deletes the entry for the hour. No-op if absent.
func (s *ScheduleStore) Remove(room climatesim.Room, hour int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries[room], hour)
}

// ResolveEffectiveTarget returns the scheduled setpoint for the hour if one
// exists, otherwise the room's manually set desired temperature.
func (s *ScheduleStore) ResolveEffectiveTarget(room climatesim.Room, hour int, manualDesiredTempC float64) float64 {
	if v, ok := s.Get(room, hour); ok {
		return v
	}
	return manualDesiredTempC
}

// Hours returns a copy of the room's hour→setpoint map.
func (s *ScheduleStore) Hours(room climatesim.Room) map[int]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]float64, len(s.entries[room]))
	for h, v := range s.entries[room] {
		out[h] = v
	}
	return out
}

// All returns a copy of every room's schedule, for persistence.
func (s *ScheduleStore) All() map[climatesim.Room]map[int]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[climatesim.Room]map[int]float64, len(s.entries))
	for room, hours := range s.entries {
		cp := make(map[int]float64, len(hours))
		for h, v := range hours {
			cp[h] = v
		}
		out[room] = cp
	}
	return out
}

// Restore replaces the store's contents, used once at startup.
func (s *ScheduleStore) Restore(entries map[climatesim.Room]map[int]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[climatesim.Room]map[int]float64, len(entries))
	for room, hours := range entries {
		cp := make(map[int]float64, len(hours))
		for h, v := range hours {
			cp[h] = v
		}
		s.entries[room] = cp
	}
}
