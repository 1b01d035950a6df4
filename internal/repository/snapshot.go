package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"climatesim"
)

// SnapshotRepo serializes the simulation snapshot onto the key-value store.
// Loads treat malformed values the same as absent ones: callers fall back
// to defaults and no error reaches the user.
type SnapshotRepo struct {
	kv KVStore
}

func NewSnapshotRepo(kv KVStore) *SnapshotRepo {
	return &SnapshotRepo{kv: kv}
}

func (r *SnapshotRepo) SaveRoomData(ctx context.Context, states map[climatesim.Room]climatesim.RoomState) error {
	b, err := json.Marshal(states)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, KeyRoomData, string(b))
}

func (r *SnapshotRepo) LoadRoomData(ctx context.Context) (map[climatesim.Room]climatesim.RoomState, bool) {
	raw, ok, err := r.kv.Get(ctx, KeyRoomData)
	if err != nil || !ok {
		return nil, false
	}
	var states map[climatesim.Room]climatesim.RoomState
	if err := json.Unmarshal([]byte(raw), &states); err != nil {
		return nil, false
	}
	return states, true
}

func (r *SnapshotRepo) SaveSchedules(ctx context.Context, schedules map[climatesim.Room]map[int]float64) error {
	b, err := json.Marshal(schedules)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, KeyScheduledTemps, string(b))
}

func (r *SnapshotRepo) LoadSchedules(ctx context.Context) (map[climatesim.Room]map[int]float64, bool) {
	raw, ok, err := r.kv.Get(ctx, KeyScheduledTemps)
	if err != nil || !ok {
		return nil, false
	}
	var schedules map[climatesim.Room]map[int]float64
	if err := json.Unmarshal([]byte(raw), &schedules); err != nil {
		return nil, false
	}
	return schedules, true
}

func (r *SnapshotRepo) SaveDarkMode(ctx context.Context, on bool) error {
	return r.kv.Put(ctx, KeyDarkMode, strconv.FormatBool(on))
}

func (r *SnapshotRepo) LoadDarkMode(ctx context.Context) (bool, bool) {
	raw, ok, err := r.kv.Get(ctx, KeyDarkMode)
	if err != nil || !ok {
		return false, false
	}
	on, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return on, true
}

func (r *SnapshotRepo) SaveTempUnit(ctx context.Context, unit climatesim.TempUnit) error {
	return r.kv.Put(ctx, KeyTempUnit, string(unit))
}

func (r *SnapshotRepo) LoadTempUnit(ctx context.Context) (climatesim.TempUnit, bool) {
	raw, ok, err := r.kv.Get(ctx, KeyTempUnit)
	if err != nil || !ok {
		return "", false
	}
	unit := climatesim.TempUnit(raw)
	if !unit.Valid() {
		return "", false
	}
	return unit, true
}

func (r *SnapshotRepo) SaveSelectedRoom(ctx context.Context, room climatesim.Room) error {
	return r.kv.Put(ctx, KeySelectedRoom, string(room))
}

func (r *SnapshotRepo) LoadSelectedRoom(ctx context.Context) (climatesim.Room, bool) {
	raw, ok, err := r.kv.Get(ctx, KeySelectedRoom)
	if err != nil || !ok {
		return "", false
	}
	room := climatesim.Room(raw)
	if !room.Valid() {
		return "", false
	}
	return room, true
}
