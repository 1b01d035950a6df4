package sim

import (
	"fmt"

	"climatesim"
)

// RoomRegistry owns one ledger and one history buffer per room from the
// fixed room set. Ticks only ever touch the currently selected room;
// switching rooms never back-fills ticks missed while a room was inactive.
type RoomRegistry struct {
	rooms map[climatesim.Room]*roomState
}

type roomState struct {
	history *HistoryBuffer
	ledger  *EnergyLedger
}

func NewRoomRegistry(tariffPerKWh float64) *RoomRegistry {
	r := &RoomRegistry{rooms: make(map[climatesim.Room]*roomState)}
	for _, room := range climatesim.Rooms() {
		r.rooms[room] = &roomState{
			history: NewHistoryBuffer(),
			ledger:  NewEnergyLedger(tariffPerKWh),
		}
	}
	return r
}

func (r *RoomRegistry) state(room climatesim.Room) (*roomState, error) {
	st, ok := r.rooms[room]
	if !ok {
		return nil, fmt.Errorf("unknown room %q", room)
	}
	return st, nil
}

// AppendSample records a tick sample for the room.
func (r *RoomRegistry) AppendSample(room climatesim.Room, s climatesim.Sample) error {
	st, err := r.state(room)
	if err != nil {
		return err
	}
	st.history.Append(s)
	return nil
}

// Accrue adds one tick's energy to the room's ledger.
func (r *RoomRegistry) Accrue(room climatesim.Room, kwh float64) error {
	st, err := r.state(room)
	if err != nil {
		return err
	}
	st.ledger.Accrue(kwh)
	return nil
}

// History returns an ordered copy of the room's samples.
func (r *RoomRegistry) History(room climatesim.Room) ([]climatesim.Sample, error) {
	st, err := r.state(room)
	if err != nil {
		return nil, err
	}
	return st.history.Samples(), nil
}

// Snapshot returns the room's serializable state with cost derived from
// usage.
func (r *RoomRegistry) Snapshot(room climatesim.Room) (climatesim.RoomState, error) {
	st, err := r.state(room)
	if err != nil {
		return climatesim.RoomState{}, err
	}
	return climatesim.RoomState{
		Samples:        st.history.Samples(),
		EnergyUsageKWh: st.ledger.UsageKWh(),
		CostInCurrency: st.ledger.Cost(),
	}, nil
}

// SnapshotAll returns every room's state keyed by room.
func (r *RoomRegistry) SnapshotAll() map[climatesim.Room]climatesim.RoomState {
	out := make(map[climatesim.Room]climatesim.RoomState, len(r.rooms))
	for room, st := range r.rooms {
		out[room] = climatesim.RoomState{
			Samples:        st.history.Samples(),
			EnergyUsageKWh: st.ledger.UsageKWh(),
			CostInCurrency: st.ledger.Cost(),
		}
	}
	return out
}

// ResetEnergy zeroes the room's ledger.
func (r *RoomRegistry) ResetEnergy(room climatesim.Room) error {
	st, err := r.state(room)
	if err != nil {
		return err
	}
	st.ledger.Reset()
	return nil
}

// Restore loads persisted per-room state. Unknown rooms in the snapshot are
// ignored; rooms absent from it keep their zero state.
func (r *RoomRegistry) Restore(states map[climatesim.Room]climatesim.RoomState) {
	for room, persisted := range states {
		st, ok := r.rooms[room]
		if !ok {
			continue
		}
		st.history.Restore(persisted.Samples)
		st.ledger.Restore(persisted.EnergyUsageKWh)
	}
}
