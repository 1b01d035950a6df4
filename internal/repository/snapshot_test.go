package repository_test

import (
	"context"
	"testing"
	"time"

	"climatesim"
	"climatesim/internal/repository"
)

// memKV is an in-memory KVStore for snapshot codec tests.
type memKV struct {
	data map[string]string
}

func newMemKV() *memKV { return &memKV{data: make(map[string]string)} }

func (m *memKV) Put(ctx context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func TestSnapshotRepo_RoomDataRoundTrip(t *testing.T) {
	kv := newMemKV()
	repo := repository.NewSnapshotRepo(kv)
	ctx := context.Background()

	in := map[climatesim.Room]climatesim.RoomState{
		climatesim.RoomBedroom: {
			Samples: []climatesim.Sample{{
				Timestamp:    time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
				InsideTempC:  23.5,
				OutsideTempC: 28.1,
				TargetTempC:  22,
			}},
			EnergyUsageKWh: 0.75,
			CostInCurrency: 0.09,
		},
	}
	if err := repo.SaveRoomData(ctx, in); err != nil {
		t.Fatalf("SaveRoomData: %v", err)
	}

	out, ok := repo.LoadRoomData(ctx)
	if !ok {
		t.Fatalf("LoadRoomData reported absent")
	}
	got := out[climatesim.RoomBedroom]
	if got.EnergyUsageKWh != 0.75 || len(got.Samples) != 1 {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if got.Samples[0].InsideTempC != 23.5 {
		t.Fatalf("sample mangled: %+v", got.Samples[0])
	}
}

func TestSnapshotRepo_SchedulesRoundTrip(t *testing.T) {
	kv := newMemKV()
	repo := repository.NewSnapshotRepo(kv)
	ctx := context.Background()

	in := map[climatesim.Room]map[int]float64{
		climatesim.RoomOffice: {8: 21, 18: 19.5},
	}
	if err := repo.SaveSchedules(ctx, in); err != nil {
		t.Fatalf("SaveSchedules: %v", err)
	}
	out, ok := repo.LoadSchedules(ctx)
	if !ok {
		t.Fatalf("LoadSchedules reported absent")
	}
	if out[climatesim.RoomOffice][8] != 21 || out[climatesim.RoomOffice][18] != 19.5 {
		t.Fatalf("schedules mangled: %+v", out)
	}
}

// Malformed persisted values behave exactly like absent ones.
func TestSnapshotRepo_MalformedValuesFallBackSilently(t *testing.T) {
	kv := newMemKV()
	kv.data[repository.KeyRoomData] = "{not json"
	kv.data[repository.KeyScheduledTemps] = "[]"
	kv.data[repository.KeyDarkMode] = "maybe"
	kv.data[repository.KeyTempUnit] = "K"
	kv.data[repository.KeySelectedRoom] = "attic"

	repo := repository.NewSnapshotRepo(kv)
	ctx := context.Background()

	if _, ok := repo.LoadRoomData(ctx); ok {
		t.Errorf("malformed roomData should read as absent")
	}
	if _, ok := repo.LoadSchedules(ctx); ok {
		t.Errorf("malformed scheduledTemps should read as absent")
	}
	if _, ok := repo.LoadDarkMode(ctx); ok {
		t.Errorf("malformed darkMode should read as absent")
	}
	if _, ok := repo.LoadTempUnit(ctx); ok {
		t.Errorf("unknown tempUnit should read as absent")
	}
	if _, ok := repo.LoadSelectedRoom(ctx); ok {
		t.Errorf("unknown selectedRoom should read as absent")
	}
}

func TestSnapshotRepo_ScalarsRoundTrip(t *testing.T) {
	kv := newMemKV()
	repo := repository.NewSnapshotRepo(kv)
	ctx := context.Background()

	if err := repo.SaveDarkMode(ctx, true); err != nil {
		t.Fatalf("SaveDarkMode: %v", err)
	}
	if on, ok := repo.LoadDarkMode(ctx); !ok || !on {
		t.Fatalf("dark mode round trip: (%v, %v)", on, ok)
	}

	if err := repo.SaveTempUnit(ctx, climatesim.UnitFahrenheit); err != nil {
		t.Fatalf("SaveTempUnit: %v", err)
	}
	if u, ok := repo.LoadTempUnit(ctx); !ok || u != climatesim.UnitFahrenheit {
		t.Fatalf("temp unit round trip: (%v, %v)", u, ok)
	}

	if err := repo.SaveSelectedRoom(ctx, climatesim.RoomKitchen); err != nil {
		t.Fatalf("SaveSelectedRoom: %v", err)
	}
	if r, ok := repo.LoadSelectedRoom(ctx); !ok || r != climatesim.RoomKitchen {
		t.Fatalf("selected room round trip: (%v, %v)", r, ok)
	}
}
