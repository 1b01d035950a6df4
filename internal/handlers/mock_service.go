package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"climatesim"
	"climatesim/internal/service"
)

// ---- Service Mocks ----

type mockControls struct {
	err error

	lastRoom     climatesim.Room
	lastLocation string
	lastMode     climatesim.SystemMode
	lastFan      climatesim.FanSpeed
	lastUnit     climatesim.TempUnit
	lastValue    float64
	lastTempUnit climatesim.TempUnit
	lastHour     int
	lastTempC    float64
	lastDark     bool
	lastReset    climatesim.Room

	selectRoomCalls  int
	setTempCalls     int
	setScheduleCalls int
	removeCalls      int
	resetCalls       int
}

func (m *mockControls) SelectRoom(ctx context.Context, room climatesim.Room) error {
	m.selectRoomCalls++
	m.lastRoom = room
	return m.err
}
func (m *mockControls) SetLocation(ctx context.Context, name string) error {
	m.lastLocation = name
	return m.err
}
func (m *mockControls) SetMode(ctx context.Context, mode climatesim.SystemMode) error {
	m.lastMode = mode
	return m.err
}
func (m *mockControls) SetFan(ctx context.Context, fan climatesim.FanSpeed) error {
	m.lastFan = fan
	return m.err
}
func (m *mockControls) SetUnit(ctx context.Context, unit climatesim.TempUnit) error {
	m.lastUnit = unit
	return m.err
}
func (m *mockControls) SetDesiredTemp(ctx context.Context, value float64, unit climatesim.TempUnit) error {
	m.setTempCalls++
	m.lastValue = value
	m.lastTempUnit = unit
	return m.err
}
func (m *mockControls) SetScheduleEntry(ctx context.Context, room climatesim.Room, hour int, tempC float64) error {
	m.setScheduleCalls++
	m.lastRoom = room
	m.lastHour = hour
	m.lastTempC = tempC
	return m.err
}
func (m *mockControls) RemoveScheduleEntry(ctx context.Context, room climatesim.Room, hour int) error {
	m.removeCalls++
	m.lastRoom = room
	m.lastHour = hour
	return m.err
}
func (m *mockControls) SetDarkMode(ctx context.Context, on bool) error {
	m.lastDark = on
	return m.err
}
func (m *mockControls) ResetEnergy(ctx context.Context, room climatesim.Room) error {
	m.resetCalls++
	m.lastReset = room
	return m.err
}

type mockMonitoring struct {
	snap     service.StatusSnapshot
	snapErr  error
	samples  []climatesim.Sample
	histErr  error
	schedule map[int]float64
	schedErr error

	lastHistoryRoom  climatesim.Room
	lastScheduleRoom climatesim.Room
}

func (m *mockMonitoring) Snapshot(ctx context.Context) (service.StatusSnapshot, error) {
	return m.snap, m.snapErr
}
func (m *mockMonitoring) History(ctx context.Context, room climatesim.Room) ([]climatesim.Sample, error) {
	m.lastHistoryRoom = room
	return m.samples, m.histErr
}
func (m *mockMonitoring) Schedule(ctx context.Context, room climatesim.Room) (map[int]float64, error) {
	m.lastScheduleRoom = room
	return m.schedule, m.schedErr
}

type mockEventLog struct {
	resp     []climatesim.ClimateEvent
	err      error
	lastFrom string
	lastTo   string
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]climatesim.ClimateEvent, error) {
	if !f.From.IsZero() {
		m.lastFrom = f.From.UTC().Format("2006-01-02 15:04:05")
	}
	if !f.To.IsZero() {
		m.lastTo = f.To.UTC().Format("2006-01-02 15:04:05")
	}
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
