package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"climatesim"
	"climatesim/internal/service"
)

func testSnapshot() service.StatusSnapshot {
	return service.StatusSnapshot{
		Settings: climatesim.Settings{
			SelectedRoom: climatesim.RoomLivingRoom,
			Location:     "Cebu, PH",
			Mode:         climatesim.ModeCool,
			Fan:          climatesim.FanAuto,
			Unit:         climatesim.UnitCelsius,
			DesiredTempC: 22,
			InsideTempC:  25,
			OutsideTempC: 30.4,
		},
		DisplayInsideTemp:  25,
		DisplayOutsideTemp: 30.4,
		DisplayDesiredTemp: 22,
		Rooms:              map[climatesim.Room]climatesim.RoomState{},
		Locations:          []string{"Cebu, PH"},
	}
}

func TestClimateHandlers_GetState(t *testing.T) {
	mon := &mockMonitoring{snap: testSnapshot()}
	s := &service.Service{Monitoring: mon}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/climate/state", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("state status=%d, body=%s", w.Code, w.Body.String())
	}
	var snap service.StatusSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if snap.Settings.Mode != climatesim.ModeCool || snap.Settings.InsideTempC != 25 {
		t.Fatalf("unexpected state: %+v", snap)
	}
}

func TestClimateHandlers_GetState_InternalError(t *testing.T) {
	mon := &mockMonitoring{snapErr: errors.New("boom")}
	s := &service.Service{Monitoring: mon}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/climate/state", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestClimateHandlers_GetHistory(t *testing.T) {
	mon := &mockMonitoring{samples: []climatesim.Sample{
		{InsideTempC: 25, OutsideTempC: 30.1, TargetTempC: 22},
		{InsideTempC: 24, OutsideTempC: 29.8, TargetTempC: 22},
	}}
	s := &service.Service{Monitoring: mon}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/climate/history?room=bedroom", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("history status=%d, body=%s", w.Code, w.Body.String())
	}
	if mon.lastHistoryRoom != climatesim.RoomBedroom {
		t.Fatalf("expected bedroom, got %q", mon.lastHistoryRoom)
	}
	var resp struct {
		Count   int                 `json:"count"`
		Samples []climatesim.Sample `json:"samples"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}
	if resp.Count != 2 || len(resp.Samples) != 2 {
		t.Fatalf("unexpected history response: %+v", resp)
	}
}

func TestClimateHandlers_GetHistory_UnknownRoom(t *testing.T) {
	mon := &mockMonitoring{histErr: errors.New("unknown room \"attic\"")}
	s := &service.Service{Monitoring: mon}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/climate/history?room=attic", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestClimateHandlers_Controls(t *testing.T) {
	ctrl := &mockControls{}
	mon := &mockMonitoring{snap: testSnapshot()}
	s := &service.Service{Controls: ctrl, Monitoring: mon}
	r := newTestRouter(s)

	put := func(path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	// PUT /room → calls SelectRoom and includes state
	w := put("/api/v1/climate/room", `{"room":"kitchen"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("room status=%d, body=%s", w.Code, w.Body.String())
	}
	if ctrl.selectRoomCalls != 1 || ctrl.lastRoom != climatesim.RoomKitchen {
		t.Fatalf("SelectRoom not called with kitchen: %+v", ctrl)
	}
	var resp struct {
		Status string                 `json:"status"`
		State  service.StatusSnapshot `json:"state"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Status != statusApplied {
		t.Fatalf("expected status %q, got %q", statusApplied, resp.Status)
	}
	if resp.State.Settings.Location != "Cebu, PH" {
		t.Fatalf("state missing/invalid in response: %+v", resp.State)
	}

	// PUT /location
	if w := put("/api/v1/climate/location", `{"location":"Oslo, NO"}`); w.Code != http.StatusOK {
		t.Fatalf("location status=%d, body=%s", w.Code, w.Body.String())
	}
	if ctrl.lastLocation != "Oslo, NO" {
		t.Fatalf("wrong location: %q", ctrl.lastLocation)
	}

	// PUT /mode
	if w := put("/api/v1/climate/mode", `{"mode":"heat"}`); w.Code != http.StatusOK {
		t.Fatalf("mode status=%d, body=%s", w.Code, w.Body.String())
	}
	if ctrl.lastMode != climatesim.ModeHeat {
		t.Fatalf("wrong mode: %q", ctrl.lastMode)
	}

	// PUT /mode with garbage → 400 before the service is reached
	if w := put("/api/v1/climate/mode", `{"mode":"warp"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad mode, got %d", w.Code)
	}

	// PUT /fan
	if w := put("/api/v1/climate/fan", `{"fan":"high"}`); w.Code != http.StatusOK {
		t.Fatalf("fan status=%d, body=%s", w.Code, w.Body.String())
	}
	if ctrl.lastFan != climatesim.FanHigh {
		t.Fatalf("wrong fan: %q", ctrl.lastFan)
	}

	// PUT /unit
	if w := put("/api/v1/climate/unit", `{"unit":"F"}`); w.Code != http.StatusOK {
		t.Fatalf("unit status=%d, body=%s", w.Code, w.Body.String())
	}
	if ctrl.lastUnit != climatesim.UnitFahrenheit {
		t.Fatalf("wrong unit: %q", ctrl.lastUnit)
	}

	// PUT /temperature defaults to Celsius
	if w := put("/api/v1/climate/temperature", `{"value":24}`); w.Code != http.StatusOK {
		t.Fatalf("temperature status=%d, body=%s", w.Code, w.Body.String())
	}
	if ctrl.setTempCalls != 1 || ctrl.lastValue != 24 || ctrl.lastTempUnit != climatesim.UnitCelsius {
		t.Fatalf("wrong temp params: %+v", ctrl)
	}

	// PUT /temperature in Fahrenheit
	if w := put("/api/v1/climate/temperature", `{"value":72,"unit":"F"}`); w.Code != http.StatusOK {
		t.Fatalf("temperature(F) status=%d, body=%s", w.Code, w.Body.String())
	}
	if ctrl.lastValue != 72 || ctrl.lastTempUnit != climatesim.UnitFahrenheit {
		t.Fatalf("wrong temp(F) params: %+v", ctrl)
	}

	// PUT /dark-mode
	if w := put("/api/v1/climate/dark-mode", `{"enabled":true}`); w.Code != http.StatusOK {
		t.Fatalf("dark-mode status=%d, body=%s", w.Code, w.Body.String())
	}
	if !ctrl.lastDark {
		t.Fatal("dark mode not applied")
	}

	// POST /energy/reset
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/climate/energy/reset", bytes.NewBufferString(`{"room":"office"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("reset status=%d, body=%s", w.Code, w.Body.String())
	}
	if ctrl.resetCalls != 1 || ctrl.lastReset != climatesim.RoomOffice {
		t.Fatalf("ResetEnergy not called with office: %+v", ctrl)
	}
}

func TestClimateHandlers_ServiceErrorsBecome400(t *testing.T) {
	ctrl := &mockControls{err: errors.New("unknown room \"garage\"")}
	mon := &mockMonitoring{snap: testSnapshot()}
	s := &service.Service{Controls: ctrl, Monitoring: mon}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/climate/room", bytes.NewBufferString(`{"room":"garage"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestClimateHandlers_MissingBody(t *testing.T) {
	s := &service.Service{Controls: &mockControls{}, Monitoring: &mockMonitoring{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/climate/room", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing body, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
}
