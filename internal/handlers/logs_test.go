package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"climatesim"
	"climatesim/internal/service"
)

func TestGetLogs_FiltersForwarded(t *testing.T) {
	ev := &mockEventLog{resp: []climatesim.ClimateEvent{
		{EventID: "a", Type: climatesim.EventModeChange, Description: "mode set to cool"},
	}}
	s := &service.Service{EventLog: ev}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/logs/?from=2026-08-01&to=2026-08-02&type=mode_change", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if ev.lastType != climatesim.EventModeChange {
		t.Fatalf("type not normalized: %q", ev.lastType)
	}
	if ev.lastFrom != "2026-08-01 00:00:00" {
		t.Fatalf("wrong from: %q", ev.lastFrom)
	}
	// Date-only 'to' becomes end of day.
	if ev.lastTo != "2026-08-02 23:59:59" {
		t.Fatalf("wrong to: %q", ev.lastTo)
	}

	var resp struct {
		Count  int                       `json:"count"`
		Events []climatesim.ClimateEvent `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 1 || resp.Events[0].EventID != "a" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetLogs_BadTimes(t *testing.T) {
	s := &service.Service{EventLog: &mockEventLog{}}
	r := newTestRouter(s)

	for _, u := range []string{
		"/api/v1/logs/?from=yesterday",
		"/api/v1/logs/?to=later",
		"/api/v1/logs/?from=2026-08-02&to=2026-08-01",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, u, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", u, w.Code)
		}
	}
}

func TestParseQueryTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2026-08-27T15:04:05Z", time.Date(2026, 8, 27, 15, 4, 5, 0, time.UTC), true},
		{"2026-08-27 15:04:05", time.Date(2026, 8, 27, 15, 4, 5, 0, time.UTC), true},
		{"2026-08-27", time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), true},
		{"27/08/2026", time.Time{}, false},
	}
	for _, tc := range cases {
		got, err := parseQueryTime(tc.in)
		if tc.ok && (err != nil || !got.Equal(tc.want)) {
			t.Fatalf("parseQueryTime(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("parseQueryTime(%q) expected error", tc.in)
		}
	}
}

func TestIsDateOnly(t *testing.T) {
	if !isDateOnly("2026-08-27") {
		t.Fatal("date-only misclassified")
	}
	if isDateOnly("2026-08-27T10:00:00Z") || isDateOnly("2026-08-27 10:00:00") {
		t.Fatal("datetime misclassified as date-only")
	}
}
