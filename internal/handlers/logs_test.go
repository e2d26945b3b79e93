package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"planetaryhours"
	"planetaryhours/internal/service"
)

func TestGetLogs(t *testing.T) {
	events := []planetaryhours.ComputationEvent{
		{EventID: "a", Type: "HOUR_ROLLOVER", Description: "Planetary hour is now ruled by Venus"},
		{EventID: "b", Type: "LOCATION_SET", Description: "Observer location set"},
	}
	elog := &mockEventLog{resp: events}
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		EventLog:      elog,
	}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/api/v1/logs/?from=2026-08-01&to=2026-08-31&type=HOUR_ROLLOVER", "valid")
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Count  int                               `json:"count"`
		Events []planetaryhours.ComputationEvent `json:"events"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal logs: %v", err)
	}
	if resp.Count != 2 || len(resp.Events) != 2 {
		t.Fatalf("bad response: %+v", resp)
	}

	if elog.lastType != "HOUR_ROLLOVER" {
		t.Fatalf("type filter = %q", elog.lastType)
	}
	wantFrom := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if !elog.lastFrom.Equal(wantFrom) {
		t.Fatalf("from = %v, want %v", elog.lastFrom, wantFrom)
	}
	// Date-only 'to' extends to the end of that day.
	if elog.lastTo.Day() != 31 || elog.lastTo.Hour() != 23 {
		t.Fatalf("to = %v, want end of Aug 31", elog.lastTo)
	}
}

func TestGetLogs_BadTimes(t *testing.T) {
	s := &service.Service{
		Authorization: &mockAuth{parseID: 7},
		EventLog:      &mockEventLog{},
	}
	r := newTestRouter(s)

	for _, target := range []string{
		"/api/v1/logs/?from=yesterday",
		"/api/v1/logs/?to=tomorrow",
		"/api/v1/logs/?from=2026-08-31&to=2026-08-01",
	} {
		w := doRequest(r, http.MethodGet, target, "valid")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, w.Code)
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
		{"not-a-time", time.Time{}, false},
	}
	for _, tc := range cases {
		got, err := parseQueryTime(tc.in)
		if tc.ok != (err == nil) {
			t.Fatalf("%q: err=%v", tc.in, err)
		}
		if tc.ok && !got.Equal(tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
}
