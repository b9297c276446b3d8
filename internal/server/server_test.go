package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/desktop"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tracker"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()

	a, err := app.New(app.Config{})
	if err != nil {
		t.Fatalf("failed to create app: %v", err)
	}
	a.SetDetector(tracker.NewMockDetector())
	return a
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHealthEndpoint(t *testing.T) {
	srv := New(Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestHealthEndpoint_MethodNotAllowed(t *testing.T) {
	srv := New(Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestDesktopEndpoint(t *testing.T) {
	srv := New(Config{App: newTestApp(t)})

	req := httptest.NewRequest(http.MethodGet, "/api/desktop", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var snap desktop.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if len(snap.Windows) != 3 {
		t.Errorf("snapshot has %d windows, want 3", len(snap.Windows))
	}
	if snap.Width != desktop.DefaultWidth {
		t.Errorf("snapshot width = %d, want %d", snap.Width, desktop.DefaultWidth)
	}
}

func TestDesktopEndpoint_NotRegisteredWithoutApp(t *testing.T) {
	srv := New(Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/desktop", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestDesktopReset(t *testing.T) {
	srv := New(Config{App: newTestApp(t)})

	req := httptest.NewRequest(http.MethodPost, "/api/desktop/reset", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var snap desktop.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snap.ActiveID != "" {
		t.Error("reset desktop should have no active window")
	}
}

func TestDesktopReset_MethodNotAllowed(t *testing.T) {
	srv := New(Config{App: newTestApp(t)})

	req := httptest.NewRequest(http.MethodGet, "/api/desktop/reset", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestTrackingToggle(t *testing.T) {
	a := newTestApp(t)
	srv := New(Config{App: a})

	body := bytes.NewBufferString(`{"enabled": false}`)
	req := httptest.NewRequest(http.MethodPost, "/api/tracking", body)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if a.IsEnabled() {
		t.Error("tracking should be disabled after the POST")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/tracking", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var resp map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["enabled"] {
		t.Error("GET /api/tracking should report disabled")
	}
}

func TestTrackingToggle_InvalidBody(t *testing.T) {
	srv := New(Config{App: newTestApp(t)})

	req := httptest.NewRequest(http.MethodPost, "/api/tracking", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestEventsEndpoint(t *testing.T) {
	s := newTestStore(t)
	srv := New(Config{Store: s})

	for _, kind := range []string{"swipe", "push", "circle"} {
		e := &store.GestureEvent{ID: uuid.New().String(), Kind: kind}
		if err := s.Events().Create(e); err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/events?limit=2", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var events []eventResponse
	if err := json.NewDecoder(rec.Body).Decode(&events); err != nil {
		t.Fatalf("failed to decode events: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestEventsEndpoint_InvalidLimit(t *testing.T) {
	srv := New(Config{Store: newTestStore(t)})

	req := httptest.NewRequest(http.MethodGet, "/api/events?limit=abc", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSettingsEndpoint(t *testing.T) {
	s := newTestStore(t)
	srv := New(Config{Store: s})

	body := bytes.NewBufferString(`{"key": "camera_id", "value": "1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/settings", body)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var settings map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&settings); err != nil {
		t.Fatalf("failed to decode settings: %v", err)
	}
	if settings["camera_id"] != "1" {
		t.Errorf("camera_id = %q, want %q", settings["camera_id"], "1")
	}
}

func TestSettingsEndpoint_MissingKey(t *testing.T) {
	srv := New(Config{Store: newTestStore(t)})

	body := bytes.NewBufferString(`{"value": "1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/settings", body)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
