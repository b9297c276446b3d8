package store

import (
	"errors"
	"testing"
)

func TestSettingsRepository_SetAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	if err := repo.Set("camera_id", "0"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, err := repo.Get("camera_id")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "0" {
		t.Errorf("Get() = %q, want %q", value, "0")
	}
}

func TestSettingsRepository_SetOverwrites(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	if err := repo.Set("motion_threshold", "1.0"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Set("motion_threshold", "2.5"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	value, err := repo.Get("motion_threshold")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "2.5" {
		t.Errorf("Get() = %q, want %q", value, "2.5")
	}
}

func TestSettingsRepository_Get_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Settings().Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSettingsRepository_All(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	want := map[string]string{
		"camera_id":        "1",
		"motion_threshold": "1.5",
		"tracking_enabled": "true",
	}
	for k, v := range want {
		if err := repo.Set(k, v); err != nil {
			t.Fatalf("Set(%q) error = %v", k, err)
		}
	}

	all, err := repo.All()
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(all) != len(want) {
		t.Fatalf("All() returned %d settings, want %d", len(all), len(want))
	}
	for k, v := range want {
		if all[k] != v {
			t.Errorf("All()[%q] = %q, want %q", k, all[k], v)
		}
	}
}

func TestSettingsRepository_Delete(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	if err := repo.Set("temp", "value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Delete("temp"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.Get("temp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}

	if err := repo.Delete("temp"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() of missing key error = %v, want ErrNotFound", err)
	}
}
