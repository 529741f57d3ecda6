package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DATEPICK_CONFIG", path)
}

func TestLoadDefaults(t *testing.T) {
	writeConfigFile(t, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.DateFormat != "2006-01-02" {
		t.Errorf("date_format = %q, want %q", cfg.UI.DateFormat, "2006-01-02")
	}
	if cfg.UI.WeekStart != time.Sunday {
		t.Errorf("week_start = %v, want Sunday", cfg.UI.WeekStart)
	}
	if cfg.UI.TimeMin != "09:00" || cfg.UI.TimeMax != "17:00" {
		t.Errorf("time window = %q..%q, want 09:00..17:00", cfg.UI.TimeMin, cfg.UI.TimeMax)
	}
	if cfg.UI.TimeInterval != 30 {
		t.Errorf("time_interval = %d, want 30", cfg.UI.TimeInterval)
	}
	if !cfg.UI.ShowTodayShortcut || !cfg.UI.ShowPresets {
		t.Error("today shortcut and presets should default on")
	}
	if cfg.Bounds.Min != nil || cfg.Bounds.Max != nil {
		t.Error("bounds should default to unconstrained")
	}
}

func TestLoadFromFile(t *testing.T) {
	writeConfigFile(t, `
[ui]
date_format = "02/01/2006"
week_start = "monday"
time_interval = 15
show_presets = false

[bounds]
min = "2024-01-01"
max = "2024-12-31"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.DateFormat != "02/01/2006" {
		t.Errorf("date_format = %q, want %q", cfg.UI.DateFormat, "02/01/2006")
	}
	if cfg.UI.WeekStart != time.Monday {
		t.Errorf("week_start = %v, want Monday", cfg.UI.WeekStart)
	}
	if cfg.UI.TimeInterval != 15 {
		t.Errorf("time_interval = %d, want 15", cfg.UI.TimeInterval)
	}
	if cfg.UI.ShowPresets {
		t.Error("show_presets should be false")
	}
	if cfg.Bounds.Min == nil || cfg.Bounds.Min.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("bounds.min = %v, want 2024-01-01", cfg.Bounds.Min)
	}
	if cfg.Bounds.Max == nil || cfg.Bounds.Max.Format("2006-01-02") != "2024-12-31" {
		t.Errorf("bounds.max = %v, want 2024-12-31", cfg.Bounds.Max)
	}
}

func TestLoadInvalidBoundsIgnored(t *testing.T) {
	writeConfigFile(t, `
[bounds]
min = "not-a-date"
max = "2024-13-99"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Bounds.Min != nil {
		t.Errorf("invalid min should be nil, got %v", cfg.Bounds.Min)
	}
	if cfg.Bounds.Max != nil {
		t.Errorf("invalid max should be nil, got %v", cfg.Bounds.Max)
	}
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"Monday":    time.Monday,
		" saturday": time.Saturday,
		"wednesday": time.Wednesday,
		"":          time.Sunday,
		"noonday":   time.Sunday,
	}
	for in, want := range cases {
		if got := parseWeekday(in); got != want {
			t.Errorf("parseWeekday(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if got := parseDate("2024-05-15"); got == nil || got.Day() != 15 {
		t.Errorf("parseDate valid = %v, want May 15", got)
	}
	if got := parseDate(""); got != nil {
		t.Errorf("parseDate empty = %v, want nil", got)
	}
	if got := parseDate("15/05/2024"); got != nil {
		t.Errorf("parseDate wrong layout = %v, want nil", got)
	}
}
