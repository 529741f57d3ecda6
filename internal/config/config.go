package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig
	Bounds BoundsConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat        string
	TimeFormat        string
	WeekStart         time.Weekday
	TimeMin           string
	TimeMax           string
	TimeInterval      int
	ShowTodayShortcut bool
	ShowPresets       bool
}

// BoundsConfig holds the optional selectable window. A nil side is
// unconstrained; invalid dates in the file are treated as absent.
type BoundsConfig struct {
	Min *time.Time
	Max *time.Time
}

// Load reads configuration from file and env. Env var overrides use prefix DATEPICK_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("ui.time_format", "15:04")
	v.SetDefault("ui.week_start", "sunday")
	v.SetDefault("ui.time_min", "09:00")
	v.SetDefault("ui.time_max", "17:00")
	v.SetDefault("ui.time_interval", 30)
	v.SetDefault("ui.show_today_shortcut", true)
	v.SetDefault("ui.show_presets", true)
	v.SetDefault("bounds.min", "")
	v.SetDefault("bounds.max", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DATEPICK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "datepick"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DATEPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	return Config{
		UI: UIConfig{
			DateFormat:        v.GetString("ui.date_format"),
			TimeFormat:        v.GetString("ui.time_format"),
			WeekStart:         parseWeekday(v.GetString("ui.week_start")),
			TimeMin:           v.GetString("ui.time_min"),
			TimeMax:           v.GetString("ui.time_max"),
			TimeInterval:      v.GetInt("ui.time_interval"),
			ShowTodayShortcut: v.GetBool("ui.show_today_shortcut"),
			ShowPresets:       v.GetBool("ui.show_presets"),
		},
		Bounds: BoundsConfig{
			Min: parseDate(v.GetString("bounds.min")),
			Max: parseDate(v.GetString("bounds.max")),
		},
	}, nil
}

// parseWeekday maps a weekday name to time.Weekday, defaulting to Sunday on
// anything unrecognized.
func parseWeekday(name string) time.Weekday {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "monday":
		return time.Monday
	case "tuesday":
		return time.Tuesday
	case "wednesday":
		return time.Wednesday
	case "thursday":
		return time.Thursday
	case "friday":
		return time.Friday
	case "saturday":
		return time.Saturday
	default:
		return time.Sunday
	}
}

// parseDate parses an ISO date, returning nil for empty or invalid input.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}
