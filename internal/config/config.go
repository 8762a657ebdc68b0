package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/arodionov/timesheet/internal/workbook"
)

type SheetsConfig struct {
	Reference string `mapstructure:"reference"`
	Log       string `mapstructure:"log"`
}

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"`     // "17:00"
	Workdays []string `mapstructure:"workdays"` // ["Mon","Tue","Wed","Thu","Fri"]
	Holidays []string `mapstructure:"holidays"` // ["2026-01-01"]
	Timezone string   `mapstructure:"timezone"` // e.g. "Europe/Berlin" (optional)
}

type Config struct {
	WorkbookPath    string         `mapstructure:"workbook_path"`
	Sheets          SheetsConfig   `mapstructure:"sheets"`
	DefaultProject  string         `mapstructure:"default_project"`
	DefaultActivity string         `mapstructure:"default_activity"`
	Notifications   bool           `mapstructure:"notifications"`
	Theme           string         `mapstructure:"theme"`
	Reminder        ReminderConfig `mapstructure:"reminder"`
}

func Default() Config {
	sheets := workbook.DefaultSheets()
	return Config{
		Sheets:        SheetsConfig{Reference: sheets.Reference, Log: sheets.Log},
		Notifications: true,
		Theme:         "default",
		Reminder: ReminderConfig{
			Enabled:  false,
			Time:     "17:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
			Holidays: []string{},
			Timezone: "",
		},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "timesheet")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	path, err := xdgConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	// defaults
	v.SetDefault("workbook_path", cfg.WorkbookPath)
	v.SetDefault("sheets.reference", cfg.Sheets.Reference)
	v.SetDefault("sheets.log", cfg.Sheets.Log)
	v.SetDefault("default_project", cfg.DefaultProject)
	v.SetDefault("default_activity", cfg.DefaultActivity)
	v.SetDefault("notifications", cfg.Notifications)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)

	_ = v.ReadInConfig() // ok if missing or corrupt; defaults apply
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("config unmarshal: %w", err)
	}

	// normalize workdays
	for i, d := range cfg.Reminder.Workdays {
		d = strings.TrimSpace(d)
		if len(d) >= 3 {
			cfg.Reminder.Workdays[i] = strings.Title(strings.ToLower(d[:3]))
		}
	}
	return cfg, nil
}

func (c Config) Save() error {
	path, err := xdgConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c Config) SaveTo(path string) error {
	v := viper.New()
	v.SetConfigType("yaml")

	v.Set("workbook_path", c.WorkbookPath)
	v.Set("sheets.reference", c.Sheets.Reference)
	v.Set("sheets.log", c.Sheets.Log)
	v.Set("default_project", c.DefaultProject)
	v.Set("default_activity", c.DefaultActivity)
	v.Set("notifications", c.Notifications)
	v.Set("theme", c.Theme)
	v.Set("reminder.enabled", c.Reminder.Enabled)
	v.Set("reminder.time", c.Reminder.Time)
	v.Set("reminder.workdays", c.Reminder.Workdays)
	v.Set("reminder.holidays", c.Reminder.Holidays)
	v.Set("reminder.timezone", c.Reminder.Timezone)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("config write: %w", err)
	}
	return nil
}

// WorkbookSheets converts the configured sheet names for the workbook package.
func (c Config) WorkbookSheets() workbook.Sheets {
	s := workbook.DefaultSheets()
	if strings.TrimSpace(c.Sheets.Reference) != "" {
		s.Reference = c.Sheets.Reference
	}
	if strings.TrimSpace(c.Sheets.Log) != "" {
		s.Log = c.Sheets.Log
	}
	return s
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
