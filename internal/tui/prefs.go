package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs are the reader's user preferences.
type Prefs struct {
	Theme     string `yaml:"theme"`
	ServerURL string `yaml:"server_url"`
	Start     int    `yaml:"start"`
	End       int    `yaml:"end"`
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"`
}

// DefaultPrefs returns the preferences used when no file exists.
func DefaultPrefs() Prefs {
	return Prefs{
		Theme:    ThemeAuto,
		Start:    1,
		End:      11,
		LogLevel: "info",
	}
}

// DefaultPrefsPath returns ~/.config/antigone/reader.yaml, or "" when the
// user config directory cannot be determined.
func DefaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "antigone", "reader.yaml")
}

// LoadPrefs reads preferences from path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadPrefs(path string) (Prefs, error) {
	prefs := DefaultPrefs()
	if path == "" {
		return prefs, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("read prefs file: %w", err)
	}

	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return DefaultPrefs(), fmt.Errorf("parse prefs file: %w", err)
	}
	prefs.applyDefaults()
	return prefs, nil
}

// Save writes the preferences to path, creating its directory.
func (p Prefs) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs file: %w", err)
	}
	return nil
}

// Span returns the initial start and end parameters for the reader.
func (p Prefs) Span() (string, string) {
	return fmt.Sprint(p.Start), fmt.Sprint(p.End)
}

func (p *Prefs) applyDefaults() {
	defaults := DefaultPrefs()
	if p.Theme == "" {
		p.Theme = defaults.Theme
	}
	if p.LogLevel == "" {
		p.LogLevel = defaults.LogLevel
	}
	if p.Start < 1 {
		p.Start = defaults.Start
	}
	if p.End < p.Start {
		p.End = p.Start
	}
}
