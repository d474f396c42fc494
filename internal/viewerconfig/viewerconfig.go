package viewerconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the viewer config file, relative to the process working directory.
const ConfigPath = "config/viewer.json"

// Prefs holds viewer-only preferences (overlays, grid, site markers). Persisted across runs.
// The scene fragment itself is immutable data and is never written here.
type Prefs struct {
	ShowFPS       bool `json:"show_fps"`
	ShowMemAlloc  bool `json:"show_memalloc"`
	GridVisible   bool `json:"grid_visible"`
	ShowSites     bool `json:"show_sites"`
	ShowInspector bool `json:"show_inspector"`
}

// Default returns default viewer preferences (debug overlays off, grid on,
// site markers on: they are authored invisible, so the viewer is the only
// place to see them).
func Default() Prefs {
	return Prefs{
		ShowFPS:       false,
		ShowMemAlloc:  false,
		GridVisible:   true,
		ShowSites:     true,
		ShowInspector: true,
	}
}

// Load reads viewer preferences from config/viewer.json. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes viewer preferences to config/viewer.json, creating the config directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}
