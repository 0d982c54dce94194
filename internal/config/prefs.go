package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PrefsPath is the default viewer preferences file, relative to the working directory.
const PrefsPath = "config/viewer.json"

// Prefs holds window and overlay preferences. Camera and painting state are never saved.
type Prefs struct {
	ShowFPS      bool `json:"show_fps"`
	ShowMemAlloc bool `json:"show_memalloc"`
	ShowHUD      bool `json:"show_hud"`
	Fullscreen   bool `json:"fullscreen"`
	Width        int  `json:"width"`
	Height       int  `json:"height"`
	TargetFPS    int  `json:"target_fps"`
}

// DefaultPrefs returns a 1280x720 window at 60 FPS with the HUD on and debug overlays off.
func DefaultPrefs() Prefs {
	return Prefs{
		ShowHUD:   true,
		Width:     1280,
		Height:    720,
		TargetFPS: 60,
	}
}

// LoadPrefs reads preferences from path. A missing or unreadable file yields DefaultPrefs
// without creating anything; zero sizes fall back to the defaults.
func LoadPrefs(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPrefs(), nil
	}
	p := DefaultPrefs()
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultPrefs(), nil
	}
	def := DefaultPrefs()
	if p.Width <= 0 || p.Height <= 0 {
		p.Width, p.Height = def.Width, def.Height
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = def.TargetFPS
	}
	return p, nil
}

// SavePrefs writes p to path, creating the parent directory if needed.
func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: save prefs: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return fmt.Errorf("config: save prefs: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
