// Package prefs persists refresher user preferences in
// ~/.config/refresher/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/refresher/internal/config"
)

// Prefs holds settings the user changes from inside the UI.
type Prefs struct {
	Theme    string `toml:"theme"`
	HideHelp bool   `toml:"hide_help"`
}

const (
	defaultPrefsPath = "~/.config/refresher/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences used before anything is saved.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load reads preferences from path. Any failure degrades to defaults and is
// logged; a broken prefs file must never keep the UI from starting.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		log.Printf("prefs: %v", err)
		return Default()
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("prefs: read %s: %v", resolved, err)
		}
		return Default()
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		log.Printf("prefs: parse %s: %v", resolved, err)
		return Default()
	}
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
