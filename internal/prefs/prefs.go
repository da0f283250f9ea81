// Package prefs handles user preferences persistence.
// Preferences are stored in ~/.config/vetpulz/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds per-user front-desk preferences.
type Prefs struct {
	Theme             string `toml:"theme"`
	PreferredLanguage string `toml:"preferred_language"`
}

const (
	defaultPrefsPath = "~/.config/vetpulz/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultLanguage  = "English"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults
// if missing or unreadable. Load never fails; a broken prefs file is
// treated as absent.
func Load(path string) Prefs {
	defaults := Prefs{Theme: defaultTheme, PreferredLanguage: defaultLanguage}

	resolved, err := resolvePath(path)
	if err != nil {
		return defaults
	}

	file, err := os.Open(resolved)
	if err != nil {
		return defaults
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return defaults
	}

	p := defaults
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return defaults
	}

	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	if strings.TrimSpace(p.PreferredLanguage) == "" {
		p.PreferredLanguage = defaultLanguage
	}
	return p
}

// Save writes preferences to the given path, creating directories as
// needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
