package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := Load("")
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.PreferredLanguage != defaultLanguage {
		t.Fatalf("PreferredLanguage = %q, want %q", p.PreferredLanguage, defaultLanguage)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	content := "theme = \"Slate\"\npreferred_language = \"Sinhala\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != "Slate" || p.PreferredLanguage != "Sinhala" {
		t.Fatalf("Load = %+v", p)
	}
}

func TestLoad_BrokenFileDegradesToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [nope"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want default on parse failure", p.Theme)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Kanagawa", PreferredLanguage: "Tamil"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	p := Load(path)
	if p.Theme != "Kanagawa" || p.PreferredLanguage != "Tamil" {
		t.Fatalf("round trip = %+v", p)
	}
}
