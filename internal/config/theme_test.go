package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeContent := []byte(`theme:
  accent: "#FF0000"
  overdue: "#00FF00"
`)
	themePath := filepath.Join(t.TempDir(), "tarea-theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("TAREA_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Accent = %s, want #FF0000", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Overdue != "#00FF00" {
		t.Errorf("Overdue = %s, want #00FF00", cfg.ColorScheme.Overdue)
	}
	// Untouched values stay at the default preset
	if cfg.ColorScheme.Normal != DefaultColorScheme().Normal {
		t.Errorf("Normal = %s, want default", cfg.ColorScheme.Normal)
	}
}

func TestMissingThemeFileIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TAREA_THEME_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}
