package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadUserConfigFromFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
[canvas]
max_scale = 4.0

[appearance]
tab_position = "bottom"

[keybindings.window_management]
new_window = ["ctrl+n"]
`)

	cfg, err := LoadUserConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadUserConfigFrom: %v", err)
	}

	if cfg.Canvas.MaxScale != 4 {
		t.Errorf("MaxScale = %v, want 4", cfg.Canvas.MaxScale)
	}
	if cfg.Canvas.MinScale != DefaultMinScale || cfg.Canvas.CellHeight != DefaultCellHeight {
		t.Errorf("defaults not filled: %+v", cfg.Canvas)
	}
	if cfg.Appearance.TabPosition != "bottom" || cfg.Appearance.BorderStyle != "rounded" {
		t.Errorf("appearance = %+v", cfg.Appearance)
	}
	if got := cfg.Keybindings.WindowManagement[ActionNewWindow]; len(got) != 1 || got[0] != "ctrl+n" {
		t.Errorf("new_window = %v, want [ctrl+n]", got)
	}
	if got := cfg.Keybindings.WindowManagement[ActionCloseWindow]; len(got) == 0 {
		t.Error("close_window default not filled")
	}
	if len(cfg.Keybindings.Canvas) == 0 {
		t.Error("missing canvas keybinding table not filled")
	}
}

func TestLoadUserConfigFromErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad toml", body: "[canvas\nmin_scale = ", want: "failed to parse"},
		{name: "inverted scale bounds", body: "[canvas]\nmin_scale = 2.0\nmax_scale = 1.0\n", want: "error(s)"},
		{name: "zoom out above one", body: "[canvas]\nzoom_out_factor = 1.5\n", want: "error(s)"},
		{name: "duplicate key", body: "[keybindings.canvas]\nzoom_in = [\"n\"]\n", want: "error(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadUserConfigFrom(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}

	if _, err := LoadUserConfigFrom(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestCreateDefaultConfigRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if _, err := createDefaultConfig(path); err != nil {
		t.Fatalf("createDefaultConfig: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# tuicanvas Configuration File") {
		t.Error("missing header comment")
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
	if cfg.Canvas.WindowWidth != DefaultWindowWidth || cfg.Keybindings.ModeControl[ActionQuit] == nil {
		t.Errorf("written config lost values: %+v", cfg.Canvas)
	}

	loaded, err := LoadUserConfigFrom(path)
	if err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
	if loaded.Appearance.TabPosition != "top" {
		t.Errorf("TabPosition = %q", loaded.Appearance.TabPosition)
	}
}

func TestValidateConfigWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.BorderStyle = "wavy"
	cfg.Appearance.TabPosition = "left"
	cfg.Keybindings.Canvas["spin_canvas"] = []string{"ctrl+s"}

	v := ValidateConfig(cfg)

	if v.HasErrors() {
		t.Fatalf("unexpected errors: %+v", v.Errors)
	}
	if len(v.Warnings) != 3 {
		t.Errorf("%d warnings, want 3: %+v", len(v.Warnings), v.Warnings)
	}
	if cfg.Appearance.BorderStyle != "rounded" || cfg.Appearance.TabPosition != "top" {
		t.Errorf("invalid enums not reset: %+v", cfg.Appearance)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	v := ValidateConfig(DefaultConfig())
	if v.HasErrors() || v.HasWarnings() {
		t.Errorf("default config has issues: errors=%+v warnings=%+v", v.Errors, v.Warnings)
	}
}
