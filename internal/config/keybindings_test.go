package config

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"m", "m"},
		{"M", "M"},
		{"+", "+"},
		{" Tab ", "tab"},
		{"Ctrl+C", "ctrl+c"},
		{"ctrl++", "ctrl++"},
		{"Opt+Shift+Up", "alt+shift+up"},
		{"shift+tab", "shift+tab"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeKey(tt.in); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKeybindRegistryDefaults(t *testing.T) {
	r := NewKeybindRegistry(nil)

	tests := []struct {
		key, action string
	}{
		{"n", ActionNewWindow},
		{"M", ActionRestoreAll},
		{"m", ActionMinimizeWindow},
		{"=", ActionZoomIn},
		{"+", ActionZoomIn},
		{"shift+tab", ActionPrevTab},
		{"shift+left", ActionMoveLeft},
		{"ctrl+c", ActionQuit},
		{"z", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.GetAction(tt.key); got != tt.action {
				t.Errorf("GetAction(%q) = %q, want %q", tt.key, got, tt.action)
			}
		})
	}

	if keys := r.GetKeys(ActionCloseWindow); len(keys) != 2 {
		t.Errorf("close_window keys = %v, want two", keys)
	}
}

func TestKeybindRegistryUserOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.WindowManagement[ActionNewWindow] = []string{"Ctrl+N"}

	r := NewKeybindRegistry(cfg)

	if got := r.GetAction("ctrl+n"); got != ActionNewWindow {
		t.Errorf("ctrl+n -> %q, want new_window", got)
	}
	if got := r.GetAction("n"); got != "" {
		t.Errorf("n -> %q, want unbound", got)
	}
}

func TestGetKeybindingsSections(t *testing.T) {
	sections := GetKeybindings(nil)
	if len(sections) != 5 {
		t.Fatalf("%d sections, want 5", len(sections))
	}
	for _, s := range sections {
		if len(s.Bindings) == 0 {
			t.Errorf("section %q is empty", s.Title)
		}
		for _, b := range s.Bindings {
			if b.Description == "" {
				t.Errorf("binding %q in %q has no description", b.Key, s.Title)
			}
		}
	}
}
