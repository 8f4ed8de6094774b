package theme

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCustomThemeFile(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		body        string
		wantID      string
		wantDisplay string
		wantErr     bool
	}{
		{
			name:        "explicit id and name",
			file:        "paper.json",
			body:        `{"id": "paper-light", "display_name": "Paper Light", "fg": "#222222", "bg": "#fafafa"}`,
			wantID:      "paper-light",
			wantDisplay: "Paper Light",
		},
		{
			name:        "id from file name",
			file:        "Night-Owl.json",
			body:        `{"fg": "#ffffff", "bg": "#011627"}`,
			wantID:      "night-owl",
			wantDisplay: "night-owl",
		},
		{
			name:    "invalid json",
			file:    "broken.json",
			body:    `{"fg": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTheme(t, t.TempDir(), tt.file, tt.body)

			got, err := LoadCustomThemeFile(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadCustomThemeFile: %v", err)
			}
			if got.ID != tt.wantID || got.DisplayName != tt.wantDisplay {
				t.Errorf("got %q/%q, want %q/%q", got.ID, got.DisplayName, tt.wantID, tt.wantDisplay)
			}
		})
	}
}

func TestFillDefaultsDerivesColors(t *testing.T) {
	th := &tint.Tint{
		Fg:  tint.FromHex("#c0c0c0"),
		Red: tint.FromHex("#aa0000"),
	}
	fillDefaults(th)

	all := []*tint.Color{
		th.Fg, th.Bg, th.Cursor,
		th.Black, th.Red, th.Green, th.Yellow, th.Blue, th.Purple, th.Cyan, th.White,
		th.BrightBlack, th.BrightRed, th.BrightGreen, th.BrightYellow,
		th.BrightBlue, th.BrightPurple, th.BrightCyan, th.BrightWhite,
	}
	for i, c := range all {
		if c == nil {
			t.Errorf("color %d left nil", i)
		}
	}
	same := func(a, b *tint.Color) bool { return a != b && a.R == b.R && a.G == b.G && a.B == b.B }
	if !same(th.Cursor, th.Fg) {
		t.Error("cursor should be a copy of fg")
	}
	if !same(th.BrightRed, th.Red) {
		t.Error("bright red should be a copy of red")
	}
}

func TestLoadCustomThemesRegistersJSONOnly(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "canvas-test-unique.json", `{"fg": "#ffffff", "bg": "#000000"}`)
	writeTheme(t, dir, "bad.json", `nope`)
	writeTheme(t, dir, "notes.md", `# not a theme`)

	tint.NewDefaultRegistry()
	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes: %v", err)
	}
	if !slices.Equal(loaded, []string{"canvas-test-unique"}) {
		t.Errorf("loaded = %v, want [canvas-test-unique]", loaded)
	}
	if !slices.Contains(tint.TintIDs(), "canvas-test-unique") {
		t.Error("theme not registered")
	}

	if _, err := LoadCustomThemes(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestColorsFallBackWhenDisabled(t *testing.T) {
	enabled = false
	t.Cleanup(func() { enabled = false })

	if got := ColorToString(BorderFocused()); got != ColorToString(lipgloss.Color("#AFFFFF")) {
		t.Errorf("BorderFocused = %s without a theme", got)
	}
	if Current() != nil {
		t.Error("Current should be nil when theming is disabled")
	}
}

func TestColorToString(t *testing.T) {
	tests := []struct {
		in   *tint.Color
		want string
	}{
		{tint.FromHex("#ff8000"), "#ff8000"},
		{tint.FromHex("#000000"), "#000000"},
	}
	for _, tt := range tests {
		if got := ColorToString(tt.in); got != tt.want {
			t.Errorf("ColorToString = %s, want %s", got, tt.want)
		}
	}
	if got := ColorToString(nil); got != "#000000" {
		t.Errorf("ColorToString(nil) = %s", got)
	}
}
