package tuicanvas

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
)

func TestNewAppliesOptions(t *testing.T) {
	t.Cleanup(func() {
		config.TabPosition = "top"
		config.SaveDir = ""
		config.HideWindowButtons = false
	})

	dir := t.TempDir()
	m := New(
		WithUserConfig(config.DefaultConfig()),
		WithTabPosition("bottom"),
		WithSaveDir(dir),
		WithSize(100, 30),
	)

	if config.TabPosition != "bottom" {
		t.Errorf("TabPosition = %q, want bottom", config.TabPosition)
	}
	if m.SaveDir != dir {
		t.Errorf("SaveDir = %q, want %q", m.SaveDir, dir)
	}
	if m.Width != 100 || m.Height != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.Width, m.Height)
	}
	if m.Mode != CanvasMode {
		t.Errorf("Mode = %v, want canvas", m.Mode)
	}
}

func TestWithFilesAccumulates(t *testing.T) {
	var o Options
	WithFiles("a.txt")(&o)
	WithFiles("b.png", "c.md")(&o)
	if len(o.Files) != 3 || o.Files[2] != "c.md" {
		t.Errorf("Files = %v", o.Files)
	}
}

func TestFilterMouseMotion(t *testing.T) {
	m := New(WithUserConfig(config.DefaultConfig()), WithSize(80, 24))

	if FilterMouseMotion(m, tea.MouseMotionMsg{X: 1, Y: 1}) != nil {
		t.Error("idle motion should be filtered")
	}
	if FilterMouseMotion(m, tea.MouseClickMsg{X: 1, Y: 1}) == nil {
		t.Error("clicks must pass")
	}
}
