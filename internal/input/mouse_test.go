package input

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuicanvas/internal/app"
	"github.com/Gaurav-Gosain/tuicanvas/internal/canvas"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
)

// placedWindow opens a window at a cell-aligned canvas position.
func placedWindow(t *testing.T, d *app.Desktop, name string) *canvas.Window {
	t.Helper()
	w := d.Canvas.CreateWindow(name, nil)
	d.Canvas.MoveWindow(w.ID, 100, 100)
	return w
}

func TestHeaderDrag(t *testing.T) {
	tests := []struct {
		name    string
		release tea.MouseButton
	}{
		{"release reports button", tea.MouseLeft},
		{"release without button", tea.MouseNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDesktop(t)
			w := placedWindow(t, d, "a")
			cells := d.WindowCells(w.ID)

			HandleInput(tea.MouseClickMsg{X: cells.Min.X + 2, Y: cells.Min.Y, Button: tea.MouseLeft}, d)
			if d.Router.Gesture() != canvas.GestureDragging {
				t.Fatalf("gesture = %s", d.Router.Gesture())
			}
			HandleInput(tea.MouseMotionMsg{X: cells.Min.X + 5, Y: cells.Min.Y + 2, Button: tea.MouseLeft}, d)
			HandleInput(tea.MouseReleaseMsg{X: cells.Min.X + 5, Y: cells.Min.Y + 2, Button: tt.release}, d)

			want := canvas.Point{X: 100 + 3*config.DefaultCellWidth, Y: 100 + 2*config.DefaultCellHeight}
			if w.Position != want {
				t.Errorf("position = %+v, want %+v", w.Position, want)
			}
			if d.Router.Busy() {
				t.Error("release should end the drag")
			}

			HandleInput(tea.MouseMotionMsg{X: 0, Y: 30}, d)
			if w.Position != want {
				t.Error("motion after release should not move the window")
			}
		})
	}
}

func TestHeaderButtons(t *testing.T) {
	d := newDesktop(t)
	a := placedWindow(t, d, "a")
	b := placedWindow(t, d, "b")
	cells := d.WindowCells(b.ID)

	HandleInput(tea.MouseClickMsg{X: cells.Max.X - 4, Y: cells.Min.Y, Button: tea.MouseLeft}, d)
	HandleInput(tea.MouseReleaseMsg{X: cells.Max.X - 4, Y: cells.Min.Y, Button: tea.MouseLeft}, d)
	if !b.Minimized() {
		t.Fatal("minimize button should minimize b")
	}

	HandleInput(tea.MouseClickMsg{X: cells.Max.X - 1, Y: cells.Min.Y, Button: tea.MouseLeft}, d)
	HandleInput(tea.MouseReleaseMsg{X: cells.Max.X - 1, Y: cells.Min.Y, Button: tea.MouseLeft}, d)
	if _, ok := d.Canvas.Window(a.ID); ok {
		t.Error("close button should close a")
	}
	if d.Canvas.Len() != 1 {
		t.Errorf("windows = %d", d.Canvas.Len())
	}
}

func TestTabClickRestores(t *testing.T) {
	d := newDesktop(t)
	a := d.Canvas.CreateWindow("a", nil)
	d.Canvas.CreateWindow("b", nil)
	d.Canvas.MinimizeWindow(a.ID)

	span := d.TabLayout()[0]
	HandleInput(tea.MouseClickMsg{X: span.Rect.Min.X + 1, Y: span.Rect.Min.Y, Button: tea.MouseLeft}, d)

	if a.Minimized() {
		t.Error("clicking a minimized tab should restore it")
	}
	if w := d.Canvas.ActiveWindow(); w == nil || w.ID != a.ID {
		t.Errorf("active = %v", w)
	}
	if d.Router.Busy() {
		t.Error("tab clicks should not start a gesture")
	}
}

func TestMiddleDragPans(t *testing.T) {
	d := newDesktop(t)
	d.Canvas.CreateWindow("a", nil)

	HandleInput(tea.MouseClickMsg{X: 2, Y: 35, Button: tea.MouseMiddle}, d)
	HandleInput(tea.MouseMotionMsg{X: 5, Y: 37, Button: tea.MouseMiddle}, d)
	HandleInput(tea.MouseReleaseMsg{X: 5, Y: 37, Button: tea.MouseMiddle}, d)

	want := canvas.Point{X: 3 * config.DefaultCellWidth, Y: 2 * config.DefaultCellHeight}
	if got := d.Canvas.State().Pan; got != want {
		t.Errorf("pan = %+v, want %+v", got, want)
	}
}

func TestWheelZoom(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.MouseWheelMsg
		wantScale float64
	}{
		{"wheel up zooms in", tea.MouseWheelMsg{X: 50, Y: 20, Button: tea.MouseWheelUp}, 1.1},
		{"wheel down zooms out", tea.MouseWheelMsg{X: 50, Y: 20, Button: tea.MouseWheelDown}, 0.9},
		{"modifier scrolls instead", tea.MouseWheelMsg{X: 50, Y: 20, Button: tea.MouseWheelUp, Mod: tea.ModCtrl}, 1},
		{"tab strip ignored", tea.MouseWheelMsg{X: 50, Y: 0, Button: tea.MouseWheelUp}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDesktop(t)
			d.Canvas.CreateWindow("a", nil)
			HandleInput(tt.msg, d)
			if got := d.Canvas.Scale(); got != tt.wantScale {
				t.Errorf("scale = %v, want %v", got, tt.wantScale)
			}
		})
	}
}

func TestOverlayBlocksPointer(t *testing.T) {
	d := newDesktop(t)
	w := placedWindow(t, d, "a")
	cells := d.WindowCells(w.ID)
	d.OpenPrompt(app.PromptNewFile)

	HandleInput(tea.MouseClickMsg{X: cells.Max.X - 1, Y: cells.Min.Y, Button: tea.MouseLeft}, d)
	if d.Canvas.Len() != 1 {
		t.Error("clicks should not reach the canvas while a prompt is open")
	}
	HandleInput(tea.MouseWheelMsg{X: 50, Y: 20, Button: tea.MouseWheelUp}, d)
	if d.Canvas.Scale() != 1 {
		t.Error("wheel should not zoom while a prompt is open")
	}
}
