package app

import (
	"strings"
	"testing"

	"github.com/Gaurav-Gosain/tuicanvas/internal/canvas"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

func TestCanvasRowsFollowTabPosition(t *testing.T) {
	t.Cleanup(func() { config.TabPosition = "top" })

	tests := []struct {
		position string
		top      int
		rows     int
		stripRow int
	}{
		{"top", 1, 39, 0},
		{"bottom", 0, 39, 39},
		{"hidden", 0, 40, -1},
	}
	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			config.TabPosition = tt.position
			d := newTestDesktop(t)
			if d.CanvasTop() != tt.top || d.CanvasRows() != tt.rows || d.TabStripRow() != tt.stripRow {
				t.Errorf("top=%d rows=%d strip=%d", d.CanvasTop(), d.CanvasRows(), d.TabStripRow())
			}
			if vp := d.Canvas.Viewport(); vp.H != float64(tt.rows*config.DefaultCellHeight) {
				t.Errorf("viewport height = %v", vp.H)
			}
		})
	}
}

func TestCellMapping(t *testing.T) {
	d := newTestDesktop(t)

	x, y := d.CellToCanvas(0, 1)
	if x != 5 || y != 10 {
		t.Errorf("CellToCanvas(0,1) = %v,%v", x, y)
	}

	got := d.CellRect(canvas.Rect{X: 0, Y: 0, W: 600, H: 380})
	if want := uv.Rect(0, 1, 60, 19); got != want {
		t.Errorf("CellRect = %v, want %v", got, want)
	}

	got = d.CellRect(canvas.Rect{X: 14, Y: 31, W: 100, H: 40})
	if want := uv.Rect(1, 3, 10, 2); got != want {
		t.Errorf("rounded CellRect = %v, want %v", got, want)
	}

	if d.InCanvas(0) || !d.InCanvas(1) || d.InCanvas(40) {
		t.Error("InCanvas should exclude the tab strip and rows past the screen")
	}
}

func TestHeaderCellsMatchHitTest(t *testing.T) {
	d := newTestDesktop(t)
	w := d.NewTextWindow("notes.txt")
	d.Canvas.MoveWindow(w.ID, 100, 100)
	cells := d.WindowCells(w.ID)

	tests := []struct {
		name string
		x, y int
		want canvas.HitPart
	}{
		{"close button", cells.Max.X - 1, cells.Min.Y, canvas.HitClose},
		{"close button left edge", cells.Max.X - config.HeaderButtonCells, cells.Min.Y, canvas.HitClose},
		{"minimize button", cells.Max.X - config.HeaderButtonCells - 1, cells.Min.Y, canvas.HitMinimize},
		{"title bar", cells.Min.X, cells.Min.Y, canvas.HitHeader},
		{"content", cells.Min.X + 2, cells.Min.Y + 1, canvas.HitContent},
		{"outside", cells.Max.X, cells.Min.Y, canvas.HitNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := d.CellToCanvas(tt.x, tt.y)
			if got := d.Canvas.HitTest(px, py).Part; got != tt.want {
				t.Errorf("HitTest at cell %d,%d = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}

	header := strings.Split(d.renderWindow(w, cells), "\n")[0]
	plain := ansi.Strip(header)
	wantButtons := config.GetWindowButtonMinimize() + config.GetWindowButtonClose()
	if !strings.HasSuffix(plain, wantButtons) {
		t.Errorf("header %q should end with the buttons", plain)
	}
	if !strings.Contains(plain, "notes.txt") {
		t.Errorf("header %q should show the title", plain)
	}
}

func TestRenderWindowFillsItsCells(t *testing.T) {
	d := newTestDesktop(t)
	w := d.Canvas.CreateWindow("a.txt", []byte("one\ntwo\nthree"))
	cells := d.WindowCells(w.ID)

	lines := strings.Split(d.renderWindow(w, cells), "\n")
	if len(lines) != cells.Dy() {
		t.Fatalf("rendered %d rows, want %d", len(lines), cells.Dy())
	}
	for i, line := range lines {
		if got := ansi.StringWidth(line); got != cells.Dx() {
			t.Errorf("row %d is %d wide, want %d", i, got, cells.Dx())
		}
	}
	if !strings.Contains(ansi.Strip(lines[1]), "one") {
		t.Errorf("first content row = %q", ansi.Strip(lines[1]))
	}
}

func TestTabLayout(t *testing.T) {
	d := newTestDesktop(t)
	a := d.Canvas.CreateWindow("alpha", nil)
	d.Canvas.CreateWindow("beta", nil)
	d.Canvas.CreateWindow("gamma", nil)
	d.Canvas.MinimizeWindow(a.ID)

	spans := d.TabLayout()
	if len(spans) != 3 {
		t.Fatalf("got %d tabs", len(spans))
	}
	if !strings.Contains(spans[0].Label, config.GetTabMinimizedMarker()) || spans[0].State != canvas.TabMinimized {
		t.Errorf("minimized tab = %+v", spans[0])
	}
	if spans[2].State != canvas.TabActive {
		t.Errorf("last tab state = %s", spans[2].State)
	}

	sep := ansi.StringWidth(config.GetTabSeparator())
	if spans[1].Rect.Min.X != spans[0].Rect.Max.X+sep {
		t.Errorf("tabs not adjacent: %v then %v", spans[0].Rect, spans[1].Rect)
	}

	id, ok := d.TabAt(spans[1].Rect.Min.X, 0)
	if !ok || id != spans[1].Tab {
		t.Errorf("TabAt = %v, %v", id, ok)
	}
	if _, ok := d.TabAt(spans[1].Rect.Min.X, 5); ok {
		t.Error("TabAt should miss rows below the strip")
	}
	if _, ok := d.TabAt(spans[0].Rect.Max.X, 0); ok {
		t.Error("TabAt should miss separators")
	}
}

func TestTabLayoutDropsOverflow(t *testing.T) {
	d := newTestDesktop(t)
	d.Resize(20, 10)
	for range 5 {
		d.Canvas.CreateWindow("window", nil)
	}
	spans := d.TabLayout()
	if len(spans) == 0 || len(spans) == 5 {
		t.Fatalf("got %d tabs on a narrow strip", len(spans))
	}
	last := spans[len(spans)-1]
	if last.Rect.Max.X > 20 {
		t.Errorf("tab %v runs past the screen", last.Rect)
	}
}

func TestClipWindowContent(t *testing.T) {
	box := "abcd\nefgh\nijkl"
	area := uv.Rect(0, 1, 3, 5)

	tests := []struct {
		name   string
		x, y   int
		want   string
		wantXY [2]int
	}{
		{"inside", 0, 1, "abc\nefg\nijk", [2]int{0, 1}},
		{"cut left and top", -1, 0, "fgh\njkl", [2]int{0, 1}},
		{"offscreen", 5, 1, "", [2]int{5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, x, y := clipWindowContent(box, tt.x, tt.y, area)
			if ansi.Strip(got) != tt.want {
				t.Errorf("content = %q, want %q", ansi.Strip(got), tt.want)
			}
			if got != "" && (x != tt.wantXY[0] || y != tt.wantXY[1]) {
				t.Errorf("origin = %d,%d, want %v", x, y, tt.wantXY)
			}
		})
	}
}

func TestFitBlock(t *testing.T) {
	got := fitBlock("hello world\nx", 5, 3)
	want := "hello\nx    \n     "
	if got != want {
		t.Errorf("fitBlock = %q, want %q", got, want)
	}
	if fitBlock("x", 0, 3) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestGetCanvasShowsWindowsAndBadge(t *testing.T) {
	d := newTestDesktop(t)
	d.Canvas.CreateWindow("notes.txt", []byte("remember"))

	out := ansi.Strip(d.GetCanvas().Render())
	for _, want := range []string{"notes.txt", "remember", "CANVAS", "100%"} {
		if !strings.Contains(out, want) {
			t.Errorf("canvas missing %q", want)
		}
	}

	d.EnterEditMode()
	if out := ansi.Strip(d.GetCanvas().Render()); !strings.Contains(out, "EDIT") {
		t.Error("badge should switch to EDIT")
	}
}

func TestWelcomeWhenEmpty(t *testing.T) {
	d := newTestDesktop(t)
	out := ansi.Strip(d.GetCanvas().Render())
	if !strings.Contains(out, "tuicanvas") {
		t.Error("empty canvas should show the welcome box")
	}
}
