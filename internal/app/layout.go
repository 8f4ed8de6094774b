package app

import (
	"math"

	"github.com/Gaurav-Gosain/tuicanvas/internal/canvas"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// TabSpan is one tab strip entry and the cells it covers.
type TabSpan struct {
	Tab    canvas.TabID
	Window canvas.WindowID
	Label  string
	State  canvas.TabState
	Rect   uv.Rectangle
}

// Resize records the terminal size and updates the canvas viewport.
func (d *Desktop) Resize(width, height int) {
	d.Width, d.Height = width, height
	d.Canvas.SetViewport(float64(width)*d.cellW, float64(d.CanvasRows())*d.cellH)
}

// CellSize returns the pixel size of one terminal cell.
func (d *Desktop) CellSize() (w, h float64) { return d.cellW, d.cellH }

// CanvasTop is the first terminal row of the canvas.
func (d *Desktop) CanvasTop() int {
	if config.TabPosition == "top" {
		return config.TabStripHeight
	}
	return 0
}

// CanvasRows is the number of terminal rows given to the canvas.
func (d *Desktop) CanvasRows() int {
	if config.TabPosition == "hidden" {
		return max(d.Height, 0)
	}
	return max(d.Height-config.TabStripHeight, 0)
}

// TabStripRow is the terminal row of the tab strip, or -1 when hidden.
func (d *Desktop) TabStripRow() int {
	switch config.TabPosition {
	case "hidden":
		return -1
	case "bottom":
		return d.Height - config.TabStripHeight
	default:
		return 0
	}
}

// CellToCanvas maps the center of a terminal cell to canvas screen pixels.
func (d *Desktop) CellToCanvas(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * d.cellW, (float64(y-d.CanvasTop()) + 0.5) * d.cellH
}

// InCanvas reports whether terminal row y belongs to the canvas.
func (d *Desktop) InCanvas(y int) bool {
	top := d.CanvasTop()
	return y >= top && y < top+d.CanvasRows()
}

// CellRect maps a rect in canvas screen pixels to terminal cells. Edges are
// rounded so a cell belongs to the rect that covers its center.
func (d *Desktop) CellRect(r canvas.Rect) uv.Rectangle {
	x0 := int(math.Round(r.X / d.cellW))
	x1 := int(math.Round((r.X + r.W) / d.cellW))
	y0 := int(math.Round(r.Y / d.cellH))
	y1 := int(math.Round((r.Y + r.H) / d.cellH))
	return uv.Rect(x0, y0+d.CanvasTop(), max(x1-x0, 0), max(y1-y0, 0))
}

// WindowCells returns the terminal cells of a window's box.
func (d *Desktop) WindowCells(id canvas.WindowID) uv.Rectangle {
	return d.CellRect(d.Canvas.ScreenRect(id))
}

// TabLayout places every tab along the strip in creation order. Tabs that
// do not fit are left out.
func (d *Desktop) TabLayout() []TabSpan {
	row := d.TabStripRow()
	if row < 0 {
		return nil
	}

	sepWidth := ansi.StringWidth(config.GetTabSeparator())
	x := 0
	var spans []TabSpan
	for _, tab := range d.Canvas.Tabs() {
		label := ansi.Truncate(tab.Label, config.MaxTabLabelWidth, "…")
		if tab.State == canvas.TabMinimized {
			label = config.GetTabMinimizedMarker() + label
		}
		label = " " + label + " "
		w := ansi.StringWidth(label)
		if x+w > d.Width {
			break
		}
		spans = append(spans, TabSpan{
			Tab:    tab.ID,
			Window: tab.WindowID,
			Label:  label,
			State:  tab.State,
			Rect:   uv.Rect(x, row, w, config.TabStripHeight),
		})
		x += w + sepWidth
	}
	return spans
}

// TabAt returns the tab under a terminal cell.
func (d *Desktop) TabAt(x, y int) (canvas.TabID, bool) {
	p := uv.Pos(x, y)
	for _, span := range d.TabLayout() {
		if p.In(span.Rect) {
			return span.Tab, true
		}
	}
	return "", false
}
