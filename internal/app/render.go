package app

import (
	"fmt"
	"math"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/Gaurav-Gosain/tuicanvas/internal/theme"
	uv "github.com/charmbracelet/ultraviolet"
)

// Distance between background dots, in cells.
const (
	gridSpacingX = 8
	gridSpacingY = 4
)

// GetCanvas composes the background, every visible window and the overlays.
func (d *Desktop) GetCanvas() *lipgloss.Canvas {
	c := lipgloss.NewCanvas(d.Width, d.Height)
	area := uv.Rect(0, d.CanvasTop(), d.Width, d.CanvasRows())

	layers := []*lipgloss.Layer{d.renderBackground(area)}

	for _, w := range d.Canvas.Stacked() {
		cells := d.WindowCells(w.ID)
		box := d.renderWindow(w, cells)
		if box == "" {
			continue
		}
		clipped, x, y := clipWindowContent(box, cells.Min.X, cells.Min.Y, area)
		if clipped == "" {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(clipped).
			X(x).Y(y).Z(config.ZIndexWindows+w.Z).ID(string(w.ID)))
	}

	layers = append(layers, d.renderOverlays()...)
	slices.SortStableFunc(layers, func(a, b *lipgloss.Layer) int { return a.GetZ() - b.GetZ() })

	for _, layer := range layers {
		c.Compose(layer)
	}
	return c
}

// View renders the desktop.
func (d *Desktop) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(d.GetCanvas().Render()))
	view.AltScreen = true
	// Drags and pans need motion events with buttons held.
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

// renderBackground draws a dot grid that moves with the pan offset.
func (d *Desktop) renderBackground(area uv.Rectangle) *lipgloss.Layer {
	pan := d.Canvas.State().Pan
	offX := int(math.Round(pan.X / d.cellW))
	offY := int(math.Round(pan.Y / d.cellH))
	dot := lipgloss.NewStyle().Foreground(theme.CanvasDot()).Render("·")

	rows := make([]string, area.Dy())
	for r := range rows {
		if mod(r-offY, gridSpacingY) != 0 {
			rows[r] = strings.Repeat(" ", area.Dx())
			continue
		}
		var sb strings.Builder
		for c := range area.Dx() {
			if mod(c-offX, gridSpacingX) == 0 {
				sb.WriteString(dot)
			} else {
				sb.WriteByte(' ')
			}
		}
		rows[r] = sb.String()
	}
	return lipgloss.NewLayer(strings.Join(rows, "\n")).
		X(area.Min.X).Y(area.Min.Y).Z(config.ZIndexWindows - 1).ID("background")
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}

// zoomLabel formats the global scale as a percentage.
func (d *Desktop) zoomLabel() string {
	return fmt.Sprintf("%d%%", int(math.Round(d.Canvas.Scale()*100)))
}
