package app

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/Gaurav-Gosain/tuicanvas/internal/canvas"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/Gaurav-Gosain/tuicanvas/internal/content"
	"github.com/Gaurav-Gosain/tuicanvas/internal/theme"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

var baseButtonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000"))

func getBorder() lipgloss.Border {
	return config.GetBorderForStyle()
}

// borderColor picks the frame color for a window.
func (d *Desktop) borderColor(w *canvas.Window) color.Color {
	switch {
	case w.Active() && d.Mode == EditMode:
		return theme.BorderEditing()
	case w.Active():
		return theme.BorderFocused()
	default:
		return theme.BorderUnfocused()
	}
}

// renderWindow draws a window's box to exactly fill cells: a header row,
// then the content framed by the left, right and bottom borders.
func (d *Desktop) renderWindow(w *canvas.Window, cells uv.Rectangle) string {
	width, height := cells.Dx(), cells.Dy()
	if width < 2 || height < 1 {
		return ""
	}
	c := d.borderColor(w)
	header := renderHeader(d.Canvas.DisplayName(w.ID), width, c, !config.HideWindowButtons)
	if height < 3 {
		return header
	}

	var body string
	if adapter, ok := d.Canvas.Content(w.ID); ok {
		if s, ok := adapter.(content.Surface); ok {
			body = s.Render(w.Active() && d.Mode == EditMode)
		}
	}
	body = fitBlock(body, width-2, height-2)

	border := getBorder()
	framed := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(c).
		Foreground(theme.ContentFg()).
		Render(body)
	return header + "\n" + framed
}

// renderHeader renders the top border line of a window: the title badge on
// the left and the minimize and close buttons flush right.
func renderHeader(title string, width int, c color.Color, showButtons bool) string {
	border := getBorder()
	borderStyle := lipgloss.NewStyle().Foreground(c)

	var buttons string
	if showButtons && width >= 3*config.HeaderButtonCells {
		buttonStyle := baseButtonStyle.Background(c)
		buttons = buttonStyle.Render(config.GetWindowButtonMinimize()) +
			buttonStyle.Render(config.GetWindowButtonClose())
	}
	buttonsWidth := lipgloss.Width(buttons)

	right := ""
	if buttons == "" {
		right = border.TopRight
	}
	avail := width - ansi.StringWidth(border.TopLeft) - buttonsWidth - ansi.StringWidth(right)
	if avail < 0 {
		return ansi.Truncate(borderStyle.Render(strings.Repeat(border.Top, width)), width, "")
	}

	var badge string
	if title != "" && avail > 4 {
		name := ansi.Truncate(title, avail-2, "…")
		badge = baseButtonStyle.Background(c).Render(" " + name + " ")
	}
	fill := max(avail-lipgloss.Width(badge), 0)

	return borderStyle.Render(border.TopLeft) +
		badge +
		borderStyle.Render(strings.Repeat(border.Top, fill)) +
		buttons +
		borderStyle.Render(right)
}

// fitBlock pads or truncates s to exactly w columns by h rows.
func fitBlock(s string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	out := make([]string, h)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], w, "")
		}
		if pad := w - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// clipWindowContent cuts a rendered box placed at (x, y) down to the part
// inside area and returns it with its new origin. Nothing visible yields "".
func clipWindowContent(box string, x, y int, area uv.Rectangle) (string, int, int) {
	lines := strings.Split(box, "\n")
	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, ansi.StringWidth(line))
	}
	bounds := uv.Rect(x, y, boxWidth, len(lines))
	visible := bounds.Intersect(area)
	if visible.Empty() {
		return "", max(x, area.Min.X), max(y, area.Min.Y)
	}

	lines = lines[visible.Min.Y-y : visible.Max.Y-y]
	left, right := visible.Min.X-x, visible.Max.X-x
	if left > 0 || right < boxWidth {
		for i, line := range lines {
			lines[i] = ansi.Cut(line, left, right) + "\x1b[0m"
		}
	}
	return strings.Join(lines, "\n"), visible.Min.X, visible.Min.Y
}
