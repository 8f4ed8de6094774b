package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuicanvas/internal/app"
	"github.com/Gaurav-Gosain/tuicanvas/internal/canvas"
)

// toButton maps a terminal mouse button to a router button.
func toButton(b tea.MouseButton) canvas.Button {
	switch b {
	case tea.MouseLeft:
		return canvas.ButtonPrimary
	case tea.MouseMiddle:
		return canvas.ButtonMiddle
	case tea.MouseRight:
		return canvas.ButtonSecondary
	default:
		return canvas.ButtonNone
	}
}

// overlayOpen reports whether a modal overlay swallows pointer input.
func overlayOpen(d *app.Desktop) bool {
	return d.Prompt != nil || d.ShowHelp || d.ShowLogs
}

func handleMouseClick(msg tea.MouseClickMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	d.LastMouseX, d.LastMouseY = mouse.X, mouse.Y
	if overlayOpen(d) {
		return d, nil
	}

	button := toButton(mouse.Button)
	if button == canvas.ButtonNone {
		return d, nil
	}

	if mouse.Y == d.TabStripRow() {
		if button == canvas.ButtonPrimary && !d.Router.Busy() {
			if tab, ok := d.TabAt(mouse.X, mouse.Y); ok {
				d.Canvas.ClickTab(tab)
			}
		}
		return d, nil
	}
	if !d.InCanvas(mouse.Y) {
		return d, nil
	}

	d.PressedButton = button
	x, y := d.CellToCanvas(mouse.X, mouse.Y)
	d.Router.Handle(canvas.PointerDown{X: x, Y: y, Button: button})
	return d, nil
}

func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	d.LastMouseX, d.LastMouseY = mouse.X, mouse.Y
	if !d.Router.Busy() {
		return d, nil
	}
	x, y := d.CellToCanvas(mouse.X, mouse.Y)
	d.Router.Handle(canvas.PointerMove{X: x, Y: y})
	return d, nil
}

func handleMouseRelease(msg tea.MouseReleaseMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	d.LastMouseX, d.LastMouseY = mouse.X, mouse.Y

	button := toButton(mouse.Button)
	if button == canvas.ButtonNone {
		button = d.PressedButton
	}
	d.PressedButton = canvas.ButtonNone
	if button == canvas.ButtonNone {
		return d, nil
	}

	x, y := d.CellToCanvas(mouse.X, mouse.Y)
	d.Router.Handle(canvas.PointerUp{X: x, Y: y, Button: button})
	return d, nil
}

func handleMouseWheel(msg tea.MouseWheelMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()

	var delta int
	switch mouse.Button {
	case tea.MouseWheelUp:
		delta = -1
	case tea.MouseWheelDown:
		delta = 1
	default:
		return d, nil
	}

	switch {
	case d.ShowLogs:
		_, maxScroll := app.LogScrollBounds(d.Height, len(d.LogMessages))
		d.LogScrollOffset = max(0, min(d.LogScrollOffset+delta, maxScroll))
		return d, nil
	case d.ShowHelp:
		d.HelpScrollOffset = max(d.HelpScrollOffset+delta, 0)
		return d, nil
	case d.Prompt != nil || !d.InCanvas(mouse.Y):
		return d, nil
	}

	x, y := d.CellToCanvas(mouse.X, mouse.Y)
	d.Router.Handle(canvas.Wheel{
		X:        x,
		Y:        y,
		DeltaY:   float64(delta),
		Modifier: mouse.Mod != 0,
	})
	return d, nil
}
