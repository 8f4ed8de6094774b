package app

import (
	"fmt"
	"path/filepath"

	"github.com/Gaurav-Gosain/tuicanvas/internal/canvas"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/Gaurav-Gosain/tuicanvas/internal/content"
	"github.com/Gaurav-Gosain/tuicanvas/internal/files"
)

// NewTextWindow opens an empty text window. An empty name uses the default.
func (d *Desktop) NewTextWindow(name string) *canvas.Window {
	if name == "" {
		name = canvas.ContentText.DefaultName()
	}
	w := d.Canvas.CreateWindow(name, nil)
	d.LogInfo("Created window %s", name)
	return w
}

// OpenDocument opens a loaded file as a text or image window.
func (d *Desktop) OpenDocument(doc files.Document) *canvas.Window {
	var w *canvas.Window
	if doc.IsImage {
		w = d.Canvas.CreateImageWindow(doc.Name, doc.Data)
	} else {
		w = d.Canvas.CreateWindow(doc.Name, doc.Data)
	}
	d.LogInfo("Opened %s (%d bytes)", doc.Name, len(doc.Data))
	return w
}

// CloseActive closes the focused window.
func (d *Desktop) CloseActive() {
	if w := d.Canvas.ActiveWindow(); w != nil {
		d.Canvas.CloseWindow(w.ID)
	}
}

// MinimizeActive minimizes the focused window.
func (d *Desktop) MinimizeActive() {
	if w := d.Canvas.ActiveWindow(); w != nil {
		d.Canvas.MinimizeWindow(w.ID)
	}
}

// RestoreAll restores every minimized window; the last one ends up focused.
func (d *Desktop) RestoreAll() int {
	n := 0
	for _, w := range d.Canvas.Windows() {
		if w.Minimized() {
			d.Canvas.RestoreWindow(w.ID)
			n++
		}
	}
	return n
}

// SaveActive saves the focused window.
func (d *Desktop) SaveActive() {
	if d.Canvas.Len() == 0 {
		d.ShowNotification(NoWindowsToSave, "warning", config.NotificationDuration)
		return
	}
	w := d.Canvas.ActiveWindow()
	if w == nil {
		d.ShowNotification(NoActiveToSave, "warning", config.NotificationDuration)
		return
	}
	item, _ := d.Canvas.ContentForSave(w.ID)
	path, err := files.Save(d.SaveDir, item.Name, item.Data)
	if err != nil {
		d.ShowNotification(err.Error(), "error", config.ErrorNotificationDuration)
		return
	}
	d.ShowNotification("Saved "+filepath.Base(path), "success", config.NotificationDuration)
}

// SaveAllWindows saves every window, minimized ones included.
func (d *Desktop) SaveAllWindows() {
	windows := d.Canvas.Windows()
	if len(windows) == 0 {
		d.ShowNotification(NoWindowsToSave, "warning", config.NotificationDuration)
		return
	}
	items := make([]canvas.SaveContent, 0, len(windows))
	for _, w := range windows {
		if item, ok := d.Canvas.ContentForSave(w.ID); ok {
			items = append(items, item)
		}
	}
	paths, err := files.SaveAll(d.SaveDir, items)
	if err != nil {
		d.ShowNotification(err.Error(), "error", config.ErrorNotificationDuration)
	}
	if len(paths) > 0 {
		d.ShowNotification(fmt.Sprintf("Saved %d file(s)", len(paths)), "success", config.NotificationDuration)
	}
}

// ActiveEditor returns the focused window's surface when it accepts typing.
func (d *Desktop) ActiveEditor() (content.Editor, bool) {
	w := d.Canvas.ActiveWindow()
	if w == nil {
		return nil, false
	}
	c, ok := d.Canvas.Content(w.ID)
	if !ok {
		return nil, false
	}
	e, ok := c.(content.Editor)
	return e, ok
}

// EnterEditMode starts typing into the focused text window.
func (d *Desktop) EnterEditMode() bool {
	if _, ok := d.ActiveEditor(); !ok {
		if d.Canvas.ActiveWindow() != nil {
			d.ShowNotification("Image windows are read-only", "info", config.NotificationDuration)
		}
		return false
	}
	d.Router.Reset()
	d.Mode = EditMode
	return true
}

// ExitEditMode returns to canvas mode.
func (d *Desktop) ExitEditMode() {
	d.Mode = CanvasMode
}

// ZoomCenter zooms by one step around the middle of the canvas. A positive
// direction zooms in, negative out and zero resets.
func (d *Desktop) ZoomCenter(direction int) bool {
	c := d.Canvas.ViewportCenter()
	switch {
	case direction > 0:
		return d.Canvas.ZoomIn(c.X, c.Y)
	case direction < 0:
		return d.Canvas.ZoomOut(c.X, c.Y)
	default:
		return d.Canvas.ResetZoom(c.X, c.Y)
	}
}

// PanView moves the view by panStep cells per unit; the canvas content moves
// the opposite way.
func (d *Desktop) PanView(dx, dy int) {
	step := float64(d.panStep)
	d.Canvas.Pan(-float64(dx)*step*d.cellW, -float64(dy)*step*d.cellH)
}

// MoveActive shifts the focused window by MoveStep cells per unit.
func (d *Desktop) MoveActive(dx, dy int) {
	w := d.Canvas.ActiveWindow()
	if w == nil {
		return
	}
	step := float64(config.DefaultMoveStep)
	d.Canvas.MoveWindow(w.ID, w.Position.X+float64(dx)*step*d.cellW, w.Position.Y+float64(dy)*step*d.cellH)
}
