package canvas

// Button is a pointer button.
type Button int

const (
	// ButtonNone is used for events without a button.
	ButtonNone Button = iota
	// ButtonPrimary drags windows by their header.
	ButtonPrimary
	// ButtonMiddle pans the canvas.
	ButtonMiddle
	// ButtonSecondary resizes windows.
	ButtonSecondary
)

// Event is a pointer or wheel event in screen pixels.
type Event interface {
	isEvent()
}

// PointerDown is a button press.
type PointerDown struct {
	X, Y   float64
	Button Button
}

// PointerMove is pointer motion, with or without buttons held.
type PointerMove struct {
	X, Y float64
}

// PointerUp is a button release.
type PointerUp struct {
	X, Y   float64
	Button Button
}

// Wheel is a vertical scroll. Negative DeltaY scrolls up. Modifier is set when
// any keyboard modifier was held.
type Wheel struct {
	X, Y     float64
	DeltaY   float64
	Modifier bool
}

func (PointerDown) isEvent() {}
func (PointerMove) isEvent() {}
func (PointerUp) isEvent() {}
func (Wheel) isEvent() {}

// Gesture is the router's global interaction state.
type Gesture int

const (
	// GestureIdle means no button gesture is in progress.
	GestureIdle Gesture = iota
	// GesturePanning means the middle button is moving the canvas.
	GesturePanning
	// GestureDragging means at least one window follows the pointer.
	GestureDragging
	// GestureResizing means a window's content is being resized.
	GestureResizing
)

func (g Gesture) String() string {
	switch g {
	case GesturePanning:
		return "panning"
	case GestureDragging:
		return "dragging"
	case GestureResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Router turns pointer events into pan, drag, resize and zoom operations on a
// Manager. A window never follows a drag while the canvas is panning.
type Router struct {
	m       *Manager
	gesture Gesture
	pan     PanController
	drags   map[WindowID]*DragController
	resize  ResizeController
}

// NewRouter returns a router driving m.
func NewRouter(m *Manager) *Router {
	return &Router{m: m, drags: make(map[WindowID]*DragController)}
}

// Gesture returns the current interaction state.
func (r *Router) Gesture() Gesture { return r.gesture }

// Busy reports whether a button gesture is in progress, so motion events matter.
func (r *Router) Busy() bool { return r.gesture != GestureIdle }

// Drag returns the drag record of a window, if any.
func (r *Router) Drag(id WindowID) (DragController, bool) {
	d, ok := r.drags[id]
	if !ok {
		return DragController{}, false
	}
	return *d, true
}

// Handle applies ev and reports whether it was consumed.
func (r *Router) Handle(ev Event) bool {
	switch e := ev.(type) {
	case PointerDown:
		return r.pointerDown(e)
	case PointerMove:
		return r.pointerMove(e)
	case PointerUp:
		return r.pointerUp(e)
	case Wheel:
		return r.wheel(e)
	}
	return false
}

func (r *Router) pointerDown(e PointerDown) bool {
	at := Point{X: e.X, Y: e.Y}
	switch e.Button {
	case ButtonMiddle:
		for _, d := range r.drags {
			d.Dragging = false
		}
		r.resize = ResizeController{}
		r.pan.Begin(at)
		r.gesture = GesturePanning
		return true

	case ButtonPrimary:
		hit := r.m.HitTest(e.X, e.Y)
		if r.pan.Active() {
			if hit.Part == HitHeader {
				r.m.ActivateWindow(hit.Window)
				r.record(hit.Window).Held = true
			}
			return hit.Part != HitNone
		}
		if r.gesture == GestureResizing {
			return false
		}
		switch hit.Part {
		case HitClose:
			delete(r.drags, hit.Window)
			r.m.CloseWindow(hit.Window)
			return true
		case HitMinimize:
			delete(r.drags, hit.Window)
			r.m.MinimizeWindow(hit.Window)
			return true
		case HitHeader:
			r.m.ActivateWindow(hit.Window)
			w, _ := r.m.Window(hit.Window)
			d := r.record(hit.Window)
			d.Held = true
			d.Begin(at, w.Position)
			r.gesture = GestureDragging
			return true
		case HitContent:
			return true
		}
		return false

	case ButtonSecondary:
		if r.pan.Active() {
			return false
		}
		hit := r.m.HitTest(e.X, e.Y)
		if hit.Part == HitNone {
			return false
		}
		r.m.ActivateWindow(hit.Window)
		w, _ := r.m.Window(hit.Window)
		r.resize = ResizeController{Window: w.ID, StartCursor: at, StartSize: w.ContentSize}
		r.gesture = GestureResizing
		return true
	}
	return false
}

func (r *Router) pointerMove(e PointerMove) bool {
	at := Point{X: e.X, Y: e.Y}
	if r.pan.Active() {
		d := r.pan.Move(at)
		r.m.Pan(d.X, d.Y)
		return true
	}
	switch r.gesture {
	case GestureDragging:
		moved := false
		for id, d := range r.drags {
			w, ok := r.m.Window(id)
			if !ok || w.Minimized() {
				delete(r.drags, id)
				continue
			}
			if !d.Dragging {
				continue
			}
			target := d.Target(at)
			r.m.MoveWindow(id, target.X, target.Y)
			moved = true
		}
		return moved
	case GestureResizing:
		if _, ok := r.m.Window(r.resize.Window); !ok {
			r.gesture = GestureIdle
			return false
		}
		size := r.resize.Target(at)
		r.m.ResizeContent(r.resize.Window, size.W, size.H)
		return true
	}
	return false
}

func (r *Router) pointerUp(e PointerUp) bool {
	at := Point{X: e.X, Y: e.Y}
	switch e.Button {
	case ButtonMiddle:
		if !r.pan.Active() {
			return false
		}
		r.pan.End()
		r.gesture = GestureIdle
		for id, d := range r.drags {
			w, ok := r.m.Window(id)
			if !ok || w.Minimized() || !d.Held {
				delete(r.drags, id)
				continue
			}
			d.Begin(at, w.Position)
			r.m.ActivateWindow(id)
			r.gesture = GestureDragging
		}
		return true

	case ButtonPrimary:
		had := len(r.drags) > 0
		clear(r.drags)
		if r.gesture == GestureDragging {
			r.gesture = GestureIdle
		}
		return had

	case ButtonSecondary:
		if r.gesture != GestureResizing {
			return false
		}
		r.resize = ResizeController{}
		r.gesture = GestureIdle
		return true
	}
	return false
}

func (r *Router) wheel(e Wheel) bool {
	if e.Modifier || e.DeltaY == 0 {
		return false
	}
	if e.DeltaY > 0 {
		r.m.ZoomOut(e.X, e.Y)
	} else {
		r.m.ZoomIn(e.X, e.Y)
	}
	return true
}

func (r *Router) record(id WindowID) *DragController {
	d, ok := r.drags[id]
	if !ok {
		d = &DragController{}
		r.drags[id] = d
	}
	return d
}

// Reset abandons any gesture in progress.
func (r *Router) Reset() {
	r.pan.End()
	clear(r.drags)
	r.resize = ResizeController{}
	r.gesture = GestureIdle
}
