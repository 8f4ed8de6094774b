package canvas

import "testing"

// With a 1000x800 viewport the first window sits at (200, 220), 600 wide,
// header rows 220..240, close button 770..800, minimize button 740..770.
var headerPoint = Point{X: 300, Y: 230}

func TestPanRoundTrip(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.CreateWindow("a", nil)
	r := NewRouter(m)
	pos := w.Position

	r.Handle(PointerDown{X: 10, Y: 10, Button: ButtonMiddle})
	r.Handle(PointerMove{X: 60, Y: 40})
	r.Handle(PointerMove{X: 30, Y: 20})
	r.Handle(PointerUp{X: 30, Y: 20, Button: ButtonMiddle})

	if got := m.State().Pan; got != (Point{X: 20, Y: 10}) {
		t.Fatalf("Pan = %+v, want (20, 10)", got)
	}
	if w.Position != pos {
		t.Errorf("window position changed to %+v during pan", w.Position)
	}

	r.Handle(PointerDown{X: 30, Y: 20, Button: ButtonMiddle})
	r.Handle(PointerMove{X: 10, Y: 10})
	r.Handle(PointerUp{X: 10, Y: 10, Button: ButtonMiddle})

	if got := m.State().Pan; got != (Point{}) {
		t.Errorf("Pan = %+v after reverse pan, want origin", got)
	}
	if r.Gesture() != GestureIdle {
		t.Errorf("Gesture = %v, want idle", r.Gesture())
	}
}

func TestHeaderDragIgnoresScale(t *testing.T) {
	for _, scale := range []float64{0.5, 1, 2.5} {
		m, _ := newTestManager(t)
		w := m.CreateWindow("a", nil)
		m.ZoomToCursor(0, 0, scale)
		r := NewRouter(m)
		start := m.ScreenRect(w.ID).Min()
		pos := w.Position

		grab := start.Add(Point{X: 5, Y: 5})
		r.Handle(PointerDown{X: grab.X, Y: grab.Y, Button: ButtonPrimary})
		if r.Gesture() != GestureDragging {
			t.Fatalf("scale %v: Gesture = %v, want dragging", scale, r.Gesture())
		}
		r.Handle(PointerMove{X: grab.X + 50, Y: grab.Y + 30})
		r.Handle(PointerUp{X: grab.X + 50, Y: grab.Y + 30, Button: ButtonPrimary})

		want := pos.Add(Point{X: 50, Y: 30})
		if !approx(w.Position.X, want.X) || !approx(w.Position.Y, want.Y) {
			t.Errorf("scale %v: Position = %+v, want %+v", scale, w.Position, want)
		}
		if r.Gesture() != GestureIdle {
			t.Errorf("scale %v: Gesture = %v after release", scale, r.Gesture())
		}
	}
}

func TestHeaderPressActivatesBeforeDrag(t *testing.T) {
	m, _ := newTestManager(t)
	a := m.CreateWindow("a", nil)
	b := m.CreateWindow("b", nil)
	m.MoveWindow(b.ID, 2000, 2000)
	r := NewRouter(m)

	r.Handle(PointerDown{X: headerPoint.X, Y: headerPoint.Y, Button: ButtonPrimary})

	if !a.Active() || b.Active() {
		t.Errorf("a active=%v b active=%v, want only a", a.Active(), b.Active())
	}
	checkFocusInvariant(t, m)
}

func TestContentPressDoesNotActivate(t *testing.T) {
	m, _ := newTestManager(t)
	a := m.CreateWindow("a", nil)
	b := m.CreateWindow("b", nil)
	m.MoveWindow(b.ID, 2000, 2000)
	r := NewRouter(m)

	r.Handle(PointerDown{X: 300, Y: 400, Button: ButtonPrimary})

	if a.Active() || !b.Active() {
		t.Error("content press changed focus")
	}
	if r.Gesture() != GestureIdle {
		t.Errorf("Gesture = %v, want idle", r.Gesture())
	}
}

func TestPanSuppressesDragAndTransfersOnRelease(t *testing.T) {
	m, _ := newTestManager(t)
	a := m.CreateWindow("a", nil)
	b := m.CreateWindow("b", nil)
	m.MoveWindow(b.ID, 2000, 2000)
	r := NewRouter(m)
	pos := a.Position

	r.Handle(PointerDown{X: 0, Y: 0, Button: ButtonMiddle})
	r.Handle(PointerDown{X: headerPoint.X, Y: headerPoint.Y, Button: ButtonPrimary})
	r.Handle(PointerMove{X: 40, Y: 25})

	if a.Position != pos {
		t.Fatalf("window moved during pan: %+v", a.Position)
	}
	if got := m.State().Pan; got != (Point{X: 40, Y: 25}) {
		t.Fatalf("Pan = %+v, want (40, 25)", got)
	}
	if !a.Active() || b.Active() {
		t.Fatalf("during pan a active=%v b active=%v, want a focused by the header press", a.Active(), b.Active())
	}
	if r.Gesture() != GesturePanning {
		t.Fatalf("Gesture = %v during pan, want panning", r.Gesture())
	}

	r.Handle(PointerUp{X: 40, Y: 25, Button: ButtonMiddle})
	if r.Gesture() != GestureDragging || !a.Active() {
		t.Fatalf("after pan end gesture=%v active=%v, want dragging and active", r.Gesture(), a.Active())
	}

	r.Handle(PointerMove{X: 50, Y: 30})
	if want := pos.Add(Point{X: 10, Y: 5}); a.Position != want {
		t.Errorf("Position = %+v, want %+v", a.Position, want)
	}
	checkFocusInvariant(t, m)
}

func TestMiddlePressPausesActiveDrag(t *testing.T) {
	m, _ := newTestManager(t)
	a := m.CreateWindow("a", nil)
	r := NewRouter(m)

	r.Handle(PointerDown{X: headerPoint.X, Y: headerPoint.Y, Button: ButtonPrimary})
	r.Handle(PointerMove{X: headerPoint.X + 10, Y: headerPoint.Y})
	moved := a.Position

	r.Handle(PointerDown{X: 0, Y: 0, Button: ButtonMiddle})
	r.Handle(PointerMove{X: 15, Y: 15})
	if a.Position != moved {
		t.Errorf("window followed pointer while panning: %+v", a.Position)
	}

	r.Handle(PointerUp{X: 15, Y: 15, Button: ButtonMiddle})
	r.Handle(PointerUp{X: 15, Y: 15, Button: ButtonPrimary})
	if r.Gesture() != GestureIdle {
		t.Errorf("Gesture = %v, want idle", r.Gesture())
	}
	if _, ok := r.Drag(a.ID); ok {
		t.Error("drag record survived primary release")
	}
}

func TestHeaderButtons(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		check func(t *testing.T, m *Manager, w *Window)
	}{
		{
			name: "close",
			x:    790,
			check: func(t *testing.T, m *Manager, w *Window) {
				if _, ok := m.Window(w.ID); ok {
					t.Error("window still open")
				}
			},
		},
		{
			name: "minimize",
			x:    750,
			check: func(t *testing.T, m *Manager, w *Window) {
				if !w.Minimized() {
					t.Error("window not minimized")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t)
			w := m.CreateWindow("a", nil)
			r := NewRouter(m)

			if !r.Handle(PointerDown{X: tt.x, Y: 225, Button: ButtonPrimary}) {
				t.Fatal("button press not consumed")
			}
			tt.check(t, m, w)
			if r.Gesture() != GestureIdle {
				t.Errorf("Gesture = %v, want idle", r.Gesture())
			}
		})
	}
}

func TestPrimaryPressIgnoredWhileResizing(t *testing.T) {
	m, _ := newTestManager(t)
	w := m.CreateWindow("a", nil)
	r := NewRouter(m)
	pos := w.Position

	r.Handle(PointerDown{X: 700, Y: 500, Button: ButtonSecondary})
	if r.Gesture() != GestureResizing {
		t.Fatalf("Gesture = %v, want resizing", r.Gesture())
	}
	if r.Handle(PointerDown{X: headerPoint.X, Y: headerPoint.Y, Button: ButtonPrimary}) {
		t.Error("primary press during resize was consumed")
	}
	if r.Gesture() != GestureResizing {
		t.Fatalf("Gesture = %v after primary press, want resizing", r.Gesture())
	}

	r.Handle(PointerMove{X: 720, Y: 510})
	if w.Position != pos {
		t.Errorf("window dragged during resize: %+v", w.Position)
	}
	if w.ContentSize != (Size{W: 620, H: 370}) {
		t.Errorf("ContentSize = %+v, want 620x370", w.ContentSize)
	}

	if !r.Handle(PointerUp{X: 720, Y: 510, Button: ButtonSecondary}) {
		t.Error("secondary release did not end the resize")
	}
	if r.Gesture() != GestureIdle {
		t.Errorf("Gesture = %v, want idle", r.Gesture())
	}
}

func TestResizeClampsToMinimum(t *testing.T) {
	m, f := newTestManager(t)
	w := m.CreateWindow("a", nil)
	r := NewRouter(m)

	r.Handle(PointerDown{X: 700, Y: 500, Button: ButtonSecondary})
	r.Handle(PointerMove{X: 750, Y: 540})
	if w.ContentSize != (Size{W: 650, H: 400}) {
		t.Errorf("ContentSize = %+v, want 650x400", w.ContentSize)
	}

	r.Handle(PointerMove{X: -1000, Y: -1000})
	minSize := m.Options().MinContentSize
	if w.ContentSize != minSize {
		t.Errorf("ContentSize = %+v, want minimum %+v", w.ContentSize, minSize)
	}
	if f.created["a"].size != minSize {
		t.Errorf("adapter size = %+v, want %+v", f.created["a"].size, minSize)
	}

	r.Handle(PointerUp{X: -1000, Y: -1000, Button: ButtonSecondary})
	if r.Gesture() != GestureIdle {
		t.Errorf("Gesture = %v, want idle", r.Gesture())
	}
}

func TestWheel(t *testing.T) {
	tests := []struct {
		name      string
		ev        Wheel
		consumed  bool
		wantScale float64
	}{
		{name: "up zooms in", ev: Wheel{X: 1, Y: 1, DeltaY: -1}, consumed: true, wantScale: 1.1},
		{name: "down zooms out", ev: Wheel{X: 1, Y: 1, DeltaY: 1}, consumed: true, wantScale: 0.9},
		{name: "modifier passes through", ev: Wheel{DeltaY: -1, Modifier: true}, wantScale: 1},
		{name: "zero delta", ev: Wheel{}, wantScale: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t)
			r := NewRouter(m)
			if got := r.Handle(tt.ev); got != tt.consumed {
				t.Errorf("consumed = %v, want %v", got, tt.consumed)
			}
			if !approx(m.Scale(), tt.wantScale) {
				t.Errorf("Scale = %v, want %v", m.Scale(), tt.wantScale)
			}
		})
	}
}

func TestHitTestPrefersTopmost(t *testing.T) {
	m, _ := newTestManager(t)
	a := m.CreateWindow("a", nil)
	b := m.CreateWindow("b", nil)

	if hit := m.HitTest(headerPoint.X, headerPoint.Y); hit.Window != b.ID || hit.Part != HitHeader {
		t.Errorf("hit = %+v, want b header", hit)
	}
	m.ActivateWindow(a.ID)
	if hit := m.HitTest(headerPoint.X, 300); hit.Window != a.ID || hit.Part != HitContent {
		t.Errorf("hit = %+v, want a content", hit)
	}
	m.MinimizeWindow(a.ID)
	m.MinimizeWindow(b.ID)
	if hit := m.HitTest(headerPoint.X, headerPoint.Y); hit.Part != HitNone {
		t.Errorf("hit = %+v, want none when all minimized", hit)
	}
}
