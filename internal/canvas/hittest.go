package canvas

import "slices"

// HitPart is the region of a window under a point.
type HitPart int

const (
	// HitNone means the point is on the bare canvas.
	HitNone HitPart = iota
	// HitHeader is the draggable title bar.
	HitHeader
	// HitClose is the close button in the header.
	HitClose
	// HitMinimize is the minimize button in the header.
	HitMinimize
	// HitContent is the content region.
	HitContent
)

func (p HitPart) String() string {
	switch p {
	case HitHeader:
		return "header"
	case HitClose:
		return "close"
	case HitMinimize:
		return "minimize"
	case HitContent:
		return "content"
	default:
		return "none"
	}
}

// Hit is the result of HitTest.
type Hit struct {
	Window WindowID
	Part   HitPart
}

// HitTest returns the topmost visible window part under the screen point.
func (m *Manager) HitTest(x, y float64) Hit {
	p := Point{X: x, Y: y}
	for _, w := range m.stacked() {
		r := m.ScreenRect(w.ID)
		if !r.Contains(p) {
			continue
		}
		if y >= r.Y+m.opts.HeaderHeight {
			return Hit{Window: w.ID, Part: HitContent}
		}
		return Hit{Window: w.ID, Part: m.headerPart(r, x)}
	}
	return Hit{}
}

func (m *Manager) headerPart(r Rect, x float64) HitPart {
	bw := m.opts.ButtonWidth
	if bw <= 0 || r.W < 3*bw {
		return HitHeader
	}
	right := r.X + r.W
	switch {
	case x >= right-bw:
		return HitClose
	case x >= right-2*bw:
		return HitMinimize
	default:
		return HitHeader
	}
}

// stacked returns visible windows from top to bottom.
func (m *Manager) stacked() []*Window {
	out := make([]*Window, 0, len(m.order))
	for _, id := range m.order {
		if w := m.windows[id]; !w.Minimized() {
			out = append(out, w)
		}
	}
	slices.SortStableFunc(out, func(a, b *Window) int { return b.Z - a.Z })
	return out
}

// Stacked returns visible windows from bottom to top, the order to draw them in.
func (m *Manager) Stacked() []*Window {
	out := m.stacked()
	slices.Reverse(out)
	return out
}
