// Package canvas implements the windowed canvas: a pannable, zoomable surface
// that owns floating windows, their tabs, focus and the pointer gestures that
// move them around. It has no knowledge of terminals or rendering; content is
// reached only through ContentAdapter.
package canvas

// State is the global view transform shared by every window.
type State struct {
	// Pan is added to a window's position to get its screen position.
	Pan Point
	// Scale multiplies every window's logical size.
	Scale float64
}

func clampScale(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
