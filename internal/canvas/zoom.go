package canvas

// ZoomToCursor sets the global scale to requested, clamped, and rescales every
// visible window so the point under the cursor stays fixed relative to it.
// Sizes are multiplied by the step factor, so rounding compounds over many steps.
// It reports whether the scale changed.
func (m *Manager) ZoomToCursor(cursorX, cursorY, requested float64) bool {
	newScale := clampScale(requested, m.opts.MinScale, m.opts.MaxScale)
	if newScale == m.state.Scale {
		if requested != newScale {
			m.log.Debug("zoom saturated", "scale", newScale)
		}
		return false
	}
	factor := newScale / m.state.Scale
	cursor := Point{X: cursorX, Y: cursorY}

	for _, id := range m.order {
		w := m.windows[id]
		if w.Minimized() {
			continue
		}
		offset := cursor.Sub(m.ScreenRect(id).Min())
		w.ContentSize = w.ContentSize.Mul(factor)
		if c := m.contents[id]; c != nil {
			c.SetContentScale(newScale)
			c.SetSize(w.ContentSize.W, w.ContentSize.H)
		}
		w.Position = w.Position.Sub(offset.Mul(factor - 1))
	}

	m.log.Debug("zoom", "from", m.state.Scale, "to", newScale, "x", cursorX, "y", cursorY)
	m.state.Scale = newScale
	return true
}

// ZoomIn multiplies the scale by the zoom-in factor around the cursor.
func (m *Manager) ZoomIn(cursorX, cursorY float64) bool {
	return m.ZoomToCursor(cursorX, cursorY, m.state.Scale*m.opts.ZoomInFactor)
}

// ZoomOut multiplies the scale by the zoom-out factor around the cursor.
func (m *Manager) ZoomOut(cursorX, cursorY float64) bool {
	return m.ZoomToCursor(cursorX, cursorY, m.state.Scale*m.opts.ZoomOutFactor)
}

// ResetZoom returns to scale 1 around the cursor.
func (m *Manager) ResetZoom(cursorX, cursorY float64) bool {
	return m.ZoomToCursor(cursorX, cursorY, 1)
}
