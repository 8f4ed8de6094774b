package canvas

// PanController tracks a middle-button pan. Each move applies only the delta
// since the previous move.
type PanController struct {
	active bool
	last   Point
}

// Active reports whether a pan is in progress.
func (p *PanController) Active() bool { return p.active }

// Begin starts panning at the cursor.
func (p *PanController) Begin(at Point) {
	p.active = true
	p.last = at
}

// Move returns the delta since the last cursor position.
func (p *PanController) Move(at Point) Point {
	d := at.Sub(p.last)
	p.last = at
	return d
}

// End stops panning.
func (p *PanController) End() { p.active = false }

// DragController tracks a header drag for one window. Held records that the
// primary button went down on the header, even while a pan suppressed the drag.
type DragController struct {
	Held        bool
	Dragging    bool
	StartCursor Point
	StartPos    Point
}

// Begin starts dragging from the window's current position.
func (d *DragController) Begin(cursor, pos Point) {
	d.Dragging = true
	d.StartCursor = cursor
	d.StartPos = pos
}

// Target returns the window position for the cursor. Movement is 1:1 with the
// pointer regardless of scale.
func (d *DragController) Target(cursor Point) Point {
	return d.StartPos.Add(cursor.Sub(d.StartCursor))
}

// Reset clears the record.
func (d *DragController) Reset() { *d = DragController{} }

// ResizeController tracks a bottom-right resize of one window.
type ResizeController struct {
	Window      WindowID
	StartCursor Point
	StartSize   Size
}

// Target returns the requested content size for the cursor.
func (r *ResizeController) Target(cursor Point) Size {
	d := cursor.Sub(r.StartCursor)
	return Size{W: r.StartSize.W + d.X, H: r.StartSize.H + d.Y}
}
