package canvas

// WindowID identifies a window for the lifetime of the manager.
type WindowID string

// TabID identifies a tab strip entry.
type TabID string

// VisibilityState is whether a window is drawn on the canvas.
type VisibilityState int

const (
	// VisibilityNormal windows are drawn and hit tested.
	VisibilityNormal VisibilityState = iota
	// VisibilityMinimized windows only exist in the tab strip.
	VisibilityMinimized
)

func (v VisibilityState) String() string {
	if v == VisibilityMinimized {
		return "minimized"
	}
	return "normal"
}

// FocusState is whether a window holds focus.
type FocusState int

const (
	// FocusInactive is the default state.
	FocusInactive FocusState = iota
	// FocusActive marks the single focused window.
	FocusActive
)

func (f FocusState) String() string {
	if f == FocusActive {
		return "active"
	}
	return "inactive"
}

// TabState mirrors the bound window's visibility and focus.
type TabState int

const (
	// TabInactive is a visible, unfocused window.
	TabInactive TabState = iota
	// TabActive is bound to the focused window.
	TabActive
	// TabMinimized is bound to a minimized window.
	TabMinimized
)

func (s TabState) String() string {
	switch s {
	case TabActive:
		return "active"
	case TabMinimized:
		return "minimized"
	default:
		return "inactive"
	}
}

// Window is a floating rectangle on the canvas. Its rendered box is the header
// bar followed by the content region.
type Window struct {
	ID   WindowID
	Kind ContentKind
	Name string

	// Position is the top-left corner in canvas space; add State.Pan for screen space.
	Position Point
	// BaseSize is the logical content size at scale 1.
	BaseSize Size
	// ContentSize is the rendered content size at the current scale.
	ContentSize Size
	// LastSize is the logical size recorded on the last minimize.
	LastSize *Size

	Visibility VisibilityState
	Focus      FocusState
	Z          int
}

// Minimized reports whether the window is hidden from the canvas.
func (w *Window) Minimized() bool { return w.Visibility == VisibilityMinimized }

// Active reports whether the window holds focus.
func (w *Window) Active() bool { return w.Focus == FocusActive }

// Tab is the tab strip entry for exactly one window.
type Tab struct {
	ID       TabID
	WindowID WindowID
	Label    string
	State    TabState
}
