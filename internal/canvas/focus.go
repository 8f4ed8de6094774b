package canvas

// FocusRegistry records the focused window and its tab. Both are empty or both are set.
type FocusRegistry struct {
	window WindowID
	tab    TabID
}

// Window returns the focused window id, or "" when nothing is focused.
func (f FocusRegistry) Window() WindowID { return f.window }

// Tab returns the focused tab id, or "" when nothing is focused.
func (f FocusRegistry) Tab() TabID { return f.tab }

// Empty reports whether nothing is focused.
func (f FocusRegistry) Empty() bool { return f.window == "" }

func (f *FocusRegistry) set(w WindowID, t TabID) {
	f.window, f.tab = w, t
}

func (f *FocusRegistry) clear() {
	f.window, f.tab = "", ""
}
