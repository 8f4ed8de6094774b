package canvas

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options configures a Manager. Zero fields take the values from DefaultOptions.
type Options struct {
	// Factory creates the content adapter of every new window.
	Factory ContentFactory
	// Logger receives debug entries about window lifecycle and zoom.
	Logger *log.Logger
	// OnFocusChange is called after focus moved, with the new pair (possibly empty).
	OnFocusChange func(window WindowID, tab TabID)

	MinScale      float64
	MaxScale      float64
	ZoomInFactor  float64
	ZoomOutFactor float64

	// DefaultSize is the logical content size of new windows.
	DefaultSize Size
	// MinContentSize bounds interactive resizing.
	MinContentSize Size
	// HeaderHeight is the unscaled height of the title bar.
	HeaderHeight float64
	// ButtonWidth is the width of each header button.
	ButtonWidth float64
	// HideButtons removes the close and minimize buttons from the header.
	HideButtons bool
}

// DefaultOptions returns the stock canvas configuration.
func DefaultOptions() Options {
	return Options{
		MinScale:       0.5,
		MaxScale:       3.0,
		ZoomInFactor:   1.1,
		ZoomOutFactor:  0.9,
		DefaultSize:    Size{W: 600, H: 360},
		MinContentSize: Size{W: 100, H: 40},
		HeaderHeight:   20,
		ButtonWidth:    30,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Factory == nil {
		o.Factory = memoryFactory
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.MinScale <= 0 {
		o.MinScale = d.MinScale
	}
	if o.MaxScale < o.MinScale {
		o.MaxScale = max(d.MaxScale, o.MinScale)
	}
	if o.ZoomInFactor <= 1 {
		o.ZoomInFactor = d.ZoomInFactor
	}
	if o.ZoomOutFactor <= 0 || o.ZoomOutFactor >= 1 {
		o.ZoomOutFactor = d.ZoomOutFactor
	}
	if o.DefaultSize.W <= 0 || o.DefaultSize.H <= 0 {
		o.DefaultSize = d.DefaultSize
	}
	if o.MinContentSize.W <= 0 || o.MinContentSize.H <= 0 {
		o.MinContentSize = d.MinContentSize
	}
	if o.HeaderHeight <= 0 {
		o.HeaderHeight = d.HeaderHeight
	}
	switch {
	case o.HideButtons:
		o.ButtonWidth = 0
	case o.ButtonWidth <= 0:
		o.ButtonWidth = d.ButtonWidth
	}
	return o
}

// Manager owns every window, tab and content adapter on the canvas together
// with the view transform and focus. It is not safe for concurrent use.
type Manager struct {
	opts Options
	log  *log.Logger

	state    State
	viewport Size
	focus    FocusRegistry

	windows  map[WindowID]*Window
	order    []WindowID
	tabs     map[TabID]*Tab
	tabOf    map[WindowID]TabID
	contents map[WindowID]ContentAdapter
}

// NewManager returns an empty canvas at scale 1 with no pan.
func NewManager(opts Options) *Manager {
	opts = opts.withDefaults()
	return &Manager{
		opts:     opts,
		log:      opts.Logger.WithPrefix("canvas"),
		state:    State{Scale: clampScale(1, opts.MinScale, opts.MaxScale)},
		windows:  make(map[WindowID]*Window),
		tabs:     make(map[TabID]*Tab),
		tabOf:    make(map[WindowID]TabID),
		contents: make(map[WindowID]ContentAdapter),
	}
}

// Options returns the effective configuration.
func (m *Manager) Options() Options { return m.opts }

// State returns the current view transform.
func (m *Manager) State() State { return m.state }

// Scale returns the global scale.
func (m *Manager) Scale() float64 { return m.state.Scale }

// Focus returns the focused window/tab pair.
func (m *Manager) Focus() FocusRegistry { return m.focus }

// SetViewport records the visible canvas area used to center new windows.
func (m *Manager) SetViewport(w, h float64) {
	m.viewport = Size{W: max(w, 0), H: max(h, 0)}
}

// Viewport returns the visible canvas area.
func (m *Manager) Viewport() Size { return m.viewport }

// ViewportCenter returns the middle of the visible area in screen space.
func (m *Manager) ViewportCenter() Point {
	return Point{X: m.viewport.W / 2, Y: m.viewport.H / 2}
}

// CreateWindow opens a text window centered in the viewport and focuses it.
func (m *Manager) CreateWindow(name string, content []byte) *Window {
	return m.createWindow(ContentText, name, content)
}

// CreateImageWindow opens an image window centered in the viewport and focuses it.
func (m *Manager) CreateImageWindow(name string, data []byte) *Window {
	return m.createWindow(ContentImage, name, data)
}

func (m *Manager) createWindow(kind ContentKind, name string, initial []byte) *Window {
	base := m.opts.DefaultSize
	w := &Window{
		ID:   WindowID(uuid.New().String()),
		Kind: kind,
		Name: name,
		Position: Point{
			X: -m.state.Pan.X + (m.viewport.W-base.W)/2,
			Y: -m.state.Pan.Y + (m.viewport.H-base.H)/2,
		},
		BaseSize:    base,
		ContentSize: base.Mul(m.state.Scale),
		Z:           len(m.order),
	}
	tab := &Tab{
		ID:       TabID(uuid.New().String()),
		WindowID: w.ID,
		Label:    name,
	}

	m.windows[w.ID] = w
	m.order = append(m.order, w.ID)
	m.tabs[tab.ID] = tab
	m.tabOf[w.ID] = tab.ID

	content := m.opts.Factory.Create(kind, name, initial)
	if content == nil {
		content = memoryFactory.Create(kind, name, initial)
	}
	m.contents[w.ID] = content
	content.SetContentScale(m.state.Scale)
	content.SetSize(w.ContentSize.W, w.ContentSize.H)

	m.log.Debug("window created", "id", w.ID, "kind", kind, "name", name)
	m.activate(w.ID)
	return w
}

// CloseWindow destroys a window and its tab. Focus moves to the most recently
// created visible window only when the closed window was focused.
func (m *Manager) CloseWindow(id WindowID) {
	w, ok := m.windows[id]
	if !ok {
		m.log.Debug("close of unknown window ignored", "id", id)
		return
	}
	wasActive := m.focus.window == id

	if c := m.contents[id]; c != nil {
		c.Destroy()
	}
	delete(m.contents, id)
	delete(m.tabs, m.tabOf[id])
	delete(m.tabOf, id)
	delete(m.windows, id)
	m.order = slices.DeleteFunc(m.order, func(other WindowID) bool { return other == id })
	m.log.Debug("window closed", "id", id, "name", w.Name)

	if !wasActive {
		return
	}
	m.focus.clear()
	for i := len(m.order) - 1; i >= 0; i-- {
		if next := m.windows[m.order[i]]; !next.Minimized() {
			m.activate(next.ID)
			return
		}
	}
	m.notifyFocus()
}

// MinimizeWindow hides a window and records its logical size. A focused window
// loses focus and nothing else receives it.
func (m *Manager) MinimizeWindow(id WindowID) {
	w, ok := m.windows[id]
	if !ok || w.Minimized() {
		return
	}
	last := w.ContentSize.Div(m.state.Scale)
	w.LastSize = &last
	w.Visibility = VisibilityMinimized
	w.Focus = FocusInactive
	if tab := m.tabs[m.tabOf[id]]; tab != nil {
		tab.State = TabMinimized
	}
	m.log.Debug("window minimized", "id", id, "last_w", last.W, "last_h", last.H)

	if m.focus.window == id {
		m.focus.clear()
		m.notifyFocus()
	}
}

// RestoreWindow shows a minimized window at its recorded logical size times the
// current scale and focuses it. Restoring a visible window just focuses it.
func (m *Manager) RestoreWindow(id WindowID) {
	w, ok := m.windows[id]
	if !ok {
		return
	}
	if w.Minimized() {
		logical := w.BaseSize
		if w.LastSize != nil {
			logical = *w.LastSize
		}
		w.ContentSize = logical.Mul(m.state.Scale)
		if c := m.contents[id]; c != nil {
			c.SetContentScale(m.state.Scale)
			c.SetSize(w.ContentSize.W, w.ContentSize.H)
		}
		w.Visibility = VisibilityNormal
		if tab := m.tabs[m.tabOf[id]]; tab != nil {
			tab.State = TabInactive
		}
		m.log.Debug("window restored", "id", id)
	}
	m.activate(id)
}

// ActivateWindow focuses a visible window. Minimized windows are left alone.
func (m *Manager) ActivateWindow(id WindowID) bool {
	w, ok := m.windows[id]
	if !ok || w.Minimized() {
		return false
	}
	m.activate(id)
	return true
}

// ClickTab restores a minimized window or focuses a visible one.
func (m *Manager) ClickTab(id TabID) {
	tab, ok := m.tabs[id]
	if !ok {
		return
	}
	w := m.windows[tab.WindowID]
	if w.Minimized() {
		m.RestoreWindow(w.ID)
		return
	}
	m.activate(w.ID)
}

// CycleTabs moves focus delta tabs along the strip, restoring minimized targets.
func (m *Manager) CycleTabs(delta int) {
	n := len(m.order)
	if n == 0 || delta == 0 {
		return
	}
	cur := slices.Index(m.order, m.focus.window)
	if cur < 0 {
		if delta > 0 {
			cur = -1
		} else {
			cur = 0
		}
	}
	next := ((cur+delta)%n + n) % n
	m.ClickTab(m.tabOf[m.order[next]])
}

// activate makes id the focused window, deactivating the previous pair first.
// Listeners run after both sides have been updated.
func (m *Manager) activate(id WindowID) {
	w := m.windows[id]
	if m.focus.window == id && w.Active() {
		return
	}
	if prev, ok := m.windows[m.focus.window]; ok {
		prev.Focus = FocusInactive
		if tab := m.tabs[m.focus.tab]; tab != nil && tab.State == TabActive {
			tab.State = TabInactive
		}
	}

	tabID := m.tabOf[id]
	w.Focus = FocusActive
	m.tabs[tabID].State = TabActive
	m.focus.set(id, tabID)
	m.raise(id)
	m.notifyFocus()
}

// raise gives id the highest Z and packs the others below it in their current order.
func (m *Manager) raise(id WindowID) {
	others := make([]*Window, 0, len(m.order))
	for _, other := range m.order {
		if other != id {
			others = append(others, m.windows[other])
		}
	}
	slices.SortStableFunc(others, func(a, b *Window) int { return a.Z - b.Z })
	for z, w := range others {
		w.Z = z
	}
	m.windows[id].Z = len(others)
}

func (m *Manager) notifyFocus() {
	if m.opts.OnFocusChange != nil {
		m.opts.OnFocusChange(m.focus.window, m.focus.tab)
	}
}

// Pan shifts the whole canvas. Window positions are untouched.
func (m *Manager) Pan(dx, dy float64) {
	m.state.Pan = m.state.Pan.Add(Point{X: dx, Y: dy})
}

// MoveWindow places a window's top-left corner in canvas space.
func (m *Manager) MoveWindow(id WindowID, left, top float64) {
	if w, ok := m.windows[id]; ok {
		w.Position = Point{X: left, Y: top}
	}
}

// ResizeContent sets a window's rendered content size, bounded below by MinContentSize.
func (m *Manager) ResizeContent(id WindowID, width, height float64) {
	w, ok := m.windows[id]
	if !ok || w.Minimized() {
		return
	}
	w.ContentSize = Size{
		W: max(width, m.opts.MinContentSize.W),
		H: max(height, m.opts.MinContentSize.H),
	}
	if c := m.contents[id]; c != nil {
		c.SetSize(w.ContentSize.W, w.ContentSize.H)
	}
}

// Window returns the window with the given id.
func (m *Manager) Window(id WindowID) (*Window, bool) {
	w, ok := m.windows[id]
	return w, ok
}

// Windows returns every window in creation order.
func (m *Manager) Windows() []*Window {
	out := make([]*Window, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.windows[id])
	}
	return out
}

// Tabs returns the tab strip in creation order.
func (m *Manager) Tabs() []*Tab {
	out := make([]*Tab, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.tabs[m.tabOf[id]])
	}
	return out
}

// TabFor returns the tab bound to a window.
func (m *Manager) TabFor(id WindowID) (*Tab, bool) {
	tab, ok := m.tabs[m.tabOf[id]]
	return tab, ok
}

// Content returns the adapter bound to a window.
func (m *Manager) Content(id WindowID) (ContentAdapter, bool) {
	c, ok := m.contents[id]
	return c, ok
}

// ActiveWindow returns the focused window, or nil.
func (m *Manager) ActiveWindow() *Window {
	return m.windows[m.focus.window]
}

// ActiveTab returns the focused tab, or nil.
func (m *Manager) ActiveTab() *Tab {
	return m.tabs[m.focus.tab]
}

// Len returns the number of live windows.
func (m *Manager) Len() int { return len(m.order) }

// ScreenRect returns the window's full box (header plus content) in screen space.
func (m *Manager) ScreenRect(id WindowID) Rect {
	w, ok := m.windows[id]
	if !ok {
		return Rect{}
	}
	pos := w.Position.Add(m.state.Pan)
	return Rect{X: pos.X, Y: pos.Y, W: w.ContentSize.W, H: w.ContentSize.H + m.opts.HeaderHeight}
}

// ContentRect returns the window's content region in screen space.
func (m *Manager) ContentRect(id WindowID) Rect {
	r := m.ScreenRect(id)
	if r.H == 0 {
		return r
	}
	r.Y += m.opts.HeaderHeight
	r.H -= m.opts.HeaderHeight
	return r
}

// DisplayName returns the name used for saving, falling back to a per-kind default.
func (m *Manager) DisplayName(id WindowID) string {
	w, ok := m.windows[id]
	if !ok {
		return ""
	}
	if w.Name != "" {
		return w.Name
	}
	return w.Kind.DefaultName()
}

// ContentForSave collects a window's name and bytes for the save collaborator.
func (m *Manager) ContentForSave(id WindowID) (SaveContent, bool) {
	w, ok := m.windows[id]
	if !ok {
		return SaveContent{}, false
	}
	var data []byte
	if c := m.contents[id]; c != nil {
		data = c.Content()
	}
	return SaveContent{Name: m.DisplayName(id), Data: data, Kind: w.Kind}, true
}
