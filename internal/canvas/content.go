package canvas

// ContentKind tags what a window hosts.
type ContentKind int

const (
	// ContentText hosts an editable text surface.
	ContentText ContentKind = iota
	// ContentImage hosts a read-only image surface.
	ContentImage
)

func (k ContentKind) String() string {
	switch k {
	case ContentText:
		return "text"
	case ContentImage:
		return "image"
	default:
		return "unknown"
	}
}

// DefaultName is the name used when saving a window that was never named.
func (k ContentKind) DefaultName() string {
	if k == ContentImage {
		return "image.png"
	}
	return "untitled.txt"
}

// ContentAdapter is the renderer living inside a window's content region.
// The manager pushes size and scale changes; it never reads pixels back.
type ContentAdapter interface {
	// SetSize is called with the rendered content size in pixels.
	SetSize(w, h float64)
	// SetContentScale is called with the global scale whenever it applies to this window.
	SetContentScale(scale float64)
	// Content returns the bytes to persist on save.
	Content() []byte
	// Destroy releases resources; the adapter is not used afterwards.
	Destroy()
}

// ContentFactory creates adapters for new windows.
type ContentFactory interface {
	Create(kind ContentKind, name string, initial []byte) ContentAdapter
}

// ContentFactoryFunc adapts a function to ContentFactory.
type ContentFactoryFunc func(kind ContentKind, name string, initial []byte) ContentAdapter

// Create calls f.
func (f ContentFactoryFunc) Create(kind ContentKind, name string, initial []byte) ContentAdapter {
	return f(kind, name, initial)
}

// memoryContent keeps the initial bytes and ignores geometry. It backs windows
// when no factory is configured.
type memoryContent struct {
	data []byte
}

func (c *memoryContent) SetSize(float64, float64) {}
func (c *memoryContent) SetContentScale(float64) {}
func (c *memoryContent) Content() []byte { return c.data }
func (c *memoryContent) Destroy() { c.data = nil }

var memoryFactory = ContentFactoryFunc(func(_ ContentKind, _ string, initial []byte) ContentAdapter {
	return &memoryContent{data: initial}
})

// SaveContent is what a window hands to the save collaborator.
type SaveContent struct {
	Name string
	Data []byte
	Kind ContentKind
}
