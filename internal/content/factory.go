package content

import (
	"io"

	"github.com/Gaurav-Gosain/tuicanvas/internal/canvas"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/log"
)

// Surface is a content adapter that can draw itself into its cell grid.
type Surface interface {
	canvas.ContentAdapter
	Render(editing bool) string
}

// Editor is implemented by surfaces that accept typing.
type Editor interface {
	Insert(s string)
	Newline()
	Backspace()
}

// grid converts the pixel size pushed by the manager to whole cells, minus
// the cells taken by window decoration.
type grid struct {
	cellW, cellH float64
	insetCols    int
	insetRows    int
	cols, rows   int
}

func (g *grid) resize(w, h float64) {
	g.cols = max(0, int(w/g.cellW)-g.insetCols)
	g.rows = max(0, int(h/g.cellH)-g.insetRows)
}

// FactoryOptions configures a Factory.
type FactoryOptions struct {
	// CellWidth and CellHeight are the pixel size of one terminal cell.
	CellWidth, CellHeight float64
	// BaseFontSize is the text size at scale 1.
	BaseFontSize float64
	// InsetCols and InsetRows are cells of the content region used by borders.
	InsetCols, InsetRows int
	// Profile picks half blocks or the ASCII ramp for images.
	Profile colorprofile.Profile
	Logger  *log.Logger
}

// Factory creates text and image surfaces for new windows.
type Factory struct {
	opts   FactoryOptions
	ascii  bool
	logger *log.Logger
}

// NewFactory returns a factory for opts. Zero cell sizes use 10x20.
func NewFactory(opts FactoryOptions) *Factory {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 10
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 20
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Factory{
		opts:   opts,
		ascii:  opts.Profile == colorprofile.Ascii || opts.Profile == colorprofile.NoTTY,
		logger: logger.WithPrefix("content"),
	}
}

// Create implements canvas.ContentFactory.
func (f *Factory) Create(kind canvas.ContentKind, name string, initial []byte) canvas.ContentAdapter {
	g := grid{
		cellW:     f.opts.CellWidth,
		cellH:     f.opts.CellHeight,
		insetCols: f.opts.InsetCols,
		insetRows: f.opts.InsetRows,
	}
	if kind == canvas.ContentImage {
		s := newImageSurface(name, initial, g, f.ascii)
		if s.Err() != nil {
			f.logger.Warn("image preview unavailable", "name", name, "err", s.Err())
		}
		return s
	}
	return newTextSurface(name, initial, g, f.opts.BaseFontSize)
}
