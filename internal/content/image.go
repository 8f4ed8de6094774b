package content

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/gabriel-vasile/mimetype"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp" // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// svgRasterSize is the longest side of an SVG without a usable viewBox.
const svgRasterSize = 512

const asciiRamp = " .:-=+*#%@"

// ImageSurface previews an image with half-block cells, or with an ASCII
// ramp on terminals without color. The original bytes are kept for saving.
type ImageSurface struct {
	name  string
	data  []byte
	img   image.Image
	err   error
	grid  grid
	scale float64
	ascii bool

	cache     string
	cacheCols int
	cacheRows int
}

func newImageSurface(name string, data []byte, g grid, ascii bool) *ImageSurface {
	s := &ImageSurface{
		name:  name,
		data:  data,
		grid:  g,
		scale: 1,
		ascii: ascii,
	}
	s.img, s.err = DecodeImage(name, data)
	return s
}

// DecodeImage decodes raster formats through the image registry and
// rasterizes SVG documents.
func DecodeImage(name string, data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image")
	}
	if isSVG(name, data) {
		return rasterizeSVG(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func isSVG(name string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(name), ".svg") {
		return true
	}
	return mimetype.Detect(data).Is("image/svg+xml")
}

func rasterizeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = svgRasterSize, svgRasterSize
	}
	k := svgRasterSize / max(w, h)
	pw, ph := max(1, int(w*k)), max(1, int(h*k))

	icon.SetTarget(0, 0, float64(pw), float64(ph))
	rgba := image.NewRGBA(image.Rect(0, 0, pw, ph))
	scanner := rasterx.NewScannerGV(pw, ph, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(pw, ph, scanner), 1.0)
	return rgba, nil
}

// SetSize records the content size in pixels.
func (s *ImageSurface) SetSize(w, h float64) { s.grid.resize(w, h) }

// SetContentScale records the global scale.
func (s *ImageSurface) SetContentScale(scale float64) { s.scale = scale }

// Content returns the original image bytes.
func (s *ImageSurface) Content() []byte { return s.data }

// Destroy drops the decoded image and the cached preview.
func (s *ImageSurface) Destroy() {
	s.img, s.data, s.cache = nil, nil, ""
}

// Err is the decode error, if the bytes were not a supported image.
func (s *ImageSurface) Err() error { return s.err }

// Bounds is the decoded image size.
func (s *ImageSurface) Bounds() image.Rectangle {
	if s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Bounds()
}

// Render draws the image fitted and centered in the current cell grid. The
// editing flag is ignored; images are read-only.
func (s *ImageSurface) Render(bool) string {
	cols, rows := s.grid.cols, s.grid.rows
	if cols <= 0 || rows <= 0 {
		return ""
	}
	if s.err != nil || s.img == nil {
		msg := "unsupported image"
		if s.err != nil {
			msg = s.err.Error()
		}
		return ansi.Truncate(msg, cols, "…")
	}
	if s.cache != "" && s.cacheCols == cols && s.cacheRows == rows {
		return s.cache
	}

	fitted := fit(s.img, cols, rows*2)
	if s.ascii {
		s.cache = renderASCII(fitted, cols, rows)
	} else {
		s.cache = renderHalfBlocks(fitted, cols, rows)
	}
	s.cacheCols, s.cacheRows = cols, rows
	return s.cache
}

// fit scales src to the largest size within w x h that keeps its aspect ratio.
func fit(src image.Image, w, h int) *image.RGBA {
	b := src.Bounds()
	k := min(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	dw, dh := max(1, int(float64(b.Dx())*k)), max(1, int(float64(b.Dy())*k))

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// renderHalfBlocks packs two vertical pixels per cell using "▀" with the top
// pixel as foreground and the bottom one as background.
func renderHalfBlocks(img *image.RGBA, cols, rows int) string {
	b := img.Bounds()
	offX := (cols - b.Dx()) / 2
	offY := (rows - (b.Dy()+1)/2) / 2

	var sb strings.Builder
	for r := range rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		y := 2 * (r - offY)
		for c := range cols {
			x := c - offX
			if x < 0 || x >= b.Dx() || y < 0 || y >= b.Dy() {
				sb.WriteByte(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(img.RGBAAt(x, y))
			if y+1 < b.Dy() {
				style = style.Background(img.RGBAAt(x, y+1))
			}
			sb.WriteString(style.Render("▀"))
		}
	}
	return sb.String()
}

// renderASCII maps the brightness of each cell's two pixels onto asciiRamp.
func renderASCII(img *image.RGBA, cols, rows int) string {
	b := img.Bounds()
	offX := (cols - b.Dx()) / 2
	offY := (rows - (b.Dy()+1)/2) / 2

	var sb strings.Builder
	for r := range rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		y := 2 * (r - offY)
		for c := range cols {
			x := c - offX
			if x < 0 || x >= b.Dx() || y < 0 || y >= b.Dy() {
				sb.WriteByte(' ')
				continue
			}
			l := luminance(img.RGBAAt(x, y))
			if y+1 < b.Dy() {
				l = (l + luminance(img.RGBAAt(x, y+1))) / 2
			}
			sb.WriteByte(asciiRamp[min(len(asciiRamp)-1, int(l*float64(len(asciiRamp))))])
		}
	}
	return sb.String()
}

func luminance(c color.RGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
