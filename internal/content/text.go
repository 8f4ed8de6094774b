package content

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/charmbracelet/x/ansi"
)

const tabWidth = 4

// TextSurface is an editable text buffer. Editing only happens at the end of
// the buffer; the view follows the last line.
type TextSurface struct {
	name     string
	mode     Mode
	text     []byte
	grid     grid
	scale    float64
	baseFont float64
}

func newTextSurface(name string, initial []byte, g grid, baseFont float64) *TextSurface {
	return &TextSurface{
		name:     name,
		mode:     ModeFor(name),
		text:     append([]byte(nil), initial...),
		grid:     g,
		scale:    1,
		baseFont: baseFont,
	}
}

// SetSize records the content size in pixels.
func (t *TextSurface) SetSize(w, h float64) { t.grid.resize(w, h) }

// SetContentScale records the global scale.
func (t *TextSurface) SetContentScale(scale float64) { t.scale = scale }

// Content returns the buffer.
func (t *TextSurface) Content() []byte { return t.text }

// Destroy drops the buffer.
func (t *TextSurface) Destroy() { t.text = nil }

// Mode returns the language mode picked from the file name.
func (t *TextSurface) Mode() Mode { return t.mode }

// FontSize is the base font size multiplied by the current scale.
func (t *TextSurface) FontSize() float64 { return t.baseFont * t.scale }

// Insert appends s to the buffer.
func (t *TextSurface) Insert(s string) { t.text = append(t.text, s...) }

// Newline appends a line break.
func (t *TextSurface) Newline() { t.text = append(t.text, '\n') }

// Backspace removes the last rune, if any.
func (t *TextSurface) Backspace() {
	if len(t.text) == 0 {
		return
	}
	_, size := utf8.DecodeLastRune(t.text)
	t.text = t.text[:len(t.text)-size]
}

// Lines returns the buffer split into lines. An empty buffer has one empty line.
func (t *TextSurface) Lines() []string {
	return strings.Split(string(t.text), "\n")
}

// Render draws the buffer with a line-number gutter and a status line into
// the current cell grid. The cursor cell is drawn when editing.
func (t *TextSurface) Render(editing bool) string {
	cols, rows := t.grid.cols, t.grid.rows
	if cols <= 0 || rows <= 0 {
		return ""
	}

	body := rows
	if rows > 1 {
		body--
	}

	lines := t.Lines()
	gutter := max(config.GutterMinWidth, len(strconv.Itoa(len(lines))))
	first := max(0, len(lines)-body)

	out := make([]string, 0, rows)
	for i := first; i < len(lines) && len(out) < body; i++ {
		line := strings.ReplaceAll(lines[i], "\t", strings.Repeat(" ", tabWidth))
		if editing && i == len(lines)-1 {
			line += "█"
		}
		row := fmt.Sprintf("%*d ", gutter, i+1)
		if avail := cols - gutter - 1; avail > 0 {
			row += ansi.Truncate(line, avail, "…")
		}
		out = append(out, ansi.Truncate(row, cols, ""))
	}
	for len(out) < body {
		out = append(out, strings.Repeat(" ", min(gutter, cols)))
	}

	if rows > 1 {
		status := fmt.Sprintf("%.0fpx  %s  %d lines", t.FontSize(), t.mode.Label, len(lines))
		out = append(out, ansi.Truncate(status, cols, "…"))
	}
	return strings.Join(out, "\n")
}
