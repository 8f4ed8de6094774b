package content

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func newTestText(initial string) *TextSurface {
	return newTextSurface("notes.txt", []byte(initial), grid{cellW: 10, cellH: 20}, 14)
}

func TestTextEditing(t *testing.T) {
	s := newTestText("héllo")

	s.Backspace()
	s.Insert("o!")
	s.Newline()
	s.Insert("x")
	s.Backspace()
	s.Backspace()
	s.Backspace()

	if got := string(s.Content()); got != "héllo" {
		t.Errorf("content = %q, want %q", got, "héllo")
	}

	empty := newTestText("")
	empty.Backspace()
	if len(empty.Content()) != 0 {
		t.Error("backspace on an empty buffer changed it")
	}
}

func TestTextFontSizeFollowsScale(t *testing.T) {
	s := newTestText("")
	if s.FontSize() != 14 {
		t.Errorf("FontSize = %v, want 14", s.FontSize())
	}
	s.SetContentScale(1.5)
	if s.FontSize() != 21 {
		t.Errorf("FontSize = %v, want 21", s.FontSize())
	}
}

func TestTextRenderFollowsLastLine(t *testing.T) {
	var lines []string
	for i := range 10 {
		lines = append(lines, strings.Repeat(string(rune('a'+i)), 40))
	}
	s := newTestText(strings.Join(lines, "\n"))
	s.SetSize(200, 100)

	out := strings.Split(s.Render(false), "\n")
	if len(out) != 5 {
		t.Fatalf("%d rows, want 5", len(out))
	}
	if !strings.HasPrefix(out[0], "  7 ggg") {
		t.Errorf("first row = %q, want line 7", out[0])
	}
	for i, row := range out {
		if w := ansi.StringWidth(row); w > 20 {
			t.Errorf("row %d is %d cells wide, want at most 20", i, w)
		}
	}
	if status := out[4]; !strings.Contains(status, "Plain Text") || !strings.Contains(status, "14px") {
		t.Errorf("status = %q", status)
	}
}

func TestTextRenderCursorWhenEditing(t *testing.T) {
	s := newTestText("ab")
	s.SetSize(200, 40)

	if got := s.Render(true); !strings.Contains(got, "ab█") {
		t.Errorf("editing render = %q, want cursor after text", got)
	}
	if got := s.Render(false); strings.Contains(got, "█") {
		t.Errorf("render = %q, want no cursor", got)
	}
}

func TestTextRenderEmptyGrid(t *testing.T) {
	s := newTestText("abc")
	s.SetSize(5, 5)
	if got := s.Render(false); got != "" {
		t.Errorf("render = %q, want empty", got)
	}
}
