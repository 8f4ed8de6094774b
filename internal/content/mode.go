// Package content implements the surfaces hosted inside canvas windows: an
// editable text buffer and a read-only image preview.
package content

import (
	"path/filepath"
	"strings"
)

// Mode describes how a text window's file is interpreted.
type Mode struct {
	// MIME is the mode identifier, e.g. "text/x-go".
	MIME string
	// Label is shown in the status line.
	Label string
}

// PlainText is the mode of unknown extensions.
var PlainText = Mode{MIME: "text/plain", Label: "Plain Text"}

var fileModes = []struct {
	mode Mode
	exts []string
}{
	{Mode{"javascript", "JavaScript"}, []string{"js", "mjs", "cjs"}},
	{Mode{"text/x-csrc", "C"}, []string{"c", "h"}},
	{Mode{"text/x-c++src", "C++"}, []string{"cpp", "hpp", "cc", "cxx"}},
	{Mode{"text/x-java", "Java"}, []string{"java"}},
	{Mode{"text/x-csharp", "C#"}, []string{"cs"}},
	{Mode{"text/x-python", "Python"}, []string{"py"}},
	{Mode{"text/html", "HTML"}, []string{"html", "htm"}},
	{Mode{"htmlmixed", "HTML Template"}, []string{"ejs", "erb", "jsp", "php"}},
	{Mode{"text/css", "CSS"}, []string{"css"}},
	{Mode{"application/json", "JSON"}, []string{"json"}},
	{Mode{"text/xml", "XML"}, []string{"xml"}},
	{Mode{"text/x-go", "Go"}, []string{"go"}},
	{Mode{"text/x-ruby", "Ruby"}, []string{"rb", "rake"}},
	{PlainText, []string{"txt", "log", "md"}},
}

// ModeFor picks the mode from the extension of name.
func ModeFor(name string) Mode {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return PlainText
	}
	for _, fm := range fileModes {
		for _, e := range fm.exts {
			if e == ext {
				return fm.mode
			}
		}
	}
	return PlainText
}
