// Package files loads files into windows, saves window content to disk and
// watches a drop folder for new files.
package files

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/gabriel-vasile/mimetype"
)

// imageExtensions are opened as image windows regardless of their bytes.
var imageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "webp", "svg"}

var imageMIMEs = []string{"image/png", "image/jpeg", "image/gif", "image/bmp", "image/webp", "image/svg+xml"}

// Document is a file ready to become a window.
type Document struct {
	Name    string
	Path    string
	Data    []byte
	IsImage bool
}

// Load reads path. Directories and files above config.MaxOpenFileSize are refused.
func Load(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if info.IsDir() {
		return Document{}, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > config.MaxOpenFileSize {
		return Document{}, fmt.Errorf("%s is too large (%d bytes)", path, info.Size())
	}

	// #nosec G304 - the user chose this path
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	name := filepath.Base(path)
	return Document{
		Name:    name,
		Path:    path,
		Data:    data,
		IsImage: IsImage(name, data),
	}, nil
}

// IsImage reports whether a file should open as an image: by extension
// first, then by sniffing the content.
func IsImage(name string, data []byte) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if slices.Contains(imageExtensions, ext) {
		return true
	}
	if len(data) == 0 {
		return false
	}
	return mimetype.EqualsAny(mimetype.Detect(data).String(), imageMIMEs...)
}
