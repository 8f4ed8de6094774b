package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gaurav-Gosain/tuicanvas/internal/canvas"
	"github.com/adrg/xdg"
)

// maxNameAttempts bounds the "name (n).ext" search.
const maxNameAttempts = 1000

// DefaultSaveDir is the user's download directory, or home when unset.
func DefaultSaveDir() string {
	if dir := xdg.UserDirs.Download; dir != "" {
		return dir
	}
	return xdg.Home
}

// Save writes data into dir under name, adding " (1)", " (2)", ... before
// the extension when the name is taken. It returns the written path.
func Save(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = DefaultSaveDir()
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create save directory: %w", err)
	}

	name = cleanName(name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for n := range maxNameAttempts {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		path := filepath.Join(dir, candidate)

		// #nosec G304 - path is built from the save directory and a cleaned base name
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", path, err)
		}
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("no free file name for %s in %s", name, dir)
}

// SaveAll saves every item and returns the written paths. Failures do not
// stop the remaining saves; they are joined into the returned error.
func SaveAll(dir string, items []canvas.SaveContent) ([]string, error) {
	var (
		paths []string
		errs  []error
	)
	for _, item := range items {
		path, err := Save(dir, item.Name, item.Data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, path)
	}
	return paths, errors.Join(errs...)
}

func cleanName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == ".." || name == string(filepath.Separator) || name == "" {
		return canvas.ContentText.DefaultName()
	}
	return name
}
