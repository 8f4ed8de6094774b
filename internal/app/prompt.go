package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/Gaurav-Gosain/tuicanvas/internal/files"
)

// PromptKind identifies what a prompt's answer is used for.
type PromptKind int

const (
	// PromptNewFile asks for the name of a new text window.
	PromptNewFile PromptKind = iota
	// PromptOpenFile asks for a path to open.
	PromptOpenFile
	// PromptSave asks whether to save the current window or all of them.
	PromptSave
)

// Prompt labels shown to the user.
const (
	NewFilePrompt  = "Enter file name:"
	OpenFilePrompt = "Enter path to open:"
	SavePrompt     = "Enter 1 to save current file or 2 to save all files:"
)

// Save outcome messages.
const (
	NoWindowsToSave = "No open windows to save."
	NoActiveToSave  = "No active window to save."
)

// Prompt is a single-line question drawn over the canvas.
type Prompt struct {
	Kind   PromptKind
	Label  string
	Buffer string
}

// OpenPrompt shows a prompt of the given kind, replacing any open one.
func (d *Desktop) OpenPrompt(kind PromptKind) {
	label := NewFilePrompt
	switch kind {
	case PromptOpenFile:
		label = OpenFilePrompt
	case PromptSave:
		label = SavePrompt
	}
	d.Router.Reset()
	d.Prompt = &Prompt{Kind: kind, Label: label}
}

// CancelPrompt closes the prompt without acting on it.
func (d *Desktop) CancelPrompt() {
	d.Prompt = nil
}

// SubmitPrompt closes the prompt and acts on its answer.
func (d *Desktop) SubmitPrompt() {
	p := d.Prompt
	if p == nil {
		return
	}
	d.Prompt = nil
	answer := strings.TrimSpace(p.Buffer)

	switch p.Kind {
	case PromptNewFile:
		if answer == "" {
			return
		}
		d.NewTextWindow(answer)
	case PromptOpenFile:
		if answer == "" {
			return
		}
		d.OpenPath(answer)
	case PromptSave:
		switch answer {
		case "1":
			d.SaveActive()
		case "2":
			d.SaveAllWindows()
		default:
			d.ShowNotification("Enter 1 or 2 to save", "warning", config.NotificationDuration)
		}
	}
}

// RequestSave starts the save flow.
func (d *Desktop) RequestSave() {
	if d.Canvas.Len() == 0 {
		d.ShowNotification(NoWindowsToSave, "warning", config.NotificationDuration)
		return
	}
	d.OpenPrompt(PromptSave)
}

// OpenPath loads a file and opens it as a window.
func (d *Desktop) OpenPath(path string) {
	doc, err := files.Load(expandHome(path))
	if err != nil {
		d.ShowNotification(err.Error(), "error", config.ErrorNotificationDuration)
		return
	}
	d.OpenDocument(doc)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
