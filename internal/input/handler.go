// Package input routes keyboard and mouse messages to the tuicanvas desktop.
//
// Keys go to the first of: the prompt, the log viewer, the help overlay, the
// focused editor in edit mode, and finally the canvas keybindings.
package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuicanvas/internal/app"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
)

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, d *app.Desktop) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, d)
	case tea.PasteMsg:
		return handlePaste(msg.Content, d)
	}
	return d, nil
}

// HandleKeyPress handles all keyboard input and routes to mode-specific handlers
func HandleKeyPress(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	switch {
	case d.Prompt != nil:
		return handlePromptKey(msg, d)
	case d.ShowLogs:
		return handleLogViewerKey(msg, d)
	case d.ShowHelp:
		return handleHelpKey(msg, d)
	case d.Mode == app.EditMode:
		return handleEditKey(msg, d)
	}
	return handleCanvasKey(msg, d)
}

// handleCanvasKey runs the action bound to the key, if any.
func handleCanvasKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	action := d.Keybinds.GetAction(msg.String())
	if action == "" {
		return d, nil
	}
	return GetDispatcher().Dispatch(action, msg, d)
}

// handleLogViewerKey handles keyboard input when the log viewer overlay is active.
func handleLogViewerKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "esc" || d.Keybinds.GetAction(key) == config.ActionToggleLogs {
		d.ShowLogs = false
		d.LogScrollOffset = 0
		return d, nil
	}

	logsPerPage, maxScroll := app.LogScrollBounds(d.Height, len(d.LogMessages))
	pageSize := max(logsPerPage/2, 1)

	switch key {
	case "up", "k":
		d.LogScrollOffset = max(d.LogScrollOffset-1, 0)
	case "down", "j":
		d.LogScrollOffset = min(d.LogScrollOffset+1, maxScroll)
	case "pgup", "ctrl+u":
		d.LogScrollOffset = max(d.LogScrollOffset-pageSize, 0)
	case "pgdown", "ctrl+d":
		d.LogScrollOffset = min(d.LogScrollOffset+pageSize, maxScroll)
	case "g", "home":
		d.LogScrollOffset = 0
	case "G", "end":
		d.LogScrollOffset = maxScroll
	}
	return d, nil
}

// handleHelpKey closes or scrolls the help overlay.
func handleHelpKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()
	if key == "q" || key == "esc" || d.Keybinds.GetAction(key) == config.ActionToggleHelp {
		d.ShowHelp = false
		d.HelpScrollOffset = 0
		return d, nil
	}
	switch key {
	case "up", "k":
		d.HelpScrollOffset = max(d.HelpScrollOffset-1, 0)
	case "down", "j":
		// RenderHelpMenu clamps the upper bound.
		d.HelpScrollOffset++
	case "g", "home":
		d.HelpScrollOffset = 0
	}
	return d, nil
}

// handlePromptKey edits the prompt's single line.
func handlePromptKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		d.CancelPrompt()
	case "enter":
		d.SubmitPrompt()
	case "backspace":
		d.Prompt.Buffer = dropLastRune(d.Prompt.Buffer)
	case "ctrl+u":
		d.Prompt.Buffer = ""
	default:
		if isPrintable(msg) {
			d.Prompt.Buffer += msg.Text
		}
	}
	return d, nil
}

// handleEditKey types into the focused editor. Ctrl chords still run their
// bound action so quitting works while editing.
func handleEditKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	editor, ok := d.ActiveEditor()
	if !ok {
		d.ExitEditMode()
		return d, nil
	}

	key := msg.String()
	switch key {
	case "esc":
		d.ExitEditMode()
		return d, nil
	case "enter":
		editor.Newline()
		return d, nil
	case "backspace":
		editor.Backspace()
		return d, nil
	case "tab":
		editor.Insert("\t")
		return d, nil
	}

	if msg.Mod.Contains(tea.ModCtrl) || msg.Mod.Contains(tea.ModAlt) {
		if action := d.Keybinds.GetAction(key); action != "" {
			return GetDispatcher().Dispatch(action, msg, d)
		}
		return d, nil
	}
	if isPrintable(msg) {
		editor.Insert(msg.Text)
	}
	return d, nil
}

// handlePaste inserts bracketed paste into the prompt or the focused editor.
func handlePaste(text string, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	switch {
	case d.Prompt != nil:
		d.Prompt.Buffer += firstLine(text)
	case d.Mode == app.EditMode:
		editor, ok := d.ActiveEditor()
		if !ok {
			return d, nil
		}
		for i, line := range splitLines(text) {
			if i > 0 {
				editor.Newline()
			}
			if line != "" {
				editor.Insert(line)
			}
		}
	}
	return d, nil
}
