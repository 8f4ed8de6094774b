package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/Gaurav-Gosain/tuicanvas/internal/files"
)

// TickerMsg drives notification expiry.
type TickerMsg time.Time

// FileDroppedMsg carries a file that appeared in the drop directory.
type FileDroppedMsg struct {
	Doc files.Document
}

// DropErrorMsg reports a failure of the drop directory watcher.
type DropErrorMsg struct {
	Err error
}

// OpenFilesMsg asks the desktop to open paths given on the command line.
type OpenFilesMsg struct {
	Paths []string
}

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, d *Desktop) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the tick timer and opens the startup files.
func (d *Desktop) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd()}
	if len(d.startupPaths) > 0 {
		paths := d.startupPaths
		d.startupPaths = nil
		cmds = append(cmds, func() tea.Msg { return OpenFilesMsg{Paths: paths} })
	}
	return tea.Batch(cmds...)
}

// TickCmd schedules the next notification tick.
func TickCmd() tea.Cmd {
	return tea.Tick(config.NotificationTickInterval, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Update handles a bubbletea message.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		d.CleanupNotifications()
		return d, TickCmd()

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg, tea.PasteMsg:
		if inputHandler != nil {
			return inputHandler(msg, d)
		}
		return d, nil

	case tea.WindowSizeMsg:
		d.Resize(msg.Width, msg.Height)
		if !d.scaleApplied {
			d.scaleApplied = true
			if config.InitialScale != 1 {
				c := d.Canvas.ViewportCenter()
				d.Canvas.ZoomToCursor(c.X, c.Y, config.InitialScale)
			}
		}
		return d, nil

	case OpenFilesMsg:
		for _, path := range msg.Paths {
			d.OpenPath(path)
		}
		return d, nil

	case FileDroppedMsg:
		d.OpenDocument(msg.Doc)
		d.ShowNotification("Opened "+msg.Doc.Name, "info", config.NotificationDuration)
		return d, nil

	case DropErrorMsg:
		d.LogWarn("drop watcher: %v", msg.Err)
		return d, nil

	case tea.MouseMsg:
		return d, nil
	}
	return d, nil
}
