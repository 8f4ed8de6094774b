// Package app provides the tuicanvas desktop model: the canvas of windows,
// the tab strip, prompts and overlays.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/Gaurav-Gosain/tuicanvas/internal/canvas"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/Gaurav-Gosain/tuicanvas/internal/content"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Mode represents the current interaction mode of the application.
type Mode int

const (
	// CanvasMode routes keys to window and canvas actions.
	CanvasMode Mode = iota
	// EditMode types into the focused text window.
	EditMode
)

func (m Mode) String() string {
	if m == EditMode {
		return "EDIT"
	}
	return "CANVAS"
}

// Desktop is the bubbletea model. It owns the canvas manager and the input
// router, and everything drawn around them.
type Desktop struct {
	Canvas   *canvas.Manager
	Router   *canvas.Router
	Keybinds *config.KeybindRegistry
	Logger   *log.Logger

	Mode   Mode
	Width  int // terminal columns
	Height int // terminal rows

	cellW   float64
	cellH   float64
	panStep int
	SaveDir string

	Prompt           *Prompt
	ShowHelp         bool
	HelpScrollOffset int
	ShowLogs         bool
	LogMessages      []LogMessage
	LogScrollOffset  int
	Notifications    []Notification

	// PressedButton is the last pressed pointer button; terminals may report
	// releases without one.
	PressedButton canvas.Button
	LastMouseX    int
	LastMouseY    int

	startupPaths []string
	scaleApplied bool
}

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// Options configures a Desktop.
type Options struct {
	// Config supplies canvas geometry and keybindings. Nil uses the defaults.
	Config *config.UserConfig
	// Logger mirrors the in-app log. Nil discards.
	Logger *log.Logger
	// Profile selects how image windows are drawn.
	Profile colorprofile.Profile
	// SaveDir is where saves go; empty uses the download directory.
	SaveDir string
	// Files are opened once the program starts.
	Files []string
}

// NewDesktop builds the canvas and its content factory from opts.
func NewDesktop(opts Options) *Desktop {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cc := cfg.Canvas
	d := &Desktop{
		Keybinds: config.NewKeybindRegistry(cfg),
		Logger:   logger.WithPrefix("app"),
		cellW:    float64(cc.CellWidth),
		cellH:    float64(cc.CellHeight),
		panStep:  cc.PanStep,
		SaveDir:  opts.SaveDir,

		startupPaths: opts.Files,
	}

	factory := content.NewFactory(content.FactoryOptions{
		CellWidth:    d.cellW,
		CellHeight:   d.cellH,
		BaseFontSize: config.BaseFontSize,
		InsetCols:    2,
		InsetRows:    1,
		Profile:      opts.Profile,
		Logger:       logger,
	})

	d.Canvas = canvas.NewManager(canvas.Options{
		Factory:        factory,
		Logger:         logger,
		OnFocusChange:  d.onFocusChange,
		MinScale:       cc.MinScale,
		MaxScale:       cc.MaxScale,
		ZoomInFactor:   cc.ZoomInFactor,
		ZoomOutFactor:  cc.ZoomOutFactor,
		DefaultSize:    canvas.Size{W: cc.WindowWidth, H: cc.WindowHeight},
		MinContentSize: canvas.Size{W: cc.MinContentWidth, H: cc.MinContentHeight},
		HeaderHeight:   d.cellH,
		ButtonWidth:    float64(config.HeaderButtonCells * cc.CellWidth),
		HideButtons:    config.HideWindowButtons,
	})
	d.Router = canvas.NewRouter(d.Canvas)
	return d
}

func createID() string {
	return uuid.New().String()
}

// Log adds a new log message to the log buffer and mirrors it to the logger.
func (d *Desktop) Log(level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)

	_, maxScroll := LogScrollBounds(d.Height, len(d.LogMessages))
	wasAtBottom := d.LogScrollOffset >= maxScroll-2

	d.LogMessages = append(d.LogMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: message,
	})
	if len(d.LogMessages) > config.MaxLogMessages {
		d.LogMessages = d.LogMessages[len(d.LogMessages)-config.MaxLogMessages:]
	}

	if d.ShowLogs && wasAtBottom {
		_, d.LogScrollOffset = LogScrollBounds(d.Height, len(d.LogMessages))
	}

	switch level {
	case "ERROR":
		d.Logger.Error(message)
	case "WARN":
		d.Logger.Warn(message)
	default:
		d.Logger.Info(message)
	}
}

// LogInfo logs an informational message.
func (d *Desktop) LogInfo(format string, args ...any) {
	d.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (d *Desktop) LogWarn(format string, args ...any) {
	d.Log("WARN", format, args...)
}

// LogError logs an error message.
func (d *Desktop) LogError(format string, args ...any) {
	d.Log("ERROR", format, args...)
}

// LogScrollBounds computes the scrollable range of the log viewer overlay.
func LogScrollBounds(screenHeight, totalLogs int) (logsPerPage, maxScroll int) {
	maxDisplayHeight := max(screenHeight-8, 8)

	// title, blank, blank, hint
	fixedLines := 4
	if totalLogs > maxDisplayHeight-fixedLines {
		fixedLines = 6
	}
	logsPerPage = max(maxDisplayHeight-fixedLines, 1)
	maxScroll = max(totalLogs-logsPerPage, 0)
	return logsPerPage, maxScroll
}

// ShowNotification displays a temporary notification and logs it.
func (d *Desktop) ShowNotification(message, notifType string, duration time.Duration) {
	d.Notifications = append(d.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		d.LogError("%s", message)
	case "warning":
		d.LogWarn("%s", message)
	default:
		d.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (d *Desktop) CleanupNotifications() {
	now := time.Now()
	active := d.Notifications[:0]
	for _, n := range d.Notifications {
		if now.Sub(n.StartTime) < n.Duration {
			active = append(active, n)
		}
	}
	d.Notifications = active
}

func (d *Desktop) onFocusChange(id canvas.WindowID, tab canvas.TabID) {
	d.Logger.Debug("focus", "window", id, "tab", tab)
	if d.Mode == EditMode {
		if _, ok := d.ActiveEditor(); !ok {
			d.Mode = CanvasMode
		}
	}
}

// Cleanup destroys every window.
func (d *Desktop) Cleanup() {
	d.Router.Reset()
	for _, w := range d.Canvas.Windows() {
		d.Canvas.CloseWindow(w.ID)
	}
}
