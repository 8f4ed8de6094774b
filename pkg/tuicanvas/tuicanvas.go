// Package tuicanvas provides a zoomable canvas of text and image windows that
// can be embedded in other Bubble Tea applications or used as a standalone TUI.
//
// # Basic Usage
//
// Create a canvas with default options:
//
//	model := tuicanvas.New()
//	p := tea.NewProgram(model, tuicanvas.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
// Use options to customize the canvas:
//
//	model := tuicanvas.New(
//		tuicanvas.WithTheme("dracula"),
//		tuicanvas.WithFiles("notes.md", "logo.png"),
//		tuicanvas.WithTabPosition("bottom"),
//	)
//
// # Drop Folder
//
// Files created in a folder can be opened as windows while the program runs:
//
//	p := tea.NewProgram(model, tuicanvas.ProgramOptions()...)
//	if err := tuicanvas.WatchDropDir(ctx, p, "/tmp/inbox"); err != nil {
//		log.Fatal(err)
//	}
package tuicanvas

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/tuicanvas/internal/app"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/Gaurav-Gosain/tuicanvas/internal/files"
	"github.com/Gaurav-Gosain/tuicanvas/internal/input"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/log"
)

// Model is the canvas model that implements tea.Model.
type Model = app.Desktop

// Mode represents the current interaction mode.
type Mode = app.Mode

// Mode constants
const (
	// CanvasMode routes keys to window and canvas actions.
	CanvasMode = app.CanvasMode
	// EditMode types into the focused text window.
	EditMode = app.EditMode
)

// Options configures a canvas.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord", "tokyonight").
	// Leave empty to use standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII characters for buttons and draws images without color.
	ASCIIOnly bool

	// BorderStyle sets the window border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden", "block", "ascii"
	BorderStyle string

	// TabPosition sets where the tab strip appears.
	// Valid values: "top", "bottom", "hidden"
	TabPosition string

	// HideWindowButtons hides the minimize and close buttons.
	HideWindowButtons bool

	// SaveDir is where saves are written. Empty uses the download directory.
	SaveDir string

	// Files are opened as windows when the program starts.
	Files []string

	// Profile selects how image windows are drawn.
	Profile colorprofile.Profile

	// Width is the initial width (set automatically if 0).
	Width int

	// Height is the initial height (set automatically if 0).
	Height int

	// Logger receives the in-app log. Nil discards.
	Logger *log.Logger

	// UserConfig is a custom user configuration. If nil, the config file is
	// loaded, falling back to defaults.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring a canvas.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithASCIIOnly enables ASCII-only mode.
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the window border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithTabPosition sets the tab strip position.
func WithTabPosition(position string) Option {
	return func(o *Options) {
		o.TabPosition = position
	}
}

// WithHideWindowButtons hides window control buttons.
func WithHideWindowButtons(hide bool) Option {
	return func(o *Options) {
		o.HideWindowButtons = hide
	}
}

// WithSaveDir sets where saved windows are written.
func WithSaveDir(dir string) Option {
	return func(o *Options) {
		o.SaveDir = dir
	}
}

// WithFiles opens paths as windows on start.
func WithFiles(paths ...string) Option {
	return func(o *Options) {
		o.Files = append(o.Files, paths...)
	}
}

// WithProfile sets the color profile used for image windows.
func WithProfile(p colorprofile.Profile) Option {
	return func(o *Options) {
		o.Profile = p
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithLogger mirrors the in-app log to logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{}
}

// New creates a canvas model with the given options.
func New(opts ...Option) *Model {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(options)
}

func newModel(options Options) *Model {
	app.SetInputHandler(input.HandleInput)

	userConfig := options.UserConfig
	if userConfig == nil {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:         options.ASCIIOnly,
		BorderStyle:       options.BorderStyle,
		TabPosition:       options.TabPosition,
		HideWindowButtons: options.HideWindowButtons,
		SaveDir:           options.SaveDir,
		ThemeName:         options.Theme,
	}, userConfig)

	profile := options.Profile
	if config.UseASCIIOnly {
		profile = colorprofile.Ascii
	}

	d := app.NewDesktop(app.Options{
		Config:  userConfig,
		Logger:  options.Logger,
		Profile: profile,
		SaveDir: config.SaveDir,
		Files:   options.Files,
	})
	if options.Width > 0 && options.Height > 0 {
		d.Resize(options.Width, options.Height)
	}
	return d
}

// ProgramOptions returns recommended tea.ProgramOption values for running the canvas.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that drops pointer motion
// unless a drag, pan or resize is in progress.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	m, ok := model.(*Model)
	if !ok || m.Router.Busy() {
		return msg
	}
	return nil
}

// WatchDropDir opens every file created in dir as a window of the program
// until ctx is done.
func WatchDropDir(ctx context.Context, p *tea.Program, dir string) error {
	return files.WatchDropDir(ctx, dir, config.DropDebounce,
		func(doc files.Document) { p.Send(app.FileDroppedMsg{Doc: doc}) },
		func(err error) { p.Send(app.DropErrorMsg{Err: err}) },
	)
}

// Config re-exports the config package for customization.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
