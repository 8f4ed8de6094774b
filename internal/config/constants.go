// Package config provides configuration constants, keybinding management, and user settings.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Canvas Defaults
// =============================================================================

const (
	// DefaultWindowWidth is the logical content width of new windows in pixels
	DefaultWindowWidth = 600

	// DefaultWindowHeight is the logical content height of new windows in pixels
	DefaultWindowHeight = 360

	// MinContentWidth is the smallest content width a window can be resized to
	MinContentWidth = 100

	// MinContentHeight is the smallest content height a window can be resized to
	MinContentHeight = 40

	// DefaultMinScale is the lower bound of the global zoom
	DefaultMinScale = 0.5

	// DefaultMaxScale is the upper bound of the global zoom
	DefaultMaxScale = 3.0

	// DefaultZoomInFactor multiplies the scale on each zoom-in step
	DefaultZoomInFactor = 1.1

	// DefaultZoomOutFactor multiplies the scale on each zoom-out step
	DefaultZoomOutFactor = 0.9

	// BaseFontSize is the text size of text windows at scale 1
	BaseFontSize = 14
)

// =============================================================================
// Cell Geometry
// =============================================================================

const (
	// DefaultCellWidth is the pixel width of one terminal cell
	DefaultCellWidth = 10

	// DefaultCellHeight is the pixel height of one terminal cell; window headers are one cell tall
	DefaultCellHeight = 20

	// DefaultPanStep is how many cells a keyboard pan moves the canvas
	DefaultPanStep = 4

	// DefaultMoveStep is how many cells a keyboard move shifts the focused window
	DefaultMoveStep = 2

	// HeaderButtonCells is the width in cells of each header button
	HeaderButtonCells = 3
)

// =============================================================================
// Durations
// =============================================================================

const (
	// NotificationDuration is the default duration notifications remain visible
	NotificationDuration = 2 * time.Second

	// ErrorNotificationDuration keeps errors on screen a little longer
	ErrorNotificationDuration = 4 * time.Second

	// DropDebounce is how long a dropped file must stay quiet before it is opened
	DropDebounce = 250 * time.Millisecond

	// NotificationTickInterval drives notification expiry
	NotificationTickInterval = 500 * time.Millisecond
)

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the refresh rate during regular operation
	NormalFPS = 60
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// TabStripHeight is the number of rows used by the tab strip
	TabStripHeight = 1

	// MaxTabLabelWidth truncates long tab labels
	MaxTabLabelWidth = 24

	// LogViewerWidth is the width of the log viewer overlay
	LogViewerWidth = 80

	// PromptWidth is the width of the input prompt overlay
	PromptWidth = 60

	// MaxNotificationWidth is the maximum width of notification messages
	MaxNotificationWidth = 60

	// NotificationMargin is the margin from screen edge for notifications
	NotificationMargin = 2

	// MaxVisibleNotifications is the maximum number of notifications shown at once
	MaxVisibleNotifications = 3

	// GutterMinWidth is the minimum line-number gutter width in text windows
	GutterMinWidth = 3
)

// =============================================================================
// Limits
// =============================================================================

const (
	// MaxLogMessages caps the in-app log buffer
	MaxLogMessages = 500

	// MaxOpenFileSize refuses to load files larger than this many bytes
	MaxOpenFileSize = 32 << 20
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	// ZIndexWindows is the base layer for canvas windows
	ZIndexWindows = 0

	// ZIndexTabStrip keeps the tab strip above every window
	ZIndexTabStrip = 1000

	// ZIndexNotifications is the layer for notifications
	ZIndexNotifications = 1100

	// ZIndexOverlay is the layer for help, logs and prompts
	ZIndexOverlay = 1200
)

// =============================================================================
// Notification Icons (ASCII-safe)
// =============================================================================

const (
	// NotificationIconError is the error notification icon
	NotificationIconError = "[X]"

	// NotificationIconWarning is the warning notification icon
	NotificationIconWarning = "[!]"

	// NotificationIconSuccess is the success notification icon
	NotificationIconSuccess = "[OK]"

	// NotificationIconInfo is the info notification icon
	NotificationIconInfo = "[i]"
)

// Mode Colors
const (
	// ModeColorCanvas is the color for the canvas mode indicator
	ModeColorCanvas = "#4865f2" // Blue

	// ModeColorEdit is the color for the edit mode indicator
	ModeColorEdit = "#4ade80" // Green

	// ModeColorPrompt is the color for the prompt mode indicator
	ModeColorPrompt = "#fb923c" // Orange
)

// =============================================================================
// Window Decoration Characters
// =============================================================================

const (
	// WindowButtonClose is the close button in a window header.
	WindowButtonClose = " ⤫ "
	// WindowButtonMinimize is the minimize button in a window header.
	WindowButtonMinimize = " ─ "
	// TabSeparator separates tab strip entries.
	TabSeparator = "│"
	// TabMinimizedMarker prefixes labels of minimized tabs.
	TabMinimizedMarker = "▾ "
)

const (
	// WindowButtonCloseASCII is the close button (ASCII fallback).
	WindowButtonCloseASCII = " X "
	// WindowButtonMinimizeASCII is the minimize button (ASCII fallback).
	WindowButtonMinimizeASCII = " _ "
	// TabSeparatorASCII separates tab strip entries (ASCII fallback).
	TabSeparatorASCII = "|"
	// TabMinimizedMarkerASCII prefixes labels of minimized tabs (ASCII fallback).
	TabMinimizedMarkerASCII = "v "
)

// =============================================================================
// Runtime Configuration
// =============================================================================

// UseASCIIOnly controls whether to use ASCII fallback characters
// Set via --ascii-only command-line flag
var UseASCIIOnly = false

// BorderStyle is the window border style
// Set via --border-style flag or appearance.border_style config
var BorderStyle = "rounded"

// TabPosition places the tab strip: top, bottom or hidden
// Set via --tab-position flag or appearance.tab_position config
var TabPosition = "top"

// HideWindowButtons hides the close and minimize buttons in window headers
var HideWindowButtons = false

// DropDir is the folder watched for files to open; empty disables watching
var DropDir = ""

// SaveDir is where saved windows are written; empty means the user's download directory
var SaveDir = ""

// InitialScale is the global scale the canvas starts at
var InitialScale = 1.0

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}

// GetWindowButtonClose returns the appropriate close button
func GetWindowButtonClose() string {
	if UseASCIIOnly {
		return WindowButtonCloseASCII
	}
	return WindowButtonClose
}

// GetWindowButtonMinimize returns the appropriate minimize button
func GetWindowButtonMinimize() string {
	if UseASCIIOnly {
		return WindowButtonMinimizeASCII
	}
	return WindowButtonMinimize
}

// GetTabSeparator returns the appropriate tab separator
func GetTabSeparator() string {
	if UseASCIIOnly {
		return TabSeparatorASCII
	}
	return TabSeparator
}

// GetTabMinimizedMarker returns the appropriate minimized tab marker
func GetTabMinimizedMarker() string {
	if UseASCIIOnly {
		return TabMinimizedMarkerASCII
	}
	return TabMinimizedMarker
}

// ValidBorderStyles lists the accepted border_style values.
var ValidBorderStyles = []string{"rounded", "normal", "thick", "double", "hidden", "block", "ascii"}

// ValidTabPositions lists the accepted tab_position values.
var ValidTabPositions = []string{"top", "bottom", "hidden"}
