// Package theme provides color themes and styling for the canvas.
package theme

import (
	"fmt"
	"image/color"
	"log"
	"slices"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// If themeName is empty, theming is disabled and standard terminal colors are used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	if !tint.SetTintID(themeName) {
		tint.SetTintID("default")
		return fmt.Errorf("unknown theme %q, using default", themeName)
	}
	return nil
}

// ListThemes returns every built-in and custom theme ID, sorted.
func ListThemes() []string {
	tint.NewDefaultRegistry()
	if themesDir, err := GetThemesDir(); err == nil {
		_, _ = LoadCustomThemes(themesDir)
	}
	ids := tint.TintIDs()
	slices.Sort(ids)
	return ids
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme, or nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// pick returns the theme color chosen by f, or the fallback hex when theming is off.
func pick(fallback string, f func(t *tint.Tint) *tint.Color) color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color(fallback)
	}
	if c := f(t); c != nil {
		return c
	}
	return lipgloss.Color(fallback)
}

// CanvasBg is the color behind all windows.
func CanvasBg() color.Color {
	return pick("#101018", func(t *tint.Tint) *tint.Color { return t.Bg })
}

// CanvasDot marks the canvas grid that moves with panning.
func CanvasDot() color.Color {
	return pick("#303040", func(t *tint.Tint) *tint.Color { return t.BrightBlack })
}

// ContentFg is the text color inside windows.
func ContentFg() color.Color {
	return pick("#e5e5e5", func(t *tint.Tint) *tint.Color { return t.Fg })
}

// ContentBg is the background inside windows.
func ContentBg() color.Color {
	return pick("#000000", func(t *tint.Tint) *tint.Color { return t.Bg })
}

// Gutter is the line-number color of text windows.
func Gutter() color.Color {
	return pick("#7f7f7f", func(t *tint.Tint) *tint.Color { return t.BrightBlack })
}

// Cursor is the edit cursor color.
func Cursor() color.Color {
	return pick("#00ff00", func(t *tint.Tint) *tint.Color { return t.Cursor })
}

// BorderUnfocused returns the color for unfocused window borders.
func BorderUnfocused() color.Color {
	return pick("#FAAAAA", func(t *tint.Tint) *tint.Color { return t.Red })
}

// BorderFocused returns the color for the focused window in canvas mode.
func BorderFocused() color.Color {
	return pick("#AFFFFF", func(t *tint.Tint) *tint.Color { return t.BrightCyan })
}

// BorderEditing returns the color for the focused window in edit mode.
func BorderEditing() color.Color {
	return pick("#AAFFAA", func(t *tint.Tint) *tint.Color { return t.BrightGreen })
}

// ButtonFg is the color of header buttons.
func ButtonFg() color.Color {
	return pick("#ffffff", func(t *tint.Tint) *tint.Color { return t.BrightWhite })
}

// TabStripBg is the tab strip background.
func TabStripBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// TabInactive is the label color of tabs for visible, unfocused windows.
func TabInactive() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// TabActive is the label color of the focused tab.
func TabActive() color.Color {
	return pick("#00ff00", func(t *tint.Tint) *tint.Color { return t.BrightGreen })
}

// TabMinimized is the label color of tabs for minimized windows.
func TabMinimized() color.Color {
	return lipgloss.Color("#808090")
}

// ModeCanvas is the mode badge color in canvas mode.
func ModeCanvas() color.Color {
	return pick("#5c5cff", func(t *tint.Tint) *tint.Color { return t.BrightBlue })
}

// ModeEdit is the mode badge color in edit mode.
func ModeEdit() color.Color {
	return pick("#4ade80", func(t *tint.Tint) *tint.Color { return t.Green })
}

// NotificationError returns the color for error notifications.
func NotificationError() color.Color {
	return pick("#cd0000", func(t *tint.Tint) *tint.Color { return t.Red })
}

// NotificationWarning returns the color for warning notifications.
func NotificationWarning() color.Color {
	return pick("#cdcd00", func(t *tint.Tint) *tint.Color { return t.Yellow })
}

// NotificationSuccess returns the color for success notifications.
func NotificationSuccess() color.Color {
	return pick("#00cd00", func(t *tint.Tint) *tint.Color { return t.Green })
}

// NotificationInfo returns the color for info notifications.
func NotificationInfo() color.Color {
	return pick("#0000ee", func(t *tint.Tint) *tint.Color { return t.Blue })
}

// NotificationBg returns the background color for notifications.
func NotificationBg() color.Color {
	return pick("#000000", func(t *tint.Tint) *tint.Color { return t.Bg })
}

// NotificationFg returns the foreground color for notifications.
func NotificationFg() color.Color {
	return pick("#e5e5e5", func(t *tint.Tint) *tint.Color { return t.Fg })
}

// LogViewerTitle is the title color of the log overlay.
func LogViewerTitle() color.Color { return lipgloss.Color("14") }

// LogViewerError is the color of ERROR entries.
func LogViewerError() color.Color { return lipgloss.Color("9") }

// LogViewerWarn is the color of WARN entries.
func LogViewerWarn() color.Color { return lipgloss.Color("11") }

// LogViewerInfo is the color of INFO entries.
func LogViewerInfo() color.Color { return lipgloss.Color("10") }

// LogViewerBg is the background of the log overlay.
func LogViewerBg() color.Color { return lipgloss.Color("#1a1a2e") }

// HelpKeyBadge returns the color for key badges in the help overlay.
func HelpKeyBadge() color.Color { return lipgloss.Color("5") }

// HelpGray returns the gray used for descriptions and hints.
func HelpGray() color.Color { return lipgloss.Color("8") }

// HelpBorder returns the border color of overlays.
func HelpBorder() color.Color { return lipgloss.Color("14") }

// HelpTitle returns the section title color of the help overlay.
func HelpTitle() color.Color { return lipgloss.Color("12") }

// CLITableHeader returns the color for CLI table headers.
func CLITableHeader() color.Color { return lipgloss.Color("12") }

// CLITableKey returns the color for CLI table keys.
func CLITableKey() color.Color { return lipgloss.Color("11") }

// CLITableDim returns the dimmed color for CLI table elements.
func CLITableDim() color.Color { return lipgloss.Color("8") }

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
