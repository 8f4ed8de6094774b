package config

import (
	"log"

	"github.com/Gaurav-Gosain/tuicanvas/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters for buttons and separators
	ASCIIOnly bool

	// BorderStyle overrides the window border style
	BorderStyle string

	// TabPosition overrides where the tab strip is drawn
	TabPosition string

	// HideWindowButtons overrides hiding window control buttons
	HideWindowButtons bool

	// DropDir overrides the watched drop folder
	DropDir string

	// SaveDir overrides where saves are written
	SaveDir string

	// Scale is the initial zoom (0 means 1)
	Scale float64

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	if overrides.ASCIIOnly {
		UseASCIIOnly = true
	}

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Tab Position - CLI flag takes precedence, otherwise use user config
	if overrides.TabPosition != "" {
		TabPosition = overrides.TabPosition
	} else if userConfig != nil && userConfig.Appearance.TabPosition != "" {
		TabPosition = userConfig.Appearance.TabPosition
	}

	// Hide Window Buttons - OR of CLI flag and user config
	if userConfig != nil {
		HideWindowButtons = overrides.HideWindowButtons || userConfig.Appearance.HideWindowButtons
	} else {
		HideWindowButtons = overrides.HideWindowButtons
	}

	if overrides.DropDir != "" {
		DropDir = overrides.DropDir
	} else if userConfig != nil && userConfig.Files.DropDir != "" {
		DropDir = userConfig.Files.DropDir
	}

	if overrides.SaveDir != "" {
		SaveDir = overrides.SaveDir
	} else if userConfig != nil && userConfig.Files.SaveDir != "" {
		SaveDir = userConfig.Files.SaveDir
	}

	if overrides.Scale > 0 {
		InitialScale = overrides.Scale
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}
}
