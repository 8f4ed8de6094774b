package config

import (
	"fmt"
	"slices"
)

// ValidationIssue is one problem found in a config file.
type ValidationIssue struct {
	Field   string // config section, e.g. "canvas"
	Key     string
	Message string
}

// ValidationResult collects fatal errors and non-fatal warnings.
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether the config must be rejected.
func (v *ValidationResult) HasErrors() bool { return len(v.Errors) > 0 }

// HasWarnings reports whether anything should be shown to the user.
func (v *ValidationResult) HasWarnings() bool { return len(v.Warnings) > 0 }

func (v *ValidationResult) errorf(field, key, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (v *ValidationResult) warnf(field, key, format string, args ...any) {
	v.Warnings = append(v.Warnings, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

// ValidateConfig checks value ranges, enum settings and keybinding conflicts.
// Invalid enum values are reset to their defaults and reported as warnings.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	v := &ValidationResult{}
	validateCanvas(cfg, v)
	validateAppearance(cfg, v)
	validateKeybindings(cfg, v)
	return v
}

func validateCanvas(cfg *UserConfig, v *ValidationResult) {
	c := cfg.Canvas
	if c.MinScale <= 0 {
		v.errorf("canvas", "min_scale", "must be positive, got %v", c.MinScale)
	}
	if c.MaxScale < c.MinScale {
		v.errorf("canvas", "max_scale", "must be at least min_scale (%v), got %v", c.MinScale, c.MaxScale)
	}
	if c.ZoomInFactor <= 1 {
		v.errorf("canvas", "zoom_in_factor", "must be greater than 1, got %v", c.ZoomInFactor)
	}
	if c.ZoomOutFactor <= 0 || c.ZoomOutFactor >= 1 {
		v.errorf("canvas", "zoom_out_factor", "must be between 0 and 1, got %v", c.ZoomOutFactor)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		v.errorf("canvas", "window_width/window_height", "must be positive, got %vx%v", c.WindowWidth, c.WindowHeight)
	}
	if c.MinContentWidth <= 0 || c.MinContentHeight <= 0 {
		v.errorf("canvas", "min_content_width/min_content_height", "must be positive")
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		v.errorf("canvas", "cell_width/cell_height", "must be positive, got %dx%d", c.CellWidth, c.CellHeight)
	}
	if c.PanStep < 0 {
		v.errorf("canvas", "pan_step", "must not be negative, got %d", c.PanStep)
	}
	if c.WindowWidth > 0 && c.WindowWidth < c.MinContentWidth {
		v.warnf("canvas", "window_width", "smaller than min_content_width; resizing will snap it larger")
	}
}

func validateAppearance(cfg *UserConfig, v *ValidationResult) {
	if !slices.Contains(ValidBorderStyles, cfg.Appearance.BorderStyle) {
		v.warnf("appearance", "border_style", "unknown style %q, using rounded", cfg.Appearance.BorderStyle)
		cfg.Appearance.BorderStyle = "rounded"
	}
	if !slices.Contains(ValidTabPositions, cfg.Appearance.TabPosition) {
		v.warnf("appearance", "tab_position", "unknown position %q, using top", cfg.Appearance.TabPosition)
		cfg.Appearance.TabPosition = "top"
	}
}

func validateKeybindings(cfg *UserConfig, v *ValidationResult) {
	sections := []struct {
		name     string
		bindings map[string][]string
	}{
		{"keybindings.window_management", cfg.Keybindings.WindowManagement},
		{"keybindings.canvas", cfg.Keybindings.Canvas},
		{"keybindings.navigation", cfg.Keybindings.Navigation},
		{"keybindings.mode_control", cfg.Keybindings.ModeControl},
	}

	owner := make(map[string]string)
	for _, section := range sections {
		for _, action := range sortedActions(section.bindings) {
			if !KnownAction(action) {
				v.warnf(section.name, action, "unknown action, ignored")
				continue
			}
			for _, key := range section.bindings[action] {
				key = NormalizeKey(key)
				if key == "" {
					v.errorf(section.name, action, "empty key")
					continue
				}
				if prev, taken := owner[key]; taken && prev != action {
					v.errorf(section.name, action, "key %q is already bound to %s", key, prev)
					continue
				}
				owner[key] = action
			}
		}
	}
}
