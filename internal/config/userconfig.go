package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const configRelPath = "tuicanvas/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Canvas      CanvasConfig      `toml:"canvas"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Files       FilesConfig       `toml:"files"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// CanvasConfig holds geometry and zoom settings
type CanvasConfig struct {
	MinScale         float64 `toml:"min_scale"`          // Lowest zoom level (default: 0.5)
	MaxScale         float64 `toml:"max_scale"`          // Highest zoom level (default: 3.0)
	ZoomInFactor     float64 `toml:"zoom_in_factor"`     // Scale multiplier for one zoom-in step (default: 1.1)
	ZoomOutFactor    float64 `toml:"zoom_out_factor"`    // Scale multiplier for one zoom-out step (default: 0.9)
	WindowWidth      float64 `toml:"window_width"`       // Logical width of new windows in pixels (default: 600)
	WindowHeight     float64 `toml:"window_height"`      // Logical height of new windows in pixels (default: 360)
	MinContentWidth  float64 `toml:"min_content_width"`  // Resize lower bound in pixels (default: 100)
	MinContentHeight float64 `toml:"min_content_height"` // Resize lower bound in pixels (default: 40)
	CellWidth        int     `toml:"cell_width"`         // Pixels per terminal column (default: 10)
	CellHeight       int     `toml:"cell_height"`        // Pixels per terminal row (default: 20)
	PanStep          int     `toml:"pan_step"`           // Cells moved per keyboard pan (default: 4)
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BorderStyle       string `toml:"border_style"`        // Border style: rounded, normal, thick, double, hidden, block, ascii
	TabPosition       string `toml:"tab_position"`        // Tab strip position: top, bottom, hidden
	HideWindowButtons bool   `toml:"hide_window_buttons"` // Hide the close and minimize buttons
	Theme             string `toml:"theme"`               // Color theme name (e.g., dracula, nord, my-custom-theme)
}

// FilesConfig holds file collaborator settings
type FilesConfig struct {
	DropDir string `toml:"drop_dir"` // Folder whose new files open as windows (empty: disabled)
	SaveDir string `toml:"save_dir"` // Where saves are written (empty: download directory)
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	WindowManagement map[string][]string `toml:"window_management"`
	Canvas           map[string][]string `toml:"canvas"`
	Navigation       map[string][]string `toml:"navigation"`
	ModeControl      map[string][]string `toml:"mode_control"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Canvas: CanvasConfig{
			MinScale:         DefaultMinScale,
			MaxScale:         DefaultMaxScale,
			ZoomInFactor:     DefaultZoomInFactor,
			ZoomOutFactor:    DefaultZoomOutFactor,
			WindowWidth:      DefaultWindowWidth,
			WindowHeight:     DefaultWindowHeight,
			MinContentWidth:  MinContentWidth,
			MinContentHeight: MinContentHeight,
			CellWidth:        DefaultCellWidth,
			CellHeight:       DefaultCellHeight,
			PanStep:          DefaultPanStep,
		},
		Appearance: AppearanceConfig{
			BorderStyle:       "rounded",
			TabPosition:       "top",
			HideWindowButtons: false,
		},
		Keybindings: KeybindingsConfig{
			WindowManagement: map[string][]string{
				ActionNewWindow:      {"n"},
				ActionOpenFile:       {"o"},
				ActionSaveFile:       {"s"},
				ActionCloseWindow:    {"x", "w"},
				ActionMinimizeWindow: {"m"},
				ActionRestoreAll:     {"M"},
				ActionNextTab:        {"tab"},
				ActionPrevTab:        {"shift+tab"},
			},
			Canvas: map[string][]string{
				ActionZoomIn:    {"+", "="},
				ActionZoomOut:   {"-"},
				ActionZoomReset: {"0"},
				ActionPanUp:     {"up", "k"},
				ActionPanDown:   {"down", "j"},
				ActionPanLeft:   {"left", "h"},
				ActionPanRight:  {"right", "l"},
			},
			Navigation: map[string][]string{
				ActionMoveUp:    {"shift+up", "K"},
				ActionMoveDown:  {"shift+down", "J"},
				ActionMoveLeft:  {"shift+left", "H"},
				ActionMoveRight: {"shift+right", "L"},
			},
			ModeControl: map[string][]string{
				ActionEnterEditMode: {"i", "enter"},
				ActionToggleHelp:    {"?"},
				ActionToggleLogs:    {"D"},
				ActionQuit:          {"q", "ctrl+c"},
			},
		},
	}
}

// LoadUserConfig loads the user configuration from XDG config directory,
// creating a commented default file on first run
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		configPath, err = xdg.ConfigFile(configRelPath)
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		return createDefaultConfig(configPath)
	}
	return LoadUserConfigFrom(configPath)
}

// LoadUserConfigFrom reads, completes and validates the config file at path.
// Warnings are returned alongside a usable config; errors make it fail.
func LoadUserConfigFrom(path string) (*UserConfig, error) {
	// #nosec G304 - reading the user's own config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingCanvas(&cfg, defaultCfg)
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, issue := range validation.Errors {
			fmt.Fprintf(os.Stderr, "Config error in [%s]: %s - %s\n", issue.Field, issue.Key, issue.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}
	for _, issue := range validation.Warnings {
		fmt.Fprintf(os.Stderr, "Config warning in [%s]: %s - %s\n", issue.Field, issue.Key, issue.Message)
	}

	return &cfg, nil
}

// createDefaultConfig writes the default config, with a documentation header, to path
func createDefaultConfig(configPath string) (*UserConfig, error) {
	cfg := DefaultConfig()

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# tuicanvas Configuration File\n")
	sb.WriteString("# This file allows you to customize the canvas, appearance and keybindings\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# For keybindings documentation, run: tuicanvas keybinds list\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# CANVAS SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# Geometry is in pixels; one terminal cell is cell_width x cell_height pixels.\n")
	sb.WriteString("# min_scale / max_scale: zoom bounds (defaults: 0.5 / 3.0)\n")
	sb.WriteString("# zoom_in_factor / zoom_out_factor: per-step multipliers (defaults: 1.1 / 0.9)\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# border_style: rounded, normal, thick, double, hidden, block, ascii\n")
	sb.WriteString("#   Default: rounded\n")
	sb.WriteString("#\n")
	sb.WriteString("# tab_position: top, bottom, hidden\n")
	sb.WriteString("#   Default: top\n")
	sb.WriteString("#\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   CLI flag --theme overrides this. Custom themes: ~/.config/tuicanvas/themes/*.json\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# FILES\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# drop_dir: files created in this folder open as windows (empty: disabled)\n")
	sb.WriteString("# save_dir: where saved windows are written (empty: download directory)\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// ResetConfig overwrites the config file with defaults and returns its path
func ResetConfig() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	if _, err := createDefaultConfig(configPath); err != nil {
		return "", err
	}
	return configPath, nil
}

// fillMissingCanvas replaces unset canvas values with defaults
func fillMissingCanvas(cfg, defaultCfg *UserConfig) {
	c, d := &cfg.Canvas, defaultCfg.Canvas
	if c.MinScale == 0 {
		c.MinScale = d.MinScale
	}
	if c.MaxScale == 0 {
		c.MaxScale = d.MaxScale
	}
	if c.ZoomInFactor == 0 {
		c.ZoomInFactor = d.ZoomInFactor
	}
	if c.ZoomOutFactor == 0 {
		c.ZoomOutFactor = d.ZoomOutFactor
	}
	if c.WindowWidth == 0 {
		c.WindowWidth = d.WindowWidth
	}
	if c.WindowHeight == 0 {
		c.WindowHeight = d.WindowHeight
	}
	if c.MinContentWidth == 0 {
		c.MinContentWidth = d.MinContentWidth
	}
	if c.MinContentHeight == 0 {
		c.MinContentHeight = d.MinContentHeight
	}
	if c.CellWidth == 0 {
		c.CellWidth = d.CellWidth
	}
	if c.CellHeight == 0 {
		c.CellHeight = d.CellHeight
	}
	if c.PanStep == 0 {
		c.PanStep = d.PanStep
	}
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.TabPosition == "" {
		cfg.Appearance.TabPosition = defaultCfg.Appearance.TabPosition
	}
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings.WindowManagement == nil {
		cfg.Keybindings.WindowManagement = make(map[string][]string)
	}
	if cfg.Keybindings.Canvas == nil {
		cfg.Keybindings.Canvas = make(map[string][]string)
	}
	if cfg.Keybindings.Navigation == nil {
		cfg.Keybindings.Navigation = make(map[string][]string)
	}
	if cfg.Keybindings.ModeControl == nil {
		cfg.Keybindings.ModeControl = make(map[string][]string)
	}

	fillMapDefaults(cfg.Keybindings.WindowManagement, defaultCfg.Keybindings.WindowManagement)
	fillMapDefaults(cfg.Keybindings.Canvas, defaultCfg.Keybindings.Canvas)
	fillMapDefaults(cfg.Keybindings.Navigation, defaultCfg.Keybindings.Navigation)
	fillMapDefaults(cfg.Keybindings.ModeControl, defaultCfg.Keybindings.ModeControl)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}
