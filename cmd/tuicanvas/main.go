// Package main implements tuicanvas, a zoomable terminal canvas of text and
// image windows with drag, pan, tabs and focus.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Gaurav-Gosain/tuicanvas/internal/theme"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode         bool
	asciiOnly         bool
	themeName         string
	listThemes        bool
	borderStyle       string
	tabPosition       string
	hideWindowButtons bool
	dropDir           string
	saveDir           string
	initialScale      float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tuicanvas [file...]",
		Short: "Zoomable canvas of text and image windows",
		Long: `tuicanvas - a windowed canvas for the terminal

Open text and image files as windows on an infinite canvas. Drag windows by
their header, pan with the middle button, zoom at the cursor with the wheel,
and switch between windows from the tab strip.`,
		Example: `  # Start with an empty canvas
  tuicanvas

  # Open files as windows
  tuicanvas notes.md diagram.svg

  # Open new files dropped into a folder
  tuicanvas --drop-dir ~/Inbox

  # Start zoomed out with a theme
  tuicanvas --scale 0.75 --theme dracula

  # List all available themes
  tuicanvas --list-themes

  # Edit configuration
  tuicanvas config edit

  # List all keybindings
  tuicanvas keybinds list`,
		Version: version,
		RunE: func(_ *cobra.Command, args []string) error {
			if listThemes {
				for _, t := range theme.ListThemes() {
					fmt.Println(t)
				}
				return nil
			}
			return runLocal(args)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to the state directory")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters for buttons and separators, and draw images without color")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors")
	rootCmd.PersistentFlags().BoolVar(&listThemes, "list-themes", false, "List all available themes and exit")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, block, ascii (default: from config or rounded)")
	rootCmd.PersistentFlags().StringVar(&tabPosition, "tab-position", "", "Tab strip position: top, bottom, hidden (default: from config or top)")
	rootCmd.PersistentFlags().BoolVar(&hideWindowButtons, "hide-window-buttons", false, "Hide the minimize and close buttons")
	rootCmd.PersistentFlags().StringVar(&dropDir, "drop-dir", "", "Open files created in this folder as windows")
	rootCmd.PersistentFlags().StringVar(&saveDir, "save-dir", "", "Where saved windows are written (default: from config or download directory)")
	rootCmd.PersistentFlags().Float64Var(&initialScale, "scale", 0, "Initial zoom level (default: 1)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tuicanvas configuration",
		Long:  `Manage the tuicanvas configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(_ *cobra.Command, _ []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the tuicanvas configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi and nano in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	var forceReset bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the tuicanvas configuration file to default settings

This overwrites your existing configuration after confirmation.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return resetConfigToDefaults(os.Stdin, forceReset)
		},
	}
	configResetCmd.Flags().BoolVarP(&forceReset, "yes", "y", false, "Skip the confirmation prompt")

	configValidateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file for errors",
		RunE: func(_ *cobra.Command, _ []string) error {
			return validateConfigFile()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd, configValidateCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		Long:  `Display all configured keybindings in a formatted table`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return listKeybindings()
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)

	rootCmd.AddCommand(configCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
