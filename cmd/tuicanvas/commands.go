package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/Gaurav-Gosain/tuicanvas/internal/config"
	"github.com/Gaurav-Gosain/tuicanvas/internal/theme"
)

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// findEditor returns the user's editor, falling back to common ones on PATH.
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := strings.TrimSpace(os.Getenv(env)); e != "" {
			return e, nil
		}
	}
	for _, e := range []string{"vim", "vi", "nano"} {
		if _, err := exec.LookPath(e); err == nil {
			return e, nil
		}
	}
	return "", fmt.Errorf("no editor found, set $EDITOR")
}

func editConfigFile() error {
	// Creates the default file on first run.
	if _, err := config.LoadUserConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	editor, err := findEditor()
	if err != nil {
		return err
	}

	fields := strings.Fields(editor)
	// #nosec G204 - the editor comes from the user's own environment
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	if _, err := config.LoadUserConfigFrom(path); err != nil {
		return err
	}
	fmt.Println("Configuration saved and valid.")
	return nil
}

// confirm reads a yes/no answer from in. Anything but y or yes is no.
func confirm(in io.Reader, question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func resetConfigToDefaults(in io.Reader, force bool) error {
	if !force && !confirm(in, "This will overwrite your configuration with the defaults. Continue?") {
		fmt.Println("Reset cancelled.")
		return nil
	}
	path, err := config.ResetConfig()
	if err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}
	fmt.Printf("Configuration reset to defaults: %s\n", path)
	return nil
}

func validateConfigFile() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("No configuration file at %s, defaults are in use.\n", path)
		return nil
	}
	if _, err := config.LoadUserConfigFrom(path); err != nil {
		return err
	}
	fmt.Printf("%s is valid.\n", path)
	return nil
}

func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default keybindings: %v\n", err)
		userConfig = config.DefaultConfig()
	}
	fmt.Println(renderKeybindTable(config.GetKeybindings(config.NewKeybindRegistry(userConfig))))
	return nil
}

// renderKeybindTable lays out every section as a block of rows under a
// section title row.
func renderKeybindTable(sections []config.KeybindingSection) string {
	headerStyle := lipgloss.NewStyle().Foreground(theme.CLITableHeader()).Bold(true).Padding(0, 1)
	sectionStyle := lipgloss.NewStyle().Foreground(theme.CLITableHeader()).Italic(true).Padding(0, 1)
	keyStyle := lipgloss.NewStyle().Foreground(theme.CLITableKey()).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	var rows [][]string
	titleRows := make(map[int]bool)
	for _, s := range sections {
		if len(s.Bindings) == 0 {
			continue
		}
		titleRows[len(rows)] = true
		rows = append(rows, []string{s.Title, ""})
		for _, b := range s.Bindings {
			rows = append(rows, []string{b.Key, b.Description})
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableDim())).
		Headers("KEY", "ACTION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case titleRows[row]:
				return sectionStyle
			case col == 0:
				return keyStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}
