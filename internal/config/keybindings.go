package config

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Action names used in the [keybindings] tables.
const (
	ActionNewWindow      = "new_window"
	ActionOpenFile       = "open_file"
	ActionSaveFile       = "save_file"
	ActionCloseWindow    = "close_window"
	ActionMinimizeWindow = "minimize_window"
	ActionRestoreAll     = "restore_all"
	ActionNextTab        = "next_tab"
	ActionPrevTab        = "prev_tab"

	ActionZoomIn    = "zoom_in"
	ActionZoomOut   = "zoom_out"
	ActionZoomReset = "zoom_reset"
	ActionPanUp     = "pan_up"
	ActionPanDown   = "pan_down"
	ActionPanLeft   = "pan_left"
	ActionPanRight  = "pan_right"

	ActionMoveUp    = "move_up"
	ActionMoveDown  = "move_down"
	ActionMoveLeft  = "move_left"
	ActionMoveRight = "move_right"

	ActionEnterEditMode = "enter_edit_mode"
	ActionToggleHelp    = "toggle_help"
	ActionToggleLogs    = "toggle_logs"
	ActionQuit          = "quit"
)

var actionDescriptions = map[string]string{
	ActionNewWindow:      "New text window",
	ActionOpenFile:       "Open file",
	ActionSaveFile:       "Save current or all windows",
	ActionCloseWindow:    "Close focused window",
	ActionMinimizeWindow: "Minimize focused window",
	ActionRestoreAll:     "Restore all minimized windows",
	ActionNextTab:        "Next tab",
	ActionPrevTab:        "Previous tab",
	ActionZoomIn:         "Zoom in",
	ActionZoomOut:        "Zoom out",
	ActionZoomReset:      "Reset zoom",
	ActionPanUp:          "Pan up",
	ActionPanDown:        "Pan down",
	ActionPanLeft:        "Pan left",
	ActionPanRight:       "Pan right",
	ActionMoveUp:         "Move window up",
	ActionMoveDown:       "Move window down",
	ActionMoveLeft:       "Move window left",
	ActionMoveRight:      "Move window right",
	ActionEnterEditMode:  "Edit focused text window (Esc leaves)",
	ActionToggleHelp:     "Toggle help",
	ActionToggleLogs:     "Toggle log viewer",
	ActionQuit:           "Quit",
}

// ActionDescription returns the help text for an action.
func ActionDescription(action string) string {
	return actionDescriptions[action]
}

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

type registrySection struct {
	title    string
	bindings map[string][]string
}

// KeybindRegistry resolves keys to actions from a user config.
type KeybindRegistry struct {
	keyToAction map[string]string
	actionKeys  map[string][]string
	sections    []registrySection
}

// NewKeybindRegistry indexes every binding in cfg. A nil cfg uses the defaults.
// When a key is bound twice the first section wins; ValidateConfig reports it.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &KeybindRegistry{
		keyToAction: make(map[string]string),
		actionKeys:  make(map[string][]string),
		sections: []registrySection{
			{"Window Management", cfg.Keybindings.WindowManagement},
			{"Canvas", cfg.Keybindings.Canvas},
			{"Window Movement", cfg.Keybindings.Navigation},
			{"Modes", cfg.Keybindings.ModeControl},
		},
	}
	for _, section := range r.sections {
		for _, action := range sortedActions(section.bindings) {
			for _, key := range section.bindings[action] {
				key = NormalizeKey(key)
				if key == "" {
					continue
				}
				if _, taken := r.keyToAction[key]; !taken {
					r.keyToAction[key] = action
				}
				r.actionKeys[action] = append(r.actionKeys[action], key)
			}
		}
	}
	return r
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	return r.keyToAction[NormalizeKey(key)]
}

// GetKeys returns the keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionKeys[action]
}

// NormalizeKey lowercases modifier and named keys and trims whitespace.
// A bare single character keeps its case so "M" and "m" stay distinct.
func NormalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if utf8.RuneCountInString(key) <= 1 {
		return key
	}
	mods, last := "", key
	if strings.HasSuffix(key, "++") {
		mods, last = key[:len(key)-2], "+"
	} else if i := strings.LastIndex(key, "+"); i > 0 {
		mods, last = key[:i], key[i+1:]
	}
	if mods == "" {
		return strings.ToLower(last)
	}
	last = strings.ToLower(last)
	parts := strings.Split(mods, "+")
	for i, p := range parts {
		p = strings.ToLower(p)
		if p == "opt" || p == "option" {
			p = "alt"
		}
		parts[i] = p
	}
	return strings.Join(parts, "+") + "+" + last
}

// GetKeybindings returns all keybinding sections for the help overlay and
// the keybinds list command.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	if registry == nil {
		registry = NewKeybindRegistry(nil)
	}
	sections := make([]KeybindingSection, 0, len(registry.sections)+1)
	for _, section := range registry.sections {
		out := KeybindingSection{Title: section.title}
		for _, action := range sortedActions(section.bindings) {
			keys := section.bindings[action]
			if len(keys) == 0 {
				continue
			}
			out.Bindings = append(out.Bindings, Keybinding{
				Key:         strings.Join(keys, " / "),
				Description: ActionDescription(action),
			})
		}
		sections = append(sections, out)
	}
	sections = append(sections, KeybindingSection{
		Title: "Mouse",
		Bindings: []Keybinding{
			{"Left drag header", "Move window"},
			{"Middle drag", "Pan canvas"},
			{"Right drag", "Resize window"},
			{"Wheel", "Zoom at cursor (hold a modifier to scroll instead)"},
			{"Click tab", "Focus or restore window"},
		},
	})
	return sections
}

func sortedActions(bindings map[string][]string) []string {
	actions := make([]string, 0, len(bindings))
	for action := range bindings {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	return actions
}

// KnownAction reports whether action is a recognized action name.
func KnownAction(action string) bool {
	_, ok := actionDescriptions[action]
	return ok
}
