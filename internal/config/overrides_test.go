package config

import "testing"

func resetGlobals(t *testing.T) {
	t.Helper()
	saved := []any{UseASCIIOnly, BorderStyle, TabPosition, HideWindowButtons, DropDir, SaveDir, InitialScale}
	t.Cleanup(func() {
		UseASCIIOnly = saved[0].(bool)
		BorderStyle = saved[1].(string)
		TabPosition = saved[2].(string)
		HideWindowButtons = saved[3].(bool)
		DropDir = saved[4].(string)
		SaveDir = saved[5].(string)
		InitialScale = saved[6].(float64)
	})
}

func TestApplyOverridesPrecedence(t *testing.T) {
	resetGlobals(t)
	user := DefaultConfig()
	user.Appearance.BorderStyle = "double"
	user.Appearance.TabPosition = "bottom"
	user.Appearance.HideWindowButtons = true
	user.Files.DropDir = "/from/config"
	user.Files.SaveDir = "/saves/config"

	ApplyOverrides(Overrides{BorderStyle: "thick", SaveDir: "/saves/flag", Scale: 1.5}, user)

	if BorderStyle != "thick" {
		t.Errorf("BorderStyle = %q, flag should win", BorderStyle)
	}
	if TabPosition != "bottom" {
		t.Errorf("TabPosition = %q, config should apply", TabPosition)
	}
	if !HideWindowButtons {
		t.Error("HideWindowButtons should be set from config")
	}
	if DropDir != "/from/config" || SaveDir != "/saves/flag" {
		t.Errorf("DropDir=%q SaveDir=%q", DropDir, SaveDir)
	}
	if InitialScale != 1.5 {
		t.Errorf("InitialScale = %v, want 1.5", InitialScale)
	}
}

func TestApplyOverridesWithoutUserConfig(t *testing.T) {
	resetGlobals(t)
	BorderStyle, TabPosition = "rounded", "top"

	ApplyOverrides(Overrides{ASCIIOnly: true, TabPosition: "hidden"}, nil)

	if !UseASCIIOnly || TabPosition != "hidden" || BorderStyle != "rounded" {
		t.Errorf("ascii=%v tab=%q border=%q", UseASCIIOnly, TabPosition, BorderStyle)
	}
	if GetWindowButtonClose() != WindowButtonCloseASCII {
		t.Error("ASCII close button not used")
	}
}
