package ui

import tea "github.com/charmbracelet/bubbletea"

func openScreenCmd(name string) tea.Cmd {
	return func() tea.Msg { return OpenScreenMsg{Name: name} }
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// defaultKeybinds registers the app-level bindings. Keys handled by the
// focused view (tab, enter, +/-) are not registered here.
func defaultKeybinds() *KeybindRegistry {
	screen := []AppMode{ModeScreen}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("?", msgCmd(ShowHelpMsg{}), "Help")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC h", msgCmd(ShowHelpMsg{}), "Help")
	reg.BindWithDesc("SPC s", msgCmd(ToggleSlowMotionMsg{}), "Slow motion")
	reg.BindWithDescForMode("SPC r", msgCmd(RestartScreenMsg{}), "Restart screen", screen)
	reg.BindWithDescForMode("SPC g", msgCmd(CloseScreenMsg{}), "Back to gallery", screen)

	reg.Group("SPC o", "Open")
	for _, name := range []string{"crossfade", "example-app"} {
		reg.BindWithDesc("SPC o "+name[:1], openScreenCmd(name), "Open "+name)
	}
	return reg
}
