// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
package keys

import tea "charm.land/bubbletea/v2"

// Transcript scrolling
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Input and modal keys
var (
	Enter      = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                      // "enter"
	ShiftEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}).String() // "shift+enter"
	AltEnter   = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}).String()   // "alt+enter"
	Tab        = tea.KeyPressMsg{Code: tea.KeyTab}.String()                        // "tab"
	ShiftTab   = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String()   // "shift+tab"
	Escape     = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                     // "esc"
)

// Ctrl combinations
var (
	CtrlC  = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()       // "ctrl+c"
	CtrlT  = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String()       // "ctrl+t"
	CtrlL  = (tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}).String()       // "ctrl+l"
	CtrlN  = (tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}).String()       // "ctrl+n"
	CtrlY  = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String()       // "ctrl+y"
	CtrlUp = (tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModCtrl}).String() // "ctrl+up"
	CtrlDn = (tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModCtrl}).String()
	CtrlS  = (tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}).String() // "ctrl+s"
)

// Function keys
var (
	F1 = tea.KeyPressMsg{Code: tea.KeyF1}.String() // "f1"
)
