package domain

import "strings"

// Modifier is a bitmask of hotkey modifier keys
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
	ModSuper
)

// Chord is a global hotkey combination: one or more modifiers plus a key.
// Key is an uppercase ASCII letter or digit.
type Chord struct {
	Mods Modifier
	Key  byte
}

// String returns the chord in "ctrl+shift+v" form
func (c Chord) String() string {
	var parts []string
	if c.Mods&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if c.Mods&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if c.Mods&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if c.Mods&ModSuper != 0 {
		parts = append(parts, "super")
	}
	parts = append(parts, strings.ToLower(string(c.Key)))
	return strings.Join(parts, "+")
}
