// Package overlay defines the narrow display capabilities the popup
// controller needs from its host window: a surface to drive and a cursor
// positioner aware of display scaling. The host window's rendering and
// lifecycle stay outside this core.
package overlay

import "vocabpopup/internal/domain"

// Surface is the slice of the host popup window the controller drives
type Surface interface {
	Show()
	Hide()
	MoveTo(p domain.Point)
	SetResult(text string)
	ResetInput()
	FocusInput()
}

// Positioner resolves where the popup should appear. CursorPos reads the
// pointer position in device pixels; FromScreen converts it into the
// popup's local coordinate space honoring the active display's scale.
type Positioner interface {
	CursorPos() (domain.Point, error)
	FromScreen(p domain.Point) domain.Point
}
