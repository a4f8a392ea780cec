// Package controller owns the popup's visibility state machine and the
// live lookup pipeline. All methods run on the single UI-owning dispatch
// goroutine; the store is read-only and the matcher is pure, so no locking
// is needed here.
package controller

import (
	"strings"

	"go.uber.org/zap"

	"vocabpopup/internal/domain"
	"vocabpopup/internal/fuzzy"
	"vocabpopup/internal/hotkey"
	"vocabpopup/internal/overlay"
	"vocabpopup/internal/vocabulary"
)

// toggleHotkeyID identifies this controller's single hotkey registration
// within the process
const toggleHotkeyID = 1

// resultMarker prefixes every displayed translation
const resultMarker = "→ "

// PopupController orchestrates the vocabulary store, the fuzzy matcher and
// the hotkey bridge into the show/hide/lookup behavior of the popup.
type PopupController struct {
	store   *vocabulary.Store
	surface overlay.Surface
	pos     overlay.Positioner
	bridge  hotkey.Bridge
	logger  *zap.Logger

	chord domain.Chord
	hwnd  uintptr

	state      domain.PopupState
	registered bool
}

// New creates a popup controller. hwnd is the host window handle used for
// hotkey registration; zero binds the hotkey to the dispatch thread.
func New(
	store *vocabulary.Store,
	surface overlay.Surface,
	pos overlay.Positioner,
	bridge hotkey.Bridge,
	chord domain.Chord,
	hwnd uintptr,
	logger *zap.Logger,
) *PopupController {
	return &PopupController{
		store:   store,
		surface: surface,
		pos:     pos,
		bridge:  bridge,
		chord:   chord,
		hwnd:    hwnd,
		logger:  logger,
		state:   domain.StateHidden,
	}
}

// Start registers the global hotkey. A refused registration is a soft
// failure: the popup keeps working without its global trigger.
func (c *PopupController) Start() {
	if c.bridge.Register(c.chord, toggleHotkeyID, c.hwnd, c.Toggle) {
		c.registered = true
		return
	}
	c.logger.Warn("Running without a global hotkey trigger",
		zap.String("chord", c.chord.String()),
	)
}

// Shutdown releases the hotkey registration and hides the popup.
// Idempotent; must run on every exit path so the OS binding is not leaked
// within the process lifetime.
func (c *PopupController) Shutdown() {
	if c.registered {
		c.bridge.Unregister(toggleHotkeyID, c.hwnd)
		c.registered = false
	}
	if c.state == domain.StateVisible {
		c.hide()
	}
}

// Toggle flips popup visibility; bound to the global hotkey
func (c *PopupController) Toggle() {
	if c.state == domain.StateVisible {
		c.hide()
		return
	}
	c.show()
}

// Deactivated hides the popup when it loses input focus
func (c *PopupController) Deactivated() {
	if c.state == domain.StateVisible {
		c.hide()
	}
}

// EscapePressed hides the popup
func (c *PopupController) EscapePressed() {
	if c.state == domain.StateVisible {
		c.hide()
	}
}

// EnterPressed clears the current input, keeping the popup visible for the
// next word
func (c *PopupController) EnterPressed() {
	if c.state != domain.StateVisible {
		return
	}
	c.surface.ResetInput()
	c.surface.SetResult("")
}

// TextChanged runs the lookup pipeline on the current input: exact lookup
// first, then fuzzy. No match clears the result silently.
func (c *PopupController) TextChanged(text string) {
	if c.state != domain.StateVisible {
		return
	}

	query := strings.TrimSpace(text)
	if query == "" {
		c.surface.SetResult("")
		return
	}

	if translation, ok := c.store.Lookup(query); ok {
		c.surface.SetResult(resultMarker + translation)
		return
	}
	if translation, ok := fuzzy.FindMatch(c.store.Entries(), query); ok {
		c.surface.SetResult(resultMarker + translation)
		return
	}
	c.surface.SetResult("")
}

// State returns the current visibility state
func (c *PopupController) State() domain.PopupState {
	return c.state
}

// show clears prior input and result, places the popup at the cursor in
// local coordinates and grabs focus
func (c *PopupController) show() {
	c.surface.ResetInput()
	c.surface.SetResult("")

	if pt, err := c.pos.CursorPos(); err != nil {
		c.logger.Warn("Cursor position unavailable", zap.Error(err))
	} else {
		c.surface.MoveTo(c.pos.FromScreen(pt))
	}

	c.surface.Show()
	c.surface.FocusInput()
	c.state = domain.StateVisible

	c.logger.Debug("Popup state changed", zap.Stringer("state", c.state))
}

func (c *PopupController) hide() {
	c.surface.Hide()
	c.state = domain.StateHidden

	c.logger.Debug("Popup state changed", zap.Stringer("state", c.state))
}
