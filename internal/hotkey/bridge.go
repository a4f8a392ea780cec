// Package hotkey provides system-wide hotkey registration behind a narrow
// capability interface, so the popup controller can be exercised with a
// substitute implementation in tests.
package hotkey

import "vocabpopup/internal/domain"

// Bridge grants access to the OS global-hotkey facility. A registration is
// a process-scoped OS resource identified by id; at most one registration
// per id is active at a time and it must be released on shutdown.
type Bridge interface {
	// Register binds chord system-wide under id, delivering activations to
	// fire regardless of which application holds input focus. hwnd is the
	// host window handle the OS notification stream is attached to (zero
	// for a thread-scoped binding). Returns false when the id or chord is
	// already claimed; callers must treat that as a soft failure.
	Register(chord domain.Chord, id int, hwnd uintptr, fire func()) bool

	// Unregister releases the binding held under id. Safe to call when
	// nothing is registered.
	Unregister(id int, hwnd uintptr)
}
