package controller

import (
	"errors"
	"testing"

	"vocabpopup/internal/domain"
	"vocabpopup/internal/overlay"
	"vocabpopup/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testChord = domain.Chord{Mods: domain.ModCtrl | domain.ModShift, Key: 'V'}

func newTestController(t *testing.T) (*PopupController, *testutil.FakeSurface, *testutil.MockBridge) {
	t.Helper()

	surface := &testutil.FakeSurface{}
	bridge := &testutil.MockBridge{}
	pos := &overlay.ScalePositioner{
		Cursor: func() (domain.Point, error) {
			return domain.Point{X: 200, Y: 100}, nil
		},
		Scale: 2,
	}

	c := New(testutil.NewTestStore("pomme", "Apfel", "maison", "Haus"),
		surface, pos, bridge, testChord, 0, testutil.NewTestLogger())
	return c, surface, bridge
}

func TestToggle_RoundTrip(t *testing.T) {
	c, surface, _ := newTestController(t)

	require.Equal(t, domain.StateHidden, c.State())

	c.Toggle()
	assert.Equal(t, domain.StateVisible, c.State())
	assert.True(t, surface.Visible)
	assert.True(t, surface.Focused)

	c.Toggle()
	assert.Equal(t, domain.StateHidden, c.State())
	assert.False(t, surface.Visible)
}

func TestShow_ClearsPriorInputAndResult(t *testing.T) {
	c, surface, _ := newTestController(t)

	c.Toggle()
	c.TextChanged("pomme")
	require.Equal(t, "→ Apfel", surface.Result)

	c.Toggle()
	c.Toggle()

	assert.Empty(t, surface.Result)
	assert.Equal(t, 2, surface.InputResets)
}

func TestShow_PositionsAtScaledCursor(t *testing.T) {
	c, surface, _ := newTestController(t)

	c.Toggle()

	// 200,100 device pixels at scale 2 land at 100,50 local
	require.True(t, surface.Moved)
	assert.Equal(t, domain.Point{X: 100, Y: 50}, surface.Position)
}

func TestShow_CursorFailureStillShows(t *testing.T) {
	surface := &testutil.FakeSurface{}
	pos := &overlay.ScalePositioner{
		Cursor: func() (domain.Point, error) {
			return domain.Point{}, errors.New("no pointer")
		},
	}
	c := New(testutil.NewTestStore("pomme", "Apfel"),
		surface, pos, &testutil.MockBridge{}, testChord, 0, testutil.NewTestLogger())

	c.Toggle()

	assert.Equal(t, domain.StateVisible, c.State())
	assert.True(t, surface.Visible)
	assert.False(t, surface.Moved)
}

func TestEscape_HidesWhileVisible(t *testing.T) {
	c, surface, _ := newTestController(t)

	c.Toggle()
	c.EscapePressed()

	assert.Equal(t, domain.StateHidden, c.State())
	assert.False(t, surface.Visible)

	// no-op when already hidden
	c.EscapePressed()
	assert.Equal(t, domain.StateHidden, c.State())
}

func TestDeactivated_HidesWhileVisible(t *testing.T) {
	c, surface, _ := newTestController(t)

	c.Toggle()
	c.Deactivated()

	assert.Equal(t, domain.StateHidden, c.State())
	assert.False(t, surface.Visible)
}

func TestEnter_ClearsInputKeepsVisible(t *testing.T) {
	c, surface, _ := newTestController(t)

	c.Toggle()
	resets := surface.InputResets

	c.EnterPressed()

	assert.Equal(t, domain.StateVisible, c.State())
	assert.True(t, surface.Visible)
	assert.Equal(t, resets+1, surface.InputResets)
	assert.Empty(t, surface.Result)
}

func TestEnter_NoopWhileHidden(t *testing.T) {
	c, surface, _ := newTestController(t)

	c.EnterPressed()

	assert.Equal(t, domain.StateHidden, c.State())
	assert.Zero(t, surface.InputResets)
}

func TestTextChanged_LookupPipeline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "exact match",
			input:    "pomme",
			expected: "→ Apfel",
		},
		{
			name:     "exact match is case-insensitive",
			input:    "POMME",
			expected: "→ Apfel",
		},
		{
			name:     "exact match on reverse direction",
			input:    "Apfel",
			expected: "→ pomme",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  pomme  ",
			expected: "→ Apfel",
		},
		{
			name:     "fuzzy fallback on typo",
			input:    "pome",
			expected: "→ Apfel",
		},
		{
			name:     "no match clears result",
			input:    "zzzzzz",
			expected: "",
		},
		{
			name:     "empty input clears result",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, surface, _ := newTestController(t)
			c.Toggle()

			surface.Result = "stale"
			c.TextChanged(tt.input)

			assert.Equal(t, tt.expected, surface.Result)
		})
	}
}

func TestTextChanged_IgnoredWhileHidden(t *testing.T) {
	c, surface, _ := newTestController(t)

	c.TextChanged("pomme")

	assert.Empty(t, surface.Result)
}

func TestStart_RegistersToggleHotkey(t *testing.T) {
	c, _, bridge := newTestController(t)
	bridge.On("Register", testChord, toggleHotkeyID, uintptr(0)).Return(true)

	c.Start()

	bridge.AssertExpectations(t)
	require.NotNil(t, bridge.Fire)

	// a chord activation toggles the popup
	bridge.Fire()
	assert.Equal(t, domain.StateVisible, c.State())
	bridge.Fire()
	assert.Equal(t, domain.StateHidden, c.State())
}

func TestStart_RegistrationRefusedIsSoftFailure(t *testing.T) {
	c, surface, bridge := newTestController(t)
	bridge.On("Register", testChord, toggleHotkeyID, uintptr(0)).Return(false)

	c.Start()

	// controller still works when driven directly
	c.Toggle()
	assert.Equal(t, domain.StateVisible, c.State())
	assert.True(t, surface.Visible)

	// nothing to release on shutdown
	c.Shutdown()
	bridge.AssertNotCalled(t, "Unregister", mock.Anything, mock.Anything)
}

func TestShutdown_ReleasesHotkeyAndHides(t *testing.T) {
	c, surface, bridge := newTestController(t)
	bridge.On("Register", testChord, toggleHotkeyID, uintptr(0)).Return(true)
	bridge.On("Unregister", toggleHotkeyID, uintptr(0)).Return()

	c.Start()
	c.Toggle()
	require.Equal(t, domain.StateVisible, c.State())

	c.Shutdown()

	assert.Equal(t, domain.StateHidden, c.State())
	assert.False(t, surface.Visible)
	bridge.AssertNumberOfCalls(t, "Unregister", 1)

	// idempotent
	c.Shutdown()
	bridge.AssertNumberOfCalls(t, "Unregister", 1)
}
