package testutil

import (
	"vocabpopup/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBridge is a mock for hotkey.Bridge. It captures the fire callback so
// tests can simulate a chord activation.
type MockBridge struct {
	mock.Mock
	Fire func()
}

func (m *MockBridge) Register(chord domain.Chord, id int, hwnd uintptr, fire func()) bool {
	m.Fire = fire
	args := m.Called(chord, id, hwnd)
	return args.Bool(0)
}

func (m *MockBridge) Unregister(id int, hwnd uintptr) {
	m.Called(id, hwnd)
}
