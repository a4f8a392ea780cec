package testutil

import (
	"vocabpopup/internal/domain"
	"vocabpopup/internal/vocabulary"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestStore builds a store from pairs given as term, translation, ...
func NewTestStore(pairs ...string) *vocabulary.Store {
	entries := make([]domain.Entry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		entries = append(entries, domain.Entry{Term: pairs[i], Translation: pairs[i+1]})
	}
	return vocabulary.Build(entries)
}

// FakeSurface records controller-driven display operations for assertions
type FakeSurface struct {
	Visible     bool
	Focused     bool
	Result      string
	Position    domain.Point
	Moved       bool
	InputResets int
}

func (f *FakeSurface) Show() {
	f.Visible = true
}

func (f *FakeSurface) Hide() {
	f.Visible = false
	f.Focused = false
}

func (f *FakeSurface) MoveTo(p domain.Point) {
	f.Position = p
	f.Moved = true
}

func (f *FakeSurface) SetResult(text string) {
	f.Result = text
}

func (f *FakeSurface) ResetInput() {
	f.InputResets++
}

func (f *FakeSurface) FocusInput() {
	f.Focused = true
}
