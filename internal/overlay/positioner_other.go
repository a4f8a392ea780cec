//go:build !windows

package overlay

import (
	"go.uber.org/zap"

	"vocabpopup/internal/domain"
)

// ScreenPositioner is a 1:1 placeholder on platforms where the host
// toolkit supplies cursor tracking and scale itself; hosts should inject a
// ScalePositioner wired to their toolkit instead.
type ScreenPositioner struct {
	logger *zap.Logger
}

// NewScreenPositioner creates the platform positioner
func NewScreenPositioner(logger *zap.Logger) *ScreenPositioner {
	return &ScreenPositioner{logger: logger}
}

// CursorPos returns the origin; no pointer source is available here
func (p *ScreenPositioner) CursorPos() (domain.Point, error) {
	return domain.Point{}, nil
}

// FromScreen passes coordinates through at 1:1
func (p *ScreenPositioner) FromScreen(pt domain.Point) domain.Point {
	return pt
}
