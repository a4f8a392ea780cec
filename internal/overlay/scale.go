package overlay

import "vocabpopup/internal/domain"

// ScalePositioner converts screen coordinates using a fixed scale factor,
// for hosts that report their own display scale. A zero Scale is treated
// as 1:1.
type ScalePositioner struct {
	Cursor func() (domain.Point, error)
	Scale  float64
}

// CursorPos reads the pointer position from the injected source
func (p *ScalePositioner) CursorPos() (domain.Point, error) {
	if p.Cursor == nil {
		return domain.Point{}, nil
	}
	return p.Cursor()
}

// FromScreen divides device pixels by the scale factor
func (p *ScalePositioner) FromScreen(pt domain.Point) domain.Point {
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}
	return domain.Point{X: pt.X / scale, Y: pt.Y / scale}
}
