//go:build windows

package overlay

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"vocabpopup/internal/domain"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	procGetCursorPos     = user32.NewProc("GetCursorPos")
	procMonitorFromPoint = user32.NewProc("MonitorFromPoint")
	procGetDpiForMonitor = shcore.NewProc("GetDpiForMonitor")
)

const (
	monitorDefaultToNearest = 2
	mdtEffectiveDpi         = 0
	baseDpi                 = 96
)

// ScreenPositioner reads the pointer position via GetCursorPos and converts
// it using the effective DPI of the monitor under the pointer. Assuming a
// fixed 1:1 pixel ratio mis-positions the popup on scaled displays.
type ScreenPositioner struct {
	logger *zap.Logger
}

// NewScreenPositioner creates the platform positioner
func NewScreenPositioner(logger *zap.Logger) *ScreenPositioner {
	return &ScreenPositioner{logger: logger}
}

// CursorPos returns the pointer position in device pixels
func (p *ScreenPositioner) CursorPos() (domain.Point, error) {
	var pt struct{ X, Y int32 }
	r, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return domain.Point{}, fmt.Errorf("GetCursorPos: %w", err)
	}
	return domain.Point{X: float64(pt.X), Y: float64(pt.Y)}, nil
}

// FromScreen converts device pixels into popup-local coordinates using the
// scale of the monitor containing the point
func (p *ScreenPositioner) FromScreen(pt domain.Point) domain.Point {
	scale := p.scaleAt(pt)
	return domain.Point{X: pt.X / scale, Y: pt.Y / scale}
}

// scaleAt returns the effective scale factor (dpi/96) for the monitor under
// the point, falling back to 1:1 when the DPI query is unavailable
func (p *ScreenPositioner) scaleAt(pt domain.Point) float64 {
	// POINT is passed by value: x in the low dword, y in the high dword
	packed := uintptr(uint32(int32(pt.X))) | uintptr(uint32(int32(pt.Y)))<<32
	hmon, _, _ := procMonitorFromPoint.Call(packed, monitorDefaultToNearest)
	if hmon == 0 {
		return 1
	}

	var dpiX, dpiY uint32
	r, _, _ := procGetDpiForMonitor.Call(
		hmon,
		mdtEffectiveDpi,
		uintptr(unsafe.Pointer(&dpiX)),
		uintptr(unsafe.Pointer(&dpiY)),
	)
	if r != 0 || dpiX == 0 {
		p.logger.Debug("Per-monitor DPI unavailable, assuming 1:1 scale")
		return 1
	}
	return float64(dpiX) / baseDpi
}
