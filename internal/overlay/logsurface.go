package overlay

import (
	"go.uber.org/zap"

	"vocabpopup/internal/domain"
)

// LogSurface is a Surface that records operations to the log. It stands in
// for the host popup window when the binary runs without one attached.
type LogSurface struct {
	logger *zap.Logger
}

// NewLogSurface creates a logging surface
func NewLogSurface(logger *zap.Logger) *LogSurface {
	return &LogSurface{logger: logger}
}

func (s *LogSurface) Show() {
	s.logger.Info("Popup shown")
}

func (s *LogSurface) Hide() {
	s.logger.Info("Popup hidden")
}

func (s *LogSurface) MoveTo(p domain.Point) {
	s.logger.Debug("Popup moved", zap.Float64("x", p.X), zap.Float64("y", p.Y))
}

func (s *LogSurface) SetResult(text string) {
	if text == "" {
		return
	}
	s.logger.Info("Result updated", zap.String("text", text))
}

func (s *LogSurface) ResetInput() {
	s.logger.Debug("Input cleared")
}

func (s *LogSurface) FocusInput() {
	s.logger.Debug("Input focused")
}
