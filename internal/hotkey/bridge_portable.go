//go:build linux || darwin

package hotkey

import (
	"sync"

	"go.uber.org/zap"
	gdhotkey "golang.design/x/hotkey"

	"vocabpopup/internal/domain"
)

// keyMap translates the chord key byte to the platform keycode
var keyMap = map[byte]gdhotkey.Key{
	'A': gdhotkey.KeyA, 'B': gdhotkey.KeyB, 'C': gdhotkey.KeyC,
	'D': gdhotkey.KeyD, 'E': gdhotkey.KeyE, 'F': gdhotkey.KeyF,
	'G': gdhotkey.KeyG, 'H': gdhotkey.KeyH, 'I': gdhotkey.KeyI,
	'J': gdhotkey.KeyJ, 'K': gdhotkey.KeyK, 'L': gdhotkey.KeyL,
	'M': gdhotkey.KeyM, 'N': gdhotkey.KeyN, 'O': gdhotkey.KeyO,
	'P': gdhotkey.KeyP, 'Q': gdhotkey.KeyQ, 'R': gdhotkey.KeyR,
	'S': gdhotkey.KeyS, 'T': gdhotkey.KeyT, 'U': gdhotkey.KeyU,
	'V': gdhotkey.KeyV, 'W': gdhotkey.KeyW, 'X': gdhotkey.KeyX,
	'Y': gdhotkey.KeyY, 'Z': gdhotkey.KeyZ,
	'0': gdhotkey.Key0, '1': gdhotkey.Key1, '2': gdhotkey.Key2,
	'3': gdhotkey.Key3, '4': gdhotkey.Key4, '5': gdhotkey.Key5,
	'6': gdhotkey.Key6, '7': gdhotkey.Key7, '8': gdhotkey.Key8,
	'9': gdhotkey.Key9,
}

type registration struct {
	hk   *gdhotkey.Hotkey
	stop chan struct{}
}

// PortableBridge registers global hotkeys through golang.design/x/hotkey
// on platforms without the win32 message stream. The host window handle is
// not needed here and is ignored.
type PortableBridge struct {
	logger *zap.Logger

	mu   sync.Mutex
	regs map[int]*registration
}

// NewBridge creates the platform hotkey bridge
func NewBridge(logger *zap.Logger) *PortableBridge {
	return &PortableBridge{
		logger: logger,
		regs:   make(map[int]*registration),
	}
}

// Register binds the chord under id and forwards key-down events to fire
func (b *PortableBridge) Register(chord domain.Chord, id int, _ uintptr, fire func()) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.regs[id]; exists {
		b.logger.Warn("Hotkey id already registered", zap.Int("id", id))
		return false
	}

	key, ok := keyMap[chord.Key]
	if !ok {
		b.logger.Warn("Unsupported hotkey key", zap.String("chord", chord.String()))
		return false
	}

	hk := gdhotkey.New(platformModifiers(chord.Mods), key)
	if err := hk.Register(); err != nil {
		b.logger.Warn("Hotkey registration refused, chord may be claimed by another process",
			zap.String("chord", chord.String()),
			zap.Int("id", id),
			zap.Error(err),
		)
		return false
	}

	reg := &registration{hk: hk, stop: make(chan struct{})}
	b.regs[id] = reg

	go func() {
		for {
			select {
			case <-hk.Keydown():
				fire()
			case <-reg.stop:
				return
			}
		}
	}()

	b.logger.Info("Global hotkey registered",
		zap.String("chord", chord.String()),
		zap.Int("id", id),
	)
	return true
}

// Unregister releases the binding held under id
func (b *PortableBridge) Unregister(id int, _ uintptr) {
	b.mu.Lock()
	reg, ok := b.regs[id]
	if ok {
		delete(b.regs, id)
	}
	b.mu.Unlock()

	if !ok {
		return
	}

	close(reg.stop)
	if err := reg.hk.Unregister(); err != nil {
		b.logger.Warn("Failed to release hotkey", zap.Int("id", id), zap.Error(err))
		return
	}

	b.logger.Info("Global hotkey released", zap.Int("id", id))
}

// platformModifiers maps chord modifiers via the per-platform modifier map
func platformModifiers(m domain.Modifier) []gdhotkey.Modifier {
	order := []domain.Modifier{domain.ModCtrl, domain.ModShift, domain.ModAlt, domain.ModSuper}
	var mods []gdhotkey.Modifier
	for _, dm := range order {
		if m&dm != 0 {
			mods = append(mods, modifierMap[dm])
		}
	}
	return mods
}
