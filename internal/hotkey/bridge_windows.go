//go:build windows

package hotkey

import (
	"runtime"
	"sync"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"vocabpopup/internal/domain"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterHotKey     = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey   = user32.NewProc("UnregisterHotKey")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")

	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
)

const (
	wmHotkey = 0x0312
	wmQuit   = 0x0012

	modAlt      = 0x0001
	modControl  = 0x0002
	modShift    = 0x0004
	modWin      = 0x0008
	modNoRepeat = 0x4000
)

type message struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// dispatchLoop is one registered hotkey's message pump thread
type dispatchLoop struct {
	threadID uint32
	done     chan struct{}
}

// WindowsBridge registers global hotkeys through the win32 RegisterHotKey
// API. Each registration runs its own locked OS thread pumping GetMessageW,
// because WM_HOTKEY is posted to the queue of the registering thread.
type WindowsBridge struct {
	logger *zap.Logger

	mu    sync.Mutex
	loops map[int]*dispatchLoop
}

// NewBridge creates the platform hotkey bridge
func NewBridge(logger *zap.Logger) *WindowsBridge {
	return &WindowsBridge{
		logger: logger,
		loops:  make(map[int]*dispatchLoop),
	}
}

// Register binds the chord and starts the dispatch loop. The loop filters
// strictly by the registered id: the same message queue may carry WM_HOTKEY
// notifications for unrelated registrations sharing the window.
func (b *WindowsBridge) Register(chord domain.Chord, id int, hwnd uintptr, fire func()) bool {
	b.mu.Lock()
	if _, exists := b.loops[id]; exists {
		b.mu.Unlock()
		b.logger.Warn("Hotkey id already registered", zap.Int("id", id))
		return false
	}
	b.mu.Unlock()

	loop := &dispatchLoop{done: make(chan struct{})}
	registered := make(chan bool, 1)

	go func() {
		// RegisterHotKey ties the binding to the calling thread; the
		// GetMessage pump must stay on that same thread.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(loop.done)

		tid, _, _ := procGetCurrentThreadId.Call()
		loop.threadID = uint32(tid)

		r, _, _ := procRegisterHotKey.Call(
			hwnd,
			uintptr(id),
			uintptr(winModifiers(chord.Mods)|modNoRepeat),
			uintptr(chord.Key),
		)
		if r == 0 {
			registered <- false
			return
		}
		registered <- true

		var msg message
		for {
			ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
			if ret == 0 || int32(ret) == -1 {
				break
			}
			if msg.Message == wmHotkey && int(msg.WParam) == id {
				fire()
			}
		}

		procUnregisterHotKey.Call(hwnd, uintptr(id))
	}()

	if !<-registered {
		b.logger.Warn("RegisterHotKey refused, chord may be claimed by another process",
			zap.String("chord", chord.String()),
			zap.Int("id", id),
		)
		return false
	}

	b.mu.Lock()
	b.loops[id] = loop
	b.mu.Unlock()

	b.logger.Info("Global hotkey registered",
		zap.String("chord", chord.String()),
		zap.Int("id", id),
	)
	return true
}

// Unregister stops the dispatch loop and releases the OS binding. It blocks
// until UnregisterHotKey has run on the registering thread.
func (b *WindowsBridge) Unregister(id int, hwnd uintptr) {
	b.mu.Lock()
	loop, ok := b.loops[id]
	if ok {
		delete(b.loops, id)
	}
	b.mu.Unlock()

	if !ok {
		return
	}

	procPostThreadMessageW.Call(uintptr(loop.threadID), wmQuit, 0, 0)
	<-loop.done

	b.logger.Info("Global hotkey released", zap.Int("id", id))
}

func winModifiers(m domain.Modifier) uint32 {
	var flags uint32
	if m&domain.ModCtrl != 0 {
		flags |= modControl
	}
	if m&domain.ModShift != 0 {
		flags |= modShift
	}
	if m&domain.ModAlt != 0 {
		flags |= modAlt
	}
	if m&domain.ModSuper != 0 {
		flags |= modWin
	}
	return flags
}
