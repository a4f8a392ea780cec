//go:build linux

package hotkey

import (
	gdhotkey "golang.design/x/hotkey"

	"vocabpopup/internal/domain"
)

// modifierMap maps chord modifiers to X11 modifier masks
var modifierMap = map[domain.Modifier]gdhotkey.Modifier{
	domain.ModCtrl:  gdhotkey.ModCtrl,
	domain.ModShift: gdhotkey.ModShift,
	domain.ModAlt:   gdhotkey.Mod1,
	domain.ModSuper: gdhotkey.Mod4,
}
