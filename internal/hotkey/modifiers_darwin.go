//go:build darwin

package hotkey

import (
	gdhotkey "golang.design/x/hotkey"

	"vocabpopup/internal/domain"
)

// modifierMap maps chord modifiers to Carbon modifier masks
var modifierMap = map[domain.Modifier]gdhotkey.Modifier{
	domain.ModCtrl:  gdhotkey.ModCtrl,
	domain.ModShift: gdhotkey.ModShift,
	domain.ModAlt:   gdhotkey.ModOption,
	domain.ModSuper: gdhotkey.ModCmd,
}
