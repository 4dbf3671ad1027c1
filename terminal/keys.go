package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/block-outrun/input"
)

// TranslateKey maps a tcell key event to a game key
// quit is set for Ctrl+C, which requests a quit from any mode
func TranslateKey(key tcell.Key, r rune) (k input.Key, quit bool) {
	switch key {
	case tcell.KeyLeft:
		return input.KeyLeft, false
	case tcell.KeyRight:
		return input.KeyRight, false
	case tcell.KeyUp:
		return input.KeyUp, false
	case tcell.KeyEscape:
		return input.KeyEscape, false
	case tcell.KeyEnter:
		return input.KeyEnter, false
	case tcell.KeyCtrlC:
		return input.KeyNone, true
	case tcell.KeyRune:
		if k, ok := input.KeyForRune(r); ok {
			return k, false
		}
	}
	return input.KeyNone, false
}
