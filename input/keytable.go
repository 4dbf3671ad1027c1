package input

// keyNames maps keys to the labels shown in help text and logs
var keyNames = [keyCount]string{
	KeyNone:    "none",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyUp:      "up",
	KeyEscape:  "esc",
	KeyEnter:   "enter",
	KeyHelp:    "h",
	KeyResume:  "p",
	KeyRestart: "r",
	KeyQuit:    "q",
}

// String returns the key label
func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// KeyForRune maps a printable key to a game key, case-insensitive
func KeyForRune(r rune) (Key, bool) {
	switch r {
	case 'h', 'H':
		return KeyHelp, true
	case 'p', 'P':
		return KeyResume, true
	case 'r', 'R':
		return KeyRestart, true
	case 'q', 'Q':
		return KeyQuit, true
	}
	return KeyNone, false
}
