package engine

// Mode is a state of the session state machine
type Mode uint8

const (
	ModeTitle Mode = iota
	ModePlaying
	ModePaused
	ModeHelp
	ModeGameOver
	ModeWin
	ModeQuit
)

var modeNames = [...]string{
	ModeTitle:    "title",
	ModePlaying:  "playing",
	ModePaused:   "paused",
	ModeHelp:     "help",
	ModeGameOver: "game over",
	ModeWin:      "win",
	ModeQuit:     "quit",
}

// String returns the mode name
func (m Mode) String() string {
	if int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// IsOverlay reports whether m is pushed on top of another mode
func (m Mode) IsOverlay() bool {
	return m == ModePaused || m == ModeHelp
}
