package input

// Key identifies a game key independent of the host backend
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyEscape
	KeyEnter
	KeyHelp    // h
	KeyResume  // p
	KeyRestart // r
	KeyQuit    // q
	keyCount
)

// Pointer is the mouse state in world pixels
type Pointer struct {
	X, Y float64
	Down bool
}

// Snapshot is the input state for one tick
// Left, Right and Up are held state; menu keys are presses since the previous sample
type Snapshot struct {
	Left  bool
	Right bool
	Up    bool

	Escape  bool
	Enter   bool
	Help    bool
	Resume  bool
	Restart bool
	Quit    bool

	// QuitRequest is a window close or interrupt, honored in every mode
	QuitRequest bool

	Pointer Pointer
}

// Held reports whether a movement key is held in s
func (s Snapshot) Held(k Key) bool {
	switch k {
	case KeyLeft:
		return s.Left
	case KeyRight:
		return s.Right
	case KeyUp:
		return s.Up
	}
	return false
}

// Pressed reports whether a menu key was pressed in s
func (s Snapshot) Pressed(k Key) bool {
	switch k {
	case KeyEscape:
		return s.Escape
	case KeyEnter:
		return s.Enter
	case KeyHelp:
		return s.Help
	case KeyResume:
		return s.Resume
	case KeyRestart:
		return s.Restart
	case KeyQuit:
		return s.Quit
	}
	return false
}

// set marks k in s: movement keys as held, menu keys as pressed
func (s *Snapshot) set(k Key) {
	switch k {
	case KeyLeft:
		s.Left = true
	case KeyRight:
		s.Right = true
	case KeyUp:
		s.Up = true
	case KeyEscape:
		s.Escape = true
	case KeyEnter:
		s.Enter = true
	case KeyHelp:
		s.Help = true
	case KeyResume:
		s.Resume = true
	case KeyRestart:
		s.Restart = true
	case KeyQuit:
		s.Quit = true
	}
}

// IsMovement reports whether k is sampled as held state
func IsMovement(k Key) bool {
	return k == KeyLeft || k == KeyRight || k == KeyUp
}
