package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Escape sequences for restoring a terminal tcell could not clean up
var (
	csiMouseClickOff = []byte("\x1b[?1000l")
	csiMouseSGROff   = []byte("\x1b[?1006l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// Screen owns the tcell screen for the lifetime of the process
type Screen struct {
	tcell.Screen
	once sync.Once
}

// OpenScreen initializes the terminal in raw mode with mouse reporting
func OpenScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.EnableMouse(tcell.MouseButtonEvents)
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	return &Screen{Screen: s}, nil
}

// Close restores the terminal; later calls are no-ops
func (s *Screen) Close() error {
	s.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				EmergencyReset(os.Stdout)
			}
		}()
		s.DisableMouse()
		s.Fini()
	})
	return nil
}

// EmergencyReset writes the sequences that return a terminal to a usable state
// It is best-effort and ignores write errors
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
