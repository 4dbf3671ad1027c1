// Package core holds the process boundary: how a run ends and how resources are released
package core

import "fmt"

// Reason classifies how the process ends
type Reason int

const (
	// ExitQuit is a user-requested quit
	ExitQuit Reason = iota
	// ExitFault is an unrecoverable runtime fault
	ExitFault
)

func (r Reason) String() string {
	switch r {
	case ExitQuit:
		return "quit"
	case ExitFault:
		return "fault"
	}
	return "unknown"
}

// Exit is the result of a run
type Exit struct {
	Reason Reason
	Err    error
}

// Quit returns a quit result
func Quit() Exit {
	return Exit{Reason: ExitQuit}
}

// Fault returns a fault result for err
func Fault(err error) Exit {
	return Exit{Reason: ExitFault, Err: err}
}

// FromError maps a host loop result to an exit: nil is a quit
func FromError(err error) Exit {
	if err == nil {
		return Quit()
	}
	return Fault(err)
}

// Code returns the process exit code
func (e Exit) Code() int {
	if e.Reason == ExitFault {
		return 1
	}
	return 0
}

func (e Exit) String() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason.String()
}
