package core

import (
	"fmt"
	"log"
	"runtime/debug"
)

// PanicError carries a recovered panic value and the stack it was raised on
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Recover converts a panic in the calling function into a fault stored in exit
// Use as: defer core.Recover(&exit)
func Recover(exit *Exit) {
	if r := recover(); r != nil {
		*exit = Fault(newPanicError(r))
	}
}

// Go runs fn in a new goroutine; a panic is reported as a fault instead of
// crashing the process with the terminal still in raw mode
func Go(fn func(), report func(Exit)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				report(Fault(newPanicError(r)))
			}
		}()
		fn()
	}()
}

func newPanicError(r any) *PanicError {
	err := &PanicError{Value: r, Stack: debug.Stack()}
	log.Printf("CRASH DETECTED: %v\n%s", r, err.Stack)
	return err
}
