package core

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
)

type resource struct {
	name  string
	close func() error
}

// Funnel releases registered resources exactly once, in reverse order
// Every exit path of a host goes through Shutdown
type Funnel struct {
	mu        sync.Mutex
	resources []resource
	errOut    io.Writer

	done bool
	code int
}

// NewFunnel creates a funnel that reports faults to errOut
func NewFunnel(errOut io.Writer) *Funnel {
	if errOut == nil {
		errOut = io.Discard
	}
	return &Funnel{errOut: errOut}
}

// Register adds a closer; resources are released in reverse registration order
func (f *Funnel) Register(name string, c io.Closer) {
	f.RegisterFunc(name, c.Close)
}

// RegisterFunc adds a release function
func (f *Funnel) RegisterFunc(name string, fn func() error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resources = append(f.resources, resource{name: name, close: fn})
}

// Shutdown releases every resource, reports a fault once and returns the exit code
// Calls after the first return the first result
func (f *Funnel) Shutdown(exit Exit) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return f.code
	}
	f.done = true
	f.code = exit.Code()

	var errs []error
	for i := len(f.resources) - 1; i >= 0; i-- {
		r := f.resources[i]
		if err := closeResource(r); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", r.name, err))
		}
	}
	f.resources = nil

	if err := errors.Join(errs...); err != nil {
		log.Printf("shutdown: %v", err)
	}

	log.Printf("shutdown: %s", exit)
	// Resources are closed first so the message lands on a restored terminal
	if exit.Reason == ExitFault {
		fmt.Fprintf(f.errOut, "block-outrun: %v\n", exit.Err)
	}
	return f.code
}

// closeResource releases r, converting a panic into an error
func closeResource(r resource) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return r.close()
}
