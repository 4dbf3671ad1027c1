package input

import (
	"time"
)

// DefaultHoldWindow bridges the gap between a key press and terminal auto-repeat
const DefaultHoldWindow = 200 * time.Millisecond

// Clock supplies the current time to the tracker
type Clock interface {
	Now() time.Time
}

// Tracker turns a stream of key events into per-tick snapshots
// Backends without key-release events report every press and repeat; a
// movement key stays held until HoldWindow passes without another event
type Tracker struct {
	clock      Clock
	holdWindow time.Duration

	lastSeen [keyCount]time.Time
	pending  Snapshot
	pointer  Pointer
	quit     bool
}

// NewTracker creates a tracker; a non-positive window selects DefaultHoldWindow
func NewTracker(clock Clock, holdWindow time.Duration) *Tracker {
	if holdWindow <= 0 {
		holdWindow = DefaultHoldWindow
	}
	return &Tracker{
		clock:      clock,
		holdWindow: holdWindow,
	}
}

// Press records a key event
func (t *Tracker) Press(k Key) {
	if k == KeyNone || k >= keyCount {
		return
	}
	if IsMovement(k) {
		t.lastSeen[k] = t.clock.Now()
		return
	}
	t.pending.set(k)
}

// Release clears a held key for backends that report releases
func (t *Tracker) Release(k Key) {
	if k == KeyNone || k >= keyCount {
		return
	}
	t.lastSeen[k] = time.Time{}
}

// MovePointer records the latest pointer state
func (t *Tracker) MovePointer(p Pointer) {
	t.pointer = p
}

// RequestQuit latches a quit request; it is reported by every later sample
func (t *Tracker) RequestQuit() {
	t.quit = true
}

// Sample returns the snapshot for the current tick and clears pending presses
func (t *Tracker) Sample() Snapshot {
	now := t.clock.Now()
	snap := t.pending
	t.pending = Snapshot{}

	for _, k := range [...]Key{KeyLeft, KeyRight, KeyUp} {
		seen := t.lastSeen[k]
		if !seen.IsZero() && now.Sub(seen) < t.holdWindow {
			snap.set(k)
		}
	}

	snap.Pointer = t.pointer
	snap.QuitRequest = t.quit
	return snap
}
