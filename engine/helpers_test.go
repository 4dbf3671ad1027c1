package engine

import (
	"time"

	"github.com/lixenwraith/block-outrun/audio"
)

// scriptedRand returns queued values, then n-1 (never spawns, rightmost x)
type scriptedRand struct {
	values []int
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.values) == 0 {
		return n - 1
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

// noSpawn never triggers a spawn
func noSpawn() *scriptedRand {
	return &scriptedRand{}
}

// recordingPlayer records cues and volume changes
type recordingPlayer struct {
	cues    []audio.Cue
	volumes []float64
}

func (p *recordingPlayer) Play(c audio.Cue) {
	p.cues = append(p.cues, c)
}

func (p *recordingPlayer) SetVolume(v float64) {
	p.volumes = append(p.volumes, v)
}

func (p *recordingPlayer) count(c audio.Cue) int {
	n := 0
	for _, got := range p.cues {
		if got == c {
			n++
		}
	}
	return n
}

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestSession creates a session with a fixed start time
func newTestSession() *Session {
	return NewSession(testEpoch)
}

// newTestGame creates a game with a recording player and no spawning
func newTestGame() (*Game, *recordingPlayer) {
	p := &recordingPlayer{}
	g := NewGame(p, noSpawn(), NewMockTimeProvider(testEpoch), DefaultSettings())
	return g, p
}
