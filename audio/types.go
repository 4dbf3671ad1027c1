package audio

import (
	"errors"
	"io"
)

// Cue identifies a logical sound the game can request
type Cue int

const (
	CueCollision  Cue = iota // Player hit an obstacle
	CueScore                 // Obstacle left the playfield
	CueBackground            // Looping music
	cueCount
)

var cueNames = [cueCount]string{
	CueCollision:  "collision",
	CueScore:      "score",
	CueBackground: "background",
}

// String returns the cue name
func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Player is the audio capability injected into the game
// Implementations must accept every call, including after Close
type Player interface {
	Play(c Cue)
	SetVolume(v float64)
}

// Service is a Player owning output resources
type Service interface {
	Player
	io.Closer
}

// ErrAssetMissing reports a sound file absent from the asset directory
var ErrAssetMissing = errors.New("sound asset missing")
