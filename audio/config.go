package audio

import "github.com/lixenwraith/block-outrun/constants"

// Fallback names select what plays when assets cannot be loaded
const (
	FallbackSilent = "silent"
	FallbackSynth  = "synth"
)

// Config holds audio settings resolved at startup
type Config struct {
	Enabled  bool
	Volume   float64
	AssetDir string
	Fallback string
}

// DefaultConfig returns the default audio configuration
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Volume:   constants.DefaultVolume,
		AssetDir: "assets",
		Fallback: FallbackSilent,
	}
}
