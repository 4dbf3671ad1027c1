package audio

import (
	"log"
)

// Open selects the player for this run. It never fails: a disabled config,
// missing assets or an unavailable speaker degrade to silence (or to the
// synthesized cues when the fallback asks for them). The background loop is
// started before returning
func Open(cfg Config) Service {
	if !cfg.Enabled {
		log.Printf("audio: disabled by configuration")
		return Silent{}
	}

	var source Source
	assets, err := LoadAssets(cfg.AssetDir)
	switch {
	case err == nil:
		source = assets
	case cfg.Fallback == FallbackSynth:
		log.Printf("Warning: Sound files not found. Using synthesized sound. Error: %v", err)
		source = NewSynthSource()
	default:
		log.Printf("Warning: Sound files not found. Playing without sound. Error: %v", err)
		return Silent{}
	}

	dev := NewDevice(source, cfg.Volume)
	if err := dev.Initialize(); err != nil {
		log.Printf("Warning: Audio device unavailable. Playing without sound. Error: %v", err)
		return Silent{}
	}

	dev.Play(CueBackground)
	return dev
}
