package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/block-outrun/constants"
	"github.com/lixenwraith/block-outrun/vmath"
)

// Source produces streamers for cues
type Source interface {
	// Cue returns a one-shot streamer, nil if the source has nothing for c
	Cue(c Cue) beep.Streamer
	// Loop returns an endless streamer, nil if the source has nothing for c
	Loop(c Cue) beep.Streamer
}

// Device plays cues through the system speaker
type Device struct {
	mu          sync.Mutex
	source      Source
	mixer       *beep.Mixer
	volume      float64
	background  *effects.Volume
	initialized bool
}

// NewDevice creates a speaker-backed player over source
func NewDevice(source Source, volume float64) *Device {
	return &Device{
		source: source,
		mixer:  &beep.Mixer{},
		volume: vmath.Clamp01(volume),
	}
}

// Initialize opens the speaker and starts the mixer
func (d *Device) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	rate := beep.SampleRate(constants.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(d.mixer)
	d.initialized = true
	return nil
}

// Play starts a cue; the background cue loops and is started at most once
func (d *Device) Play(c Cue) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}

	if c == CueBackground {
		if d.background != nil {
			return
		}
		s := d.source.Loop(c)
		if s == nil {
			return
		}
		d.background = newVolume(s, d.volume)
		speaker.Lock()
		d.mixer.Add(d.background)
		speaker.Unlock()
		return
	}

	s := d.source.Cue(c)
	if s == nil {
		return
	}
	speaker.Lock()
	d.mixer.Add(newVolume(s, d.volume))
	speaker.Unlock()
}

// SetVolume sets the gain for new cues and the running background loop
func (d *Device) SetVolume(v float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.volume = vmath.Clamp01(v)
	if d.background == nil {
		return
	}
	speaker.Lock()
	setGain(d.background, d.volume)
	speaker.Unlock()
}

// Volume returns the current gain
func (d *Device) Volume() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.volume
}

// Close stops all sounds and releases the speaker
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return nil
	}

	speaker.Clear()
	speaker.Close()
	d.background = nil
	d.initialized = false
	log.Printf("audio: speaker closed")
	return nil
}
