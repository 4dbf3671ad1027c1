package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/block-outrun/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over a fixed duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = math.Max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// beatGenerator produces an endless kick drum, one hit per beat
type beatGenerator struct {
	rate    beep.SampleRate
	pos     int
	beat    int
	kickLen int
}

func newBeatGenerator(rate beep.SampleRate) *beatGenerator {
	return &beatGenerator{
		rate:    rate,
		beat:    rate.N(constants.BackgroundBeatDuration),
		kickLen: rate.N(constants.BackgroundKickDuration),
	}
}

func (g *beatGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		t := float64(beatPos) / float64(g.rate)

		kick := 0.0
		if beatPos < g.kickLen {
			kickEnv := 1.0 - float64(beatPos)/float64(g.kickLen)
			kickFreq := 60 * (1 + 2*kickEnv)
			kick = 0.3 * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}
		samples[i][0] = kick
		samples[i][1] = kick
		g.pos++
	}
	return len(samples), true
}

func (g *beatGenerator) Err() error { return nil }

// newVolume wraps s with a linear gain in [0, 1]
// math.Log2(0) is -Inf, so 0 is mapped to the silent flag
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, vol)
	return v
}

// setGain updates a volume effect in place with a linear gain
func setGain(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(math.Min(vol, 1))
	v.Silent = false
}

// SynthSource generates every cue procedurally; used when assets are missing
type SynthSource struct {
	rate beep.SampleRate
}

// NewSynthSource creates a synthesized cue source at the speaker rate
func NewSynthSource() *SynthSource {
	return &SynthSource{rate: beep.SampleRate(constants.AudioSampleRate)}
}

// Cue returns a one-shot streamer for c
func (s *SynthSource) Cue(c Cue) beep.Streamer {
	switch c {
	case CueCollision:
		return s.collision()
	case CueScore:
		return s.score()
	}
	return nil
}

// Loop returns an endless streamer for c
func (s *SynthSource) Loop(c Cue) beep.Streamer {
	if c != CueBackground {
		return nil
	}
	kick := newBeatGenerator(s.rate)
	// 110Hz fits a 600ms beat exactly, so one beat loops without a seam
	bass, err := generators.SineTone(s.rate, constants.BackgroundBassFreq)
	if err != nil {
		return kick
	}
	return beep.Mix(kick, newVolume(bass, constants.BackgroundBassGain))
}

// collision is a low saw buzz layered with noise
func (s *SynthSource) collision() beep.Streamer {
	d := constants.CollisionSoundDuration
	saw := NewEnvelope(NewOscillator(90, d, WaveSaw, s.rate), d,
		constants.CollisionSoundAttack, constants.CollisionSoundRelease, s.rate)
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, s.rate), d,
		constants.CollisionSoundAttack, constants.CollisionSoundRelease, s.rate)
	return beep.Mix(newVolume(saw, 0.6), newVolume(noise, 0.3))
}

// score is a rising two-note chime (B5, E6)
func (s *SynthSource) score() beep.Streamer {
	d1 := constants.ScoreSoundNote1Duration
	d2 := constants.ScoreSoundNote2Duration
	n1 := NewEnvelope(NewOscillator(987.77, d1, WaveSquare, s.rate), d1,
		constants.ScoreSoundAttack, constants.ScoreSoundNote1Release, s.rate)
	n2 := NewEnvelope(NewOscillator(1318.51, d2, WaveSquare, s.rate), d2,
		constants.ScoreSoundAttack, constants.ScoreSoundNote2Release, s.rate)
	return newVolume(beep.Seq(n1, n2), 0.25)
}
