package window

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/gopxl/beep"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/lixenwraith/block-outrun/audio"
	"github.com/lixenwraith/block-outrun/constants"
	"github.com/lixenwraith/block-outrun/vmath"
)

// Clips holds 16-bit stereo PCM per cue at the context sample rate
type Clips map[audio.Cue][]byte

var clipFiles = map[audio.Cue]string{
	audio.CueCollision:  constants.CollisionSoundFile,
	audio.CueScore:      constants.ScoreSoundFile,
	audio.CueBackground: constants.BackgroundSoundFile,
}

// LoadClips decodes every cue file under dir, resampled to sampleRate
func LoadClips(dir string, sampleRate int) (Clips, error) {
	clips := make(Clips, len(clipFiles))
	for c, name := range clipFiles {
		pcm, err := decodeClip(filepath.Join(dir, name), sampleRate)
		if err != nil {
			return nil, fmt.Errorf("load %s sound: %w", c, err)
		}
		clips[c] = pcm
	}
	return clips, nil
}

func decodeClip(path string, sampleRate int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", audio.ErrAssetMissing, path)
		}
		return nil, err
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return io.ReadAll(stream)
}

// SynthClips renders the synthesized cues; the background is one seamless beat
func SynthClips() Clips {
	rate := beep.SampleRate(constants.AudioSampleRate)
	synth := audio.NewSynthSource()
	limit := rate.N(constants.CollisionSoundDuration + constants.ScoreSoundNote1Duration + constants.ScoreSoundNote2Duration)
	return Clips{
		audio.CueCollision:  audio.RenderPCM(synth.Cue(audio.CueCollision), limit),
		audio.CueScore:      audio.RenderPCM(synth.Cue(audio.CueScore), limit),
		audio.CueBackground: audio.RenderPCM(synth.Loop(audio.CueBackground), rate.N(constants.BackgroundBeatDuration)),
	}
}

// EbitenAudio plays cues through an ebiten audio context
type EbitenAudio struct {
	mu         sync.Mutex
	ctx        *eaudio.Context
	clips      Clips
	volume     float64
	background *eaudio.Player
	active     []*eaudio.Player
	closed     bool
}

// NewEbitenAudio creates a player over clips; ctx must run at constants.AudioSampleRate
func NewEbitenAudio(ctx *eaudio.Context, clips Clips, volume float64) *EbitenAudio {
	return &EbitenAudio{
		ctx:    ctx,
		clips:  clips,
		volume: vmath.Clamp01(volume),
	}
}

// OpenAudio selects the window host's player, degrading like audio.Open
func OpenAudio(cfg audio.Config) audio.Service {
	if !cfg.Enabled {
		log.Printf("audio: disabled by configuration")
		return audio.Silent{}
	}

	clips, err := LoadClips(cfg.AssetDir, constants.AudioSampleRate)
	switch {
	case err == nil:
	case cfg.Fallback == audio.FallbackSynth:
		log.Printf("Warning: Sound files not found. Using synthesized sound. Error: %v", err)
		clips = SynthClips()
	default:
		log.Printf("Warning: Sound files not found. Playing without sound. Error: %v", err)
		return audio.Silent{}
	}

	a := NewEbitenAudio(eaudio.NewContext(constants.AudioSampleRate), clips, cfg.Volume)
	a.Play(audio.CueBackground)
	return a
}

// Play starts a cue; the background loops and is started at most once
func (a *EbitenAudio) Play(c audio.Cue) {
	a.mu.Lock()
	defer a.mu.Unlock()

	pcm := a.clips[c]
	if a.closed || len(pcm) == 0 {
		return
	}

	if c == audio.CueBackground {
		if a.background != nil {
			return
		}
		loop := eaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := a.ctx.NewPlayer(loop)
		if err != nil {
			log.Printf("audio: background: %v", err)
			return
		}
		p.SetVolume(a.volume)
		p.Play()
		a.background = p
		return
	}

	a.prune()
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(a.volume)
	p.Play()
	a.active = append(a.active, p)
}

// prune drops finished one-shot players
func (a *EbitenAudio) prune() {
	kept := a.active[:0]
	for _, p := range a.active {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		p.Close()
	}
	a.active = kept
}

// SetVolume applies to new cues, playing cues and the background loop
func (a *EbitenAudio) SetVolume(v float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.volume = vmath.Clamp01(v)
	if a.background != nil {
		a.background.SetVolume(a.volume)
	}
	for _, p := range a.active {
		p.SetVolume(a.volume)
	}
}

// Close stops every player; later calls are no-ops
func (a *EbitenAudio) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true
	if a.background != nil {
		a.background.Close()
		a.background = nil
	}
	for _, p := range a.active {
		p.Close()
	}
	a.active = nil
	log.Printf("audio: window audio closed")
	return nil
}
