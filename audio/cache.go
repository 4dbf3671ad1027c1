package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/block-outrun/constants"
)

// Assets holds decoded sound files resampled to the speaker rate
type Assets struct {
	buffers [cueCount]*beep.Buffer
}

var assetFiles = [cueCount]string{
	CueCollision:  constants.CollisionSoundFile,
	CueScore:      constants.ScoreSoundFile,
	CueBackground: constants.BackgroundSoundFile,
}

// LoadAssets decodes every cue file under dir; any missing or broken file fails the load
func LoadAssets(dir string) (*Assets, error) {
	a := &Assets{}
	for c := Cue(0); c < cueCount; c++ {
		buf, err := loadBuffer(filepath.Join(dir, assetFiles[c]))
		if err != nil {
			return nil, fmt.Errorf("load %s sound: %w", c, err)
		}
		a.buffers[c] = buf
	}
	return a, nil
}

func loadBuffer(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrAssetMissing, path)
		}
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	target := beep.SampleRate(constants.AudioSampleRate)
	var s beep.Streamer = streamer
	if format.SampleRate != target {
		s = beep.Resample(constants.ResampleQuality, format.SampleRate, target, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: target, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

// Len returns the length of a cue in samples, 0 for unknown cues
func (a *Assets) Len(c Cue) int {
	if c < 0 || c >= cueCount || a.buffers[c] == nil {
		return 0
	}
	return a.buffers[c].Len()
}

// Cue returns a one-shot streamer over the decoded file
func (a *Assets) Cue(c Cue) beep.Streamer {
	if a.Len(c) == 0 {
		return nil
	}
	buf := a.buffers[c]
	return buf.Streamer(0, buf.Len())
}

// Loop returns an endless streamer over the decoded file
func (a *Assets) Loop(c Cue) beep.Streamer {
	if a.Len(c) == 0 {
		return nil
	}
	buf := a.buffers[c]
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}
