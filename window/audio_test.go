package window

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	bwav "github.com/gopxl/beep/wav"

	"github.com/lixenwraith/block-outrun/audio"
	"github.com/lixenwraith/block-outrun/constants"
)

func writeTone(t *testing.T, path string, rate beep.SampleRate, d time.Duration) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := bwav.Encode(f, audio.NewOscillator(440, d, audio.WaveSine, rate), format); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
}

func TestLoadClips(t *testing.T) {
	dir := t.TempDir()
	for _, name := range clipFiles {
		writeTone(t, filepath.Join(dir, name), constants.AudioSampleRate, 100*time.Millisecond)
	}

	clips, err := LoadClips(dir, constants.AudioSampleRate)
	if err != nil {
		t.Fatalf("Expected clips to load, got %v", err)
	}
	for c := range clipFiles {
		if got := len(clips[c]); got != 4410*4 {
			t.Errorf("Expected %d bytes for %s, got %d", 4410*4, c, got)
		}
	}
}

// TestLoadClipsResamples verifies files at other rates are converted
func TestLoadClipsResamples(t *testing.T) {
	dir := t.TempDir()
	for _, name := range clipFiles {
		writeTone(t, filepath.Join(dir, name), 22050, 100*time.Millisecond)
	}

	clips, err := LoadClips(dir, constants.AudioSampleRate)
	if err != nil {
		t.Fatalf("Expected clips to load, got %v", err)
	}
	frames := len(clips[audio.CueScore]) / 4
	if frames < 4300 || frames > 4500 {
		t.Errorf("Expected about 4410 frames after resampling, got %d", frames)
	}
}

func TestLoadClipsMissing(t *testing.T) {
	_, err := LoadClips(t.TempDir(), constants.AudioSampleRate)
	if !errors.Is(err, audio.ErrAssetMissing) {
		t.Errorf("Expected ErrAssetMissing, got %v", err)
	}
}

func TestSynthClips(t *testing.T) {
	clips := SynthClips()
	rate := beep.SampleRate(constants.AudioSampleRate)

	if got, want := len(clips[audio.CueBackground]), rate.N(constants.BackgroundBeatDuration)*4; got != want {
		t.Errorf("Expected one beat of background (%d bytes), got %d", want, got)
	}
	// The mixer finishes on a whole render chunk
	minFrames := rate.N(constants.CollisionSoundDuration)
	if got := len(clips[audio.CueCollision]) / 4; got < minFrames || got > minFrames+512 {
		t.Errorf("Expected about %d collision frames, got %d", minFrames, got)
	}
	if len(clips[audio.CueScore]) == 0 {
		t.Error("Expected a score clip")
	}
}
