package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker rate; assets at other rates are resampled
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// ResampleQuality is the beep resampler quality (1-64)
	ResampleQuality = 4
)

// Asset file names inside the asset directory
const (
	CollisionSoundFile  = "collision.wav"
	ScoreSoundFile      = "score.wav"
	BackgroundSoundFile = "background.wav"
)

// Collision Sound Timing (synthesized fallback)
const (
	CollisionSoundDuration = 250 * time.Millisecond
	CollisionSoundAttack   = 5 * time.Millisecond
	CollisionSoundRelease  = 180 * time.Millisecond
)

// Score Sound Timing (synthesized fallback)
const (
	ScoreSoundNote1Duration = 60 * time.Millisecond
	ScoreSoundNote2Duration = 120 * time.Millisecond
	ScoreSoundAttack        = 3 * time.Millisecond
	ScoreSoundNote1Release  = 20 * time.Millisecond
	ScoreSoundNote2Release  = 90 * time.Millisecond
)

// Background Loop (synthesized fallback)
const (
	// BackgroundBeatDuration is one beat of the synthesized loop (100 BPM)
	BackgroundBeatDuration = 600 * time.Millisecond

	// BackgroundKickDuration is the kick length at the start of each beat
	BackgroundKickDuration = 100 * time.Millisecond

	// BackgroundBassFreq is the sustained bass tone under the kick
	BackgroundBassFreq = 110.0

	// BackgroundBassGain is the linear gain of the bass tone
	BackgroundBassGain = 0.08
)
