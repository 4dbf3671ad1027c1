package audio

// Silent is the no-op player used when no sound output is available
type Silent struct{}

func (Silent) Play(Cue)          {}
func (Silent) SetVolume(float64) {}
func (Silent) Close() error      { return nil }
