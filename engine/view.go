package engine

import (
	"github.com/lixenwraith/block-outrun/constants"
	"github.com/lixenwraith/block-outrun/vmath"
)

// View is everything a renderer needs for one frame
type View struct {
	Mode Mode
	Base Mode

	Player    vmath.Rect
	Obstacles []vmath.Rect

	Score    int
	Progress int
	FPS      float64

	// BoostFraction is the recharged share of the boost meter in [0, 1]
	BoostFraction float64

	// BoostFlash is set for the first frames after a boost
	BoostFlash bool

	Volume     float64
	FinalScore int
}

// View captures the drawable state; fps is the host's measured frame rate
func (g *Game) View(fps float64) View {
	v := View{
		Mode:          g.Mode(),
		Base:          g.Base(),
		FPS:           fps,
		Volume:        g.settings.Volume,
		FinalScore:    g.finalScore,
		Score:         g.finalScore,
		Progress:      progressPercent(g.finalScore),
		BoostFraction: 1,
	}

	s := g.session
	if s == nil {
		return v
	}

	v.Player = s.Player.Rect
	v.Obstacles = make([]vmath.Rect, len(s.Obstacles))
	for i, o := range s.Obstacles {
		v.Obstacles[i] = o.Rect
	}
	v.Score = s.Score
	v.Progress = s.Progress()
	v.BoostFraction = float64(constants.BoostCooldownFrames-s.BoostCooldown) / constants.BoostCooldownFrames
	v.BoostFlash = s.BoostCooldown > constants.BoostCooldownFrames-constants.BoostFlashFrames
	return v
}
