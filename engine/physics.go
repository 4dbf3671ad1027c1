package engine

import (
	"github.com/lixenwraith/block-outrun/constants"
	"github.com/lixenwraith/block-outrun/input"
	"github.com/lixenwraith/block-outrun/vmath"
)

// Rand is the random source for spawning, satisfied by *math/rand/v2.Rand
type Rand interface {
	IntN(n int) int
}

// Outcome reports what happened during one tick
type Outcome struct {
	// Scored is the number of obstacles that left the playfield this tick
	Scored   int
	Boosted  bool
	Spawned  bool
	Won      bool
	Collided bool
}

// Step advances the session by one tick
// Order: move, boost, cooldown, clamp, fall, spawn, obstacles, win, collision
func Step(s *Session, in input.Snapshot, rng Rand) Outcome {
	var out Outcome
	p := &s.Player

	// Independent checks: left and right together cancel out
	if in.Left && p.X > 0 {
		p.X -= constants.PlayerSpeed
	}
	if in.Right && p.X < playerMaxX {
		p.X += constants.PlayerSpeed
	}

	if in.Up && s.BoostCooldown == 0 {
		p.Y += constants.BoostPower
		s.BoostCooldown = constants.BoostCooldownFrames
		out.Boosted = true
	}

	// Runs on the trigger tick too, so a fresh boost ends the tick at 59
	if s.BoostCooldown > 0 {
		s.BoostCooldown--
	}

	p.Y = vmath.Clamp(p.Y, 0, playerMaxY)

	if p.Y < restLineY {
		p.Y += constants.FallSpeed
	}

	if rng.IntN(constants.SpawnChance)+1 == 1 {
		s.Obstacles = append(s.Obstacles, NewObstacle(rng.IntN(obstacleMaxX+1)))
		out.Spawned = true
	}

	out.Scored = advanceObstacles(s)

	if s.Score >= constants.WinScore {
		out.Won = true
		s.Running = false
		s.Frame++
		return out
	}

	if Collides(s.Player, s.Obstacles) {
		out.Collided = true
		s.Running = false
	}

	s.Frame++
	return out
}

// advanceObstacles moves every obstacle down and removes the ones past the
// bottom edge, scoring each. Survivors are copied in order from the frozen
// slice so no entry is skipped or visited twice
func advanceObstacles(s *Session) int {
	scored := 0
	kept := make([]Obstacle, 0, len(s.Obstacles))

	for _, o := range s.Obstacles {
		o.Y += s.ObstacleSpeed
		if o.Y > obstacleLimit {
			scored++
			s.Score++
			if s.Score%constants.SpeedStepScore == 0 {
				s.ObstacleSpeed += constants.ObstacleSpeedStep
			}
			continue
		}
		kept = append(kept, o)
	}

	s.Obstacles = kept
	return scored
}
