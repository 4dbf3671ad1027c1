package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/block-outrun/constants"
)

// Session is the state of one playthrough, created on start and discarded on win, loss or restart
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time

	Player    Player
	Obstacles []Obstacle

	Score         int
	ObstacleSpeed float64
	BoostCooldown int
	Running       bool

	// Frame counts completed ticks
	Frame uint64
}

// NewSession creates a fresh session with the player at rest and no obstacles
func NewSession(now time.Time) *Session {
	return &Session{
		ID:            uuid.New(),
		StartedAt:     now,
		Player:        NewPlayer(),
		Obstacles:     make([]Obstacle, 0, 16),
		ObstacleSpeed: constants.InitialObstacleSpeed,
		Running:       true,
	}
}

// Progress returns the win progress in whole percent, capped at 100
func (s *Session) Progress() int {
	return progressPercent(s.Score)
}

// BoostReady reports whether the next up press triggers a boost
func (s *Session) BoostReady() bool {
	return s.BoostCooldown == 0
}

func progressPercent(score int) int {
	pct := float64(score) / constants.WinScore * 100
	if pct > constants.MaxPercentage {
		pct = constants.MaxPercentage
	}
	return int(pct)
}
