package engine

import (
	"github.com/lixenwraith/block-outrun/constants"
	"github.com/lixenwraith/block-outrun/vmath"
)

// Player is the controlled block
type Player struct {
	vmath.Rect
}

// NewPlayer places the player centered on the resting line
func NewPlayer() Player {
	return Player{Rect: vmath.NewRect(
		constants.ScreenWidth/2-constants.PlayerWidth/2,
		constants.ScreenHeight-constants.RestLineOffset,
		constants.PlayerWidth,
		constants.PlayerHeight,
	)}
}

// Obstacle is a falling block; Y accumulates fractional speed
type Obstacle struct {
	vmath.Rect
}

// NewObstacle creates an obstacle at the top edge
func NewObstacle(x int) Obstacle {
	return Obstacle{Rect: vmath.NewRect(x, 0, constants.ObstacleWidth, constants.ObstacleHeight)}
}

// Player bounds
const (
	playerMaxX    = constants.ScreenWidth - constants.PlayerWidth
	playerMaxY    = constants.ScreenHeight - constants.PlayerHeight
	restLineY     = constants.ScreenHeight - constants.RestLineOffset
	obstacleMaxX  = constants.ScreenWidth - constants.ObstacleWidth
	obstacleLimit = constants.ScreenHeight
)
