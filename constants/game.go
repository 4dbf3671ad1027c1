package constants

// Player
const (
	PlayerWidth  = 50
	PlayerHeight = 50

	// PlayerSpeed is the horizontal move per tick while an arrow is held
	PlayerSpeed = 5

	// FallSpeed is the downward drift per tick while above the rest line
	FallSpeed = 5

	// RestLineOffset places the resting line this far above the bottom edge
	RestLineOffset = 100
)

// Boost
const (
	// BoostPower is the vertical displacement of a boost (negative is up)
	BoostPower = -15

	// BoostCooldownFrames is the number of frames before boost is ready again
	BoostCooldownFrames = 60

	// BoostFlashFrames is how long the player is drawn in the boost color
	BoostFlashFrames = 10
)

// Obstacles
const (
	ObstacleWidth  = 50
	ObstacleHeight = 50

	// InitialObstacleSpeed is the fall speed at session start
	InitialObstacleSpeed = 3.0

	// ObstacleSpeedStep is added to the fall speed every SpeedStepScore points
	ObstacleSpeedStep = 0.5

	// SpeedStepScore is the score interval between speed steps
	SpeedStepScore = 15

	// SpawnChance is the denominator of the per-tick spawn probability (1 in N)
	SpawnChance = 30
)

// Scoring
const (
	// WinScore ends the session with a win once reached
	WinScore = 115

	// MaxPercentage caps the progress readout
	MaxPercentage = 100
)
