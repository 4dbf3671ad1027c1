package constants

import "time"

// Playfield
const (
	// ScreenWidth is the playfield width in world pixels
	ScreenWidth = 500

	// ScreenHeight is the playfield height in world pixels
	ScreenHeight = 600
)

// Frame Pacing
const (
	// PlayFPS is the target frame rate during play and menus
	PlayFPS = 60

	// PauseFPS is the target frame rate while the pause menu is open
	PauseFPS = 30

	// FPSSampleFrames is the number of recent frames averaged for the FPS readout
	FPSSampleFrames = 10

	// PlayFrameInterval is the frame budget at PlayFPS
	PlayFrameInterval = time.Second / PlayFPS
)
