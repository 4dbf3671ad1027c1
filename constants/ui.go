package constants

// Volume
const (
	// DefaultVolume is the master volume at process start
	DefaultVolume = 0.5

	// VolumeKeyStep is the volume change per paused frame while an arrow is held
	VolumeKeyStep = 0.01
)

// Volume slider geometry in world pixels, shared by renderers and the pause menu hit test
const (
	VolumeSliderWidth  = 200
	VolumeSliderHeight = 20
	VolumeSliderX      = ScreenWidth/2 - VolumeSliderWidth/2
	VolumeSliderY      = ScreenHeight/2 + 50
)

// Progress bar geometry in world pixels
const (
	ProgressBarX      = 50
	ProgressBarY      = 20
	ProgressBarWidth  = 400
	ProgressBarHeight = 20
)

// Boost meter geometry in world pixels
const (
	BoostMeterWidth  = 100
	BoostMeterHeight = 10
	BoostMeterX      = ScreenWidth - BoostMeterWidth - 10
	BoostMeterY      = 40
)

// Terminal playfield mapping
const (
	// CellWidth is the number of world pixels per terminal column
	CellWidth = 10

	// CellHeight is the number of world pixels per terminal row
	CellHeight = 20

	// PlayfieldCols is the terminal playfield width in columns
	PlayfieldCols = ScreenWidth / CellWidth

	// PlayfieldRows is the terminal playfield height in rows
	PlayfieldRows = ScreenHeight / CellHeight
)
