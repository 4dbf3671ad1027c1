package render

import "image/color"

// Palette shared by the terminal and window renderers
var (
	ColorWhite  = color.RGBA{255, 255, 255, 255}
	ColorBlack  = color.RGBA{0, 0, 0, 255}
	ColorRed    = color.RGBA{255, 0, 0, 255}
	ColorBlue   = color.RGBA{0, 0, 255, 255}
	ColorYellow = color.RGBA{255, 255, 0, 255}
	ColorGray   = color.RGBA{200, 200, 200, 255}
	ColorGreen  = color.RGBA{0, 255, 0, 255}

	// ColorBoost marks the boost meter and the player right after a boost
	ColorBoost = color.RGBA{0, 255, 255, 255}
)
