package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lixenwraith/block-outrun/constants"
	"github.com/lixenwraith/block-outrun/engine"
	"github.com/lixenwraith/block-outrun/vmath"
)

const (
	centerX = constants.ScreenWidth / 2
	centerY = constants.ScreenHeight / 2

	// helpLineHeight is the spacing between how-to-play lines
	helpLineHeight = 30
	helpTop        = 50
	helpLeft       = 50
)

// HelpLines is the how-to-play text; the first line is the heading
var HelpLines = []string{
	"How to Play",
	"",
	"Controls:",
	"Left/Right Arrow Keys: Move left/right",
	"Up Arrow Key: Activate boost",
	"ESC: Pause game",
	"P: Resume game",
	"",
	"Objectives:",
	"- Dodge the falling obstacles",
	fmt.Sprintf("- Reach score %d to win", constants.WinScore),
	"- Use boost wisely to escape",
	"",
	"Tips:",
	"- Watch your boost meter",
	"- Speed increases with score",
	"",
	"Press ESC or H to return",
}

var (
	progressBar = vmath.NewRect(constants.ProgressBarX, constants.ProgressBarY, constants.ProgressBarWidth, constants.ProgressBarHeight)
	boostMeter  = vmath.NewRect(constants.BoostMeterX, constants.BoostMeterY, constants.BoostMeterWidth, constants.BoostMeterHeight)
	volumeBar   = vmath.NewRect(constants.VolumeSliderX, constants.VolumeSliderY, constants.VolumeSliderWidth, constants.VolumeSliderHeight)
)

// meter draws a gray track, a partial fill and an outline
func (s *Scene) meter(track vmath.Rect, fraction float64, c color.RGBA, stroke float64) {
	s.fill(track, ColorGray)
	part := track
	part.W = track.W * vmath.Clamp01(fraction)
	if part.W > 0 {
		s.fill(part, c)
	}
	s.outline(track, ColorBlack, stroke)
}

func playingScene(v engine.View) Scene {
	s := Scene{Background: ColorWhite}

	s.meter(boostMeter, v.BoostFraction, ColorBoost, 1)
	s.text("Boost", constants.BoostMeterX-50, constants.BoostMeterY, ColorBlack)

	player := ColorBlue
	if v.BoostFlash {
		player = ColorBoost
	}
	s.fill(v.Player, player)
	for _, o := range v.Obstacles {
		s.fill(o, ColorRed)
	}

	s.meter(progressBar, float64(v.Progress)/constants.MaxPercentage, ColorGreen, 2)
	s.text(fmt.Sprintf("Progress: %d%%", v.Progress), centerX-70, 50, ColorBlack)
	s.text(fmt.Sprintf("Score: %d", v.Score), 10, 10, ColorBlack)
	s.text(fmt.Sprintf("FPS: %d", int(v.FPS)), constants.ScreenWidth-100, 10, ColorBlack)
	return s
}

func pausedScene(v engine.View) Scene {
	s := Scene{Background: ColorGray}
	s.text("PAUSED", centerX-50, centerY-100, ColorBlack)
	s.text("Press ESC to Resume", centerX-100, centerY-50, ColorBlack)
	s.text("Press R to Restart", centerX-90, centerY, ColorBlack)

	s.meter(volumeBar, v.Volume, ColorGreen, 2)
	s.text(fmt.Sprintf("Volume: %d%%", VolumePercent(v.Volume)), constants.VolumeSliderX, constants.VolumeSliderY-30, ColorBlack)

	s.text("Press H for How to Play", centerX-100, centerY+100, ColorBlack)
	s.text("Press Q to Quit", centerX-80, centerY+150, ColorBlack)
	return s
}

func helpScene() Scene {
	s := Scene{Background: ColorWhite}
	y := float64(helpTop)
	for i, line := range HelpLines {
		if i == 0 {
			s.text(line, centerX-100, y, ColorRed)
		} else if line != "" {
			s.text(line, helpLeft, y, ColorBlack)
		}
		y += helpLineHeight
	}
	return s
}

func titleScene(v engine.View, win bool) Scene {
	s := Scene{Background: ColorWhite}
	if win {
		s.Background = ColorYellow
		s.text("You Win!", centerX-70, centerY-100, ColorRed)
		s.text(fmt.Sprintf("Final Score: %d", v.FinalScore), centerX-70, centerY-50, ColorBlack)
	} else {
		s.text("Dodge the Falling Obstacles!", centerX-150, centerY-100, ColorRed)
		s.text("Block Outrun", centerX-60, centerY-50, ColorBlue)
	}
	s.text("Press ENTER to Start", centerX-100, centerY, ColorBlack)
	s.text("Press ESC to Pause", centerX-90, constants.ScreenHeight-100, ColorBlack)
	s.text("Press H for How to Play", centerX-100, constants.ScreenHeight-50, ColorBlack)
	return s
}

func gameOverScene(v engine.View) Scene {
	s := Scene{Background: ColorWhite}
	s.text("Game Over!", centerX-100, centerY-50, ColorRed)
	s.text(fmt.Sprintf("Final Score: %d", v.FinalScore), centerX-100, centerY, ColorBlack)
	s.text("Press R to Restart or Q to Quit", centerX-150, centerY+50, ColorBlack)
	s.text("Press H for How to Play", centerX-100, centerY+100, ColorBlack)
	return s
}

// VolumePercent returns the volume as a whole percentage
func VolumePercent(v float64) int {
	return int(math.Round(vmath.Clamp01(v) * 100))
}
