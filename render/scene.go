package render

import (
	"image/color"

	"github.com/lixenwraith/block-outrun/engine"
	"github.com/lixenwraith/block-outrun/vmath"
)

// Shape is a rectangle in world pixels
type Shape struct {
	Rect  vmath.Rect
	Color color.RGBA

	// Stroke is the outline width in pixels, zero fills the rect
	Stroke float64
}

// Label is a line of text anchored at its top-left corner in world pixels
type Label struct {
	Text  string
	X, Y  float64
	Color color.RGBA
}

// Scene is a backend-independent frame: background, then shapes, then labels
type Scene struct {
	Background color.RGBA
	Shapes     []Shape
	Labels     []Label
}

func (s *Scene) fill(r vmath.Rect, c color.RGBA) {
	s.Shapes = append(s.Shapes, Shape{Rect: r, Color: c})
}

func (s *Scene) outline(r vmath.Rect, c color.RGBA, width float64) {
	s.Shapes = append(s.Shapes, Shape{Rect: r, Color: c, Stroke: width})
}

func (s *Scene) text(text string, x, y float64, c color.RGBA) {
	s.Labels = append(s.Labels, Label{Text: text, X: x, Y: y, Color: c})
}

// Compose builds the scene for the active mode of v
func Compose(v engine.View) Scene {
	switch v.Mode {
	case engine.ModePlaying:
		return playingScene(v)
	case engine.ModePaused:
		return pausedScene(v)
	case engine.ModeHelp:
		return helpScene()
	case engine.ModeGameOver:
		return gameOverScene(v)
	case engine.ModeWin:
		return titleScene(v, true)
	case engine.ModeTitle:
		return titleScene(v, false)
	}
	return Scene{Background: ColorBlack}
}
