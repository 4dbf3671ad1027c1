// Package window hosts the game in an ebiten window at the native playfield resolution
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/block-outrun/constants"
	"github.com/lixenwraith/block-outrun/engine"
	"github.com/lixenwraith/block-outrun/render"
)

// Game adapts engine.Game to ebiten.Game
type Game struct {
	game  *engine.Game
	input inputSource
	tps   int
}

// NewGame creates the ebiten adapter
func NewGame(game *engine.Game) *Game {
	return &Game{game: game, input: ebitenInput{}}
}

// Update samples input and advances the game one tick
func (g *Game) Update() error {
	if g.game.Update(sample(g.input)) == engine.ModeQuit {
		return ebiten.Termination
	}

	// Pause runs the loop slower, as the terminal host does
	if tps := g.game.TargetFPS(); tps != g.tps {
		ebiten.SetTPS(tps)
		g.tps = tps
	}
	return nil
}

// Draw renders the current view
func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, render.Compose(g.game.View(ebiten.ActualTPS())))
}

// Layout keeps the logical screen at the playfield size; the window scales it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constants.ScreenWidth, constants.ScreenHeight
}

func drawScene(screen *ebiten.Image, s render.Scene) {
	screen.Fill(s.Background)

	for _, sh := range s.Shapes {
		r := sh.Rect
		if sh.Stroke > 0 {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(sh.Stroke), sh.Color, false)
			continue
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), sh.Color, false)
	}

	face := basicfont.Face7x13
	for _, l := range s.Labels {
		// text.Draw positions the baseline
		text.Draw(screen, l.Text, face, int(l.X), int(l.Y)+face.Ascent, l.Color)
	}
}

// Run opens the window and blocks until the game quits or the window closes
func Run(g *Game, scale int) error {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(constants.ScreenWidth*scale, constants.ScreenHeight*scale)
	ebiten.SetWindowTitle("Block Outrun")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(constants.PlayFPS)
	g.tps = constants.PlayFPS

	// RunGame returns nil when Update returns ebiten.Termination
	return ebiten.RunGame(g)
}
