package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/block-outrun/input"
)

// inputSource is the per-tick device state the window host reads
type inputSource interface {
	Held(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (x, y int)
	MouseDown() bool
	Closing() bool
}

// ebitenInput reads the live ebiten device state
type ebitenInput struct{}

func (ebitenInput) Held(k ebiten.Key) bool        { return ebiten.IsKeyPressed(k) }
func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) Cursor() (int, int)            { return ebiten.CursorPosition() }
func (ebitenInput) MouseDown() bool               { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }
func (ebitenInput) Closing() bool                 { return ebiten.IsWindowBeingClosed() }

// sample builds the snapshot for one tick
// Movement is held state; menu keys are edges so a held key acts once
func sample(src inputSource) input.Snapshot {
	x, y := src.Cursor()
	return input.Snapshot{
		Left:  src.Held(ebiten.KeyArrowLeft),
		Right: src.Held(ebiten.KeyArrowRight),
		Up:    src.Held(ebiten.KeyArrowUp),

		Escape:  src.JustPressed(ebiten.KeyEscape),
		Enter:   src.JustPressed(ebiten.KeyEnter) || src.JustPressed(ebiten.KeyNumpadEnter),
		Help:    src.JustPressed(ebiten.KeyH),
		Resume:  src.JustPressed(ebiten.KeyP),
		Restart: src.JustPressed(ebiten.KeyR),
		Quit:    src.JustPressed(ebiten.KeyQ),

		QuitRequest: src.Closing(),

		Pointer: input.Pointer{
			X:    float64(x),
			Y:    float64(y),
			Down: src.MouseDown(),
		},
	}
}
