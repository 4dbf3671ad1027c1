package terminal

import (
	"context"
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/block-outrun/constants"
	"github.com/lixenwraith/block-outrun/core"
	"github.com/lixenwraith/block-outrun/engine"
	"github.com/lixenwraith/block-outrun/input"
	"github.com/lixenwraith/block-outrun/render"
)

// eventBufferSize bounds the events queued between frames
const eventBufferSize = 100

// ErrScreenClosed is returned when the event source stops before a quit
var ErrScreenClosed = errors.New("terminal: screen closed")

// Host runs the frame loop: drain events, sample, update, draw, pace
type Host struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	tracker  *input.Tracker
	game     *engine.Game
	clock    *engine.FrameClock

	events chan tcell.Event
	faults chan core.Exit
	closed bool
}

// NewHost wires a game to a screen
func NewHost(screen tcell.Screen, game *engine.Game, tracker *input.Tracker, clock *engine.FrameClock) *Host {
	return &Host{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		tracker:  tracker,
		game:     game,
		clock:    clock,
		events:   make(chan tcell.Event, eventBufferSize),
		faults:   make(chan core.Exit, 1),
	}
}

// Run blocks until the game quits, ctx is cancelled or the event reader faults
// Cancellation is delivered to the game as a quit request
func (h *Host) Run(ctx context.Context) error {
	core.Go(h.pollEvents, func(e core.Exit) {
		h.faults <- e
	})

	for {
		select {
		case e := <-h.faults:
			return e.Err
		case <-ctx.Done():
			h.tracker.RequestQuit()
		default:
		}

		h.drainEvents()
		if h.closed {
			return ErrScreenClosed
		}

		if h.game.Update(h.tracker.Sample()) == engine.ModeQuit {
			return nil
		}

		h.renderer.Draw(render.Compose(h.game.View(h.clock.FPS())))
		h.clock.Tick(h.game.TargetFPS())
	}
}

// pollEvents forwards screen events until the screen is finalized
func (h *Host) pollEvents() {
	for {
		ev := h.screen.PollEvent()
		h.events <- ev
		if ev == nil {
			return
		}
	}
}

// drainEvents applies every queued event without blocking
func (h *Host) drainEvents() {
	for {
		select {
		case ev := <-h.events:
			if ev == nil {
				h.closed = true
				return
			}
			h.handleEvent(ev)
		default:
			return
		}
	}
}

func (h *Host) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, quit := TranslateKey(ev.Key(), ev.Rune())
		if quit {
			log.Printf("terminal: interrupt")
			h.tracker.RequestQuit()
			return
		}
		h.tracker.Press(k)

	case *tcell.EventMouse:
		h.tracker.MovePointer(h.pointer(ev))

	case *tcell.EventResize:
		h.renderer.UpdateDimensions()
		h.screen.Sync()
	}
}

// pointer maps a mouse cell to the world pixel at its center
func (h *Host) pointer(ev *tcell.EventMouse) input.Pointer {
	x, y := ev.Position()
	ox, oy := h.renderer.Origin()
	return input.Pointer{
		X:    float64((x-ox)*constants.CellWidth + constants.CellWidth/2),
		Y:    float64((y-oy)*constants.CellHeight + constants.CellHeight/2),
		Down: ev.Buttons()&tcell.Button1 != 0,
	}
}
