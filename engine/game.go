package engine

import (
	"log"

	"github.com/lixenwraith/block-outrun/audio"
	"github.com/lixenwraith/block-outrun/constants"
	"github.com/lixenwraith/block-outrun/input"
	"github.com/lixenwraith/block-outrun/vmath"
)

// Settings are process-wide and survive sessions
type Settings struct {
	Volume float64
}

// DefaultSettings returns the settings at process start
func DefaultSettings() Settings {
	return Settings{Volume: constants.DefaultVolume}
}

var volumeSlider = vmath.NewRect(
	constants.VolumeSliderX,
	constants.VolumeSliderY,
	constants.VolumeSliderWidth,
	constants.VolumeSliderHeight,
)

// Game is the session state machine
// Modes form a stack: a base mode (title, playing, game over, win) with
// overlays (paused, help) pushed on top. Only the top mode handles input
type Game struct {
	stack    []Mode
	session  *Session
	settings Settings

	audio audio.Player
	rng   Rand
	time  TimeProvider

	finalScore int
}

// NewGame creates a game at the title screen
func NewGame(player audio.Player, rng Rand, tp TimeProvider, settings Settings) *Game {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	settings.Volume = vmath.Clamp01(settings.Volume)
	return &Game{
		stack:    []Mode{ModeTitle},
		settings: settings,
		audio:    player,
		rng:      rng,
		time:     tp,
	}
}

// Mode returns the active (top) mode
func (g *Game) Mode() Mode {
	return g.stack[len(g.stack)-1]
}

// Base returns the mode beneath any overlays
func (g *Game) Base() Mode {
	return g.stack[0]
}

// Session returns the active session, nil outside play
func (g *Game) Session() *Session {
	return g.session
}

// Settings returns the current settings
func (g *Game) Settings() Settings {
	return g.settings
}

// FinalScore returns the score of the last finished session
func (g *Game) FinalScore() int {
	return g.finalScore
}

// TargetFPS returns the frame rate the host should pace the next frame to
func (g *Game) TargetFPS() int {
	if g.Mode() == ModePaused {
		return constants.PauseFPS
	}
	return constants.PlayFPS
}

// Update applies one frame of input and returns the resulting mode
func (g *Game) Update(in input.Snapshot) Mode {
	if g.Mode() == ModeQuit {
		return ModeQuit
	}
	if in.QuitRequest {
		g.quit("quit requested")
		return ModeQuit
	}

	switch g.Mode() {
	case ModeTitle:
		g.updateTitle(in)
	case ModePlaying:
		g.updatePlaying(in)
	case ModePaused:
		g.updatePaused(in)
	case ModeHelp:
		g.updateHelp(in)
	case ModeGameOver:
		g.updateGameOver(in)
	case ModeWin:
		g.updateWin(in)
	}
	return g.Mode()
}

func (g *Game) updateTitle(in input.Snapshot) {
	switch {
	case in.Help:
		g.push(ModeHelp)
	case in.Enter:
		g.startSession()
	}
}

func (g *Game) updatePlaying(in input.Snapshot) {
	if in.Escape {
		g.push(ModePaused)
		return
	}

	out := Step(g.session, in, g.rng)
	for i := 0; i < out.Scored; i++ {
		g.audio.Play(audio.CueScore)
	}

	switch {
	case out.Won:
		g.endSession(ModeWin, "win")
	case out.Collided:
		g.audio.Play(audio.CueCollision)
		g.endSession(ModeGameOver, "collision")
	}
}

func (g *Game) updatePaused(in input.Snapshot) {
	switch {
	case in.Quit:
		g.quit("quit from pause menu")
		return
	case in.Restart:
		g.logSession("restarted")
		g.startSession()
		return
	case in.Help:
		g.push(ModeHelp)
		return
	case in.Escape, in.Resume:
		g.pop()
		return
	}
	g.adjustVolume(in)
}

func (g *Game) updateHelp(in input.Snapshot) {
	if in.Escape || in.Help {
		g.pop()
	}
}

func (g *Game) updateGameOver(in input.Snapshot) {
	switch {
	case in.Quit:
		g.quit("quit from game over")
	case in.Restart:
		// The title is passed through without waiting for enter
		g.startSession()
	case in.Help:
		g.push(ModeHelp)
	}
}

func (g *Game) updateWin(in input.Snapshot) {
	switch {
	case in.Help:
		g.push(ModeHelp)
	case in.Enter:
		g.stack = []Mode{ModeTitle}
	}
}

// adjustVolume applies arrow keys and slider clicks in the pause menu
func (g *Game) adjustVolume(in input.Snapshot) {
	v := g.settings.Volume
	if in.Left {
		v -= constants.VolumeKeyStep
	}
	if in.Right {
		v += constants.VolumeKeyStep
	}
	if in.Pointer.Down && volumeSlider.Contains(in.Pointer.X, in.Pointer.Y) {
		v = (in.Pointer.X - volumeSlider.X) / volumeSlider.W
	}

	v = vmath.Clamp01(v)
	if v == g.settings.Volume {
		return
	}
	g.settings.Volume = v
	g.audio.SetVolume(v)
}

func (g *Game) startSession() {
	g.session = NewSession(g.time.Now())
	g.stack = []Mode{ModePlaying}
	g.logSession("started")
}

func (g *Game) endSession(next Mode, reason string) {
	g.finalScore = g.session.Score
	g.logSession("ended: " + reason)
	g.session = nil
	g.stack = []Mode{next}
}

func (g *Game) quit(reason string) {
	if g.session != nil {
		g.logSession("abandoned: " + reason)
	} else {
		log.Printf("game: %s", reason)
	}
	g.session = nil
	g.stack = []Mode{ModeQuit}
}

func (g *Game) logSession(event string) {
	s := g.session
	if s == nil {
		return
	}
	log.Printf("session %s: %s score=%d speed=%.1f frames=%d",
		s.ID, event, s.Score, s.ObstacleSpeed, s.Frame)
}

func (g *Game) push(m Mode) {
	g.stack = append(g.stack, m)
}

func (g *Game) pop() {
	if len(g.stack) > 1 {
		g.stack = g.stack[:len(g.stack)-1]
	}
}
