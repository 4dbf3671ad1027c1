package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/block-outrun/audio"
	"github.com/lixenwraith/block-outrun/constants"
	"github.com/lixenwraith/block-outrun/input"
)

var (
	none    = input.Snapshot{}
	enter   = input.Snapshot{Enter: true}
	escape  = input.Snapshot{Escape: true}
	help    = input.Snapshot{Help: true}
	resume  = input.Snapshot{Resume: true}
	restart = input.Snapshot{Restart: true}
	quit    = input.Snapshot{Quit: true}
)

// startPlaying returns a game already in a fresh session
func startPlaying(t *testing.T) (*Game, *recordingPlayer) {
	t.Helper()
	g, p := newTestGame()
	if m := g.Update(enter); m != ModePlaying {
		t.Fatalf("Expected playing after enter, got %v", m)
	}
	return g, p
}

// TestGameStartsAtTitle verifies the initial state
func TestGameStartsAtTitle(t *testing.T) {
	g, _ := newTestGame()
	if g.Mode() != ModeTitle {
		t.Errorf("Expected title, got %v", g.Mode())
	}
	if g.Session() != nil {
		t.Error("Expected no session at title")
	}
	if g.Update(none) != ModeTitle {
		t.Error("Expected title to wait for enter")
	}
}

// TestTitleStartsFreshSession verifies enter initializes the session
func TestTitleStartsFreshSession(t *testing.T) {
	g, _ := startPlaying(t)
	s := g.Session()
	if s == nil {
		t.Fatal("Expected session after start")
	}
	if s.Score != 0 || s.ObstacleSpeed != 3.0 || s.BoostCooldown != 0 || len(s.Obstacles) != 0 {
		t.Errorf("Expected fresh session, got %+v", s)
	}
}

// TestHelpOverlay verifies help opens from title and returns to it
func TestHelpOverlay(t *testing.T) {
	g, _ := newTestGame()

	if g.Update(help) != ModeHelp {
		t.Fatal("Expected help from title")
	}
	if g.Base() != ModeTitle {
		t.Errorf("Expected title beneath help, got %v", g.Base())
	}
	if g.Update(enter) != ModeHelp {
		t.Error("Expected enter ignored in help")
	}
	if g.Update(escape) != ModeTitle {
		t.Error("Expected escape to close help")
	}

	g.Update(help)
	if g.Update(help) != ModeTitle {
		t.Error("Expected h to close help")
	}
}

// TestPauseFreezesSession verifies no physics runs while paused
func TestPauseFreezesSession(t *testing.T) {
	g, _ := startPlaying(t)
	s := g.Session()
	s.Obstacles = []Obstacle{NewObstacle(0)}

	if g.Update(escape) != ModePaused {
		t.Fatal("Expected paused after escape")
	}
	if g.TargetFPS() != constants.PauseFPS {
		t.Errorf("Expected %d fps while paused, got %d", constants.PauseFPS, g.TargetFPS())
	}
	frame := s.Frame
	obstacleY := s.Obstacles[0].Y

	for i := 0; i < 10; i++ {
		g.Update(input.Snapshot{Up: true})
	}
	if s.Frame != frame || s.Obstacles[0].Y != obstacleY || s.Player.Y != 500 {
		t.Error("Expected session frozen while paused")
	}

	if g.Update(resume) != ModePlaying {
		t.Fatal("Expected p to resume")
	}
	if g.Session() != s {
		t.Error("Expected the same session after resume")
	}
	if g.TargetFPS() != constants.PlayFPS {
		t.Errorf("Expected %d fps while playing, got %d", constants.PlayFPS, g.TargetFPS())
	}

	g.Update(escape)
	if g.Update(escape) != ModePlaying {
		t.Error("Expected escape to resume")
	}
}

// TestPauseRestart verifies restart discards the session for a fresh one
func TestPauseRestart(t *testing.T) {
	g, _ := startPlaying(t)
	old := g.Session()
	old.Score = 40
	old.ObstacleSpeed = 4.5
	old.Obstacles = []Obstacle{NewObstacle(0), NewObstacle(100)}

	g.Update(escape)
	if g.Update(restart) != ModePlaying {
		t.Fatal("Expected playing after restart")
	}

	s := g.Session()
	if s == old {
		t.Fatal("Expected a new session")
	}
	if s.ID == old.ID {
		t.Error("Expected a new session ID")
	}
	if s.Score != 0 || len(s.Obstacles) != 0 || s.ObstacleSpeed != 3.0 {
		t.Errorf("Expected fresh session, got score=%d obstacles=%d speed=%v", s.Score, len(s.Obstacles), s.ObstacleSpeed)
	}
	if len(g.stack) != 1 {
		t.Errorf("Expected overlays cleared, got stack %v", g.stack)
	}
}

// TestPauseHelpReturnsToPause verifies help stacks above the pause menu
func TestPauseHelpReturnsToPause(t *testing.T) {
	g, _ := startPlaying(t)
	g.Update(escape)

	if g.Update(help) != ModeHelp {
		t.Fatal("Expected help from pause")
	}
	if g.Update(escape) != ModePaused {
		t.Error("Expected escape in help to return to pause, not resume play")
	}
}

// TestPauseQuit verifies q quits from the pause menu
func TestPauseQuit(t *testing.T) {
	g, _ := startPlaying(t)
	g.Update(escape)

	if g.Update(quit) != ModeQuit {
		t.Error("Expected quit")
	}
	if g.Session() != nil {
		t.Error("Expected session discarded on quit")
	}
}

// TestCollisionEndsSession verifies a hit plays the cue and shows game over
func TestCollisionEndsSession(t *testing.T) {
	g, p := startPlaying(t)
	s := g.Session()
	s.Score = 7
	hit := NewObstacle(225)
	hit.Y = 497
	s.Obstacles = []Obstacle{hit}

	if g.Update(none) != ModeGameOver {
		t.Fatalf("Expected game over, got %v", g.Mode())
	}
	if p.count(audio.CueCollision) != 1 {
		t.Errorf("Expected 1 collision cue, got %d", p.count(audio.CueCollision))
	}
	if g.Session() != nil {
		t.Error("Expected session discarded")
	}
	if g.FinalScore() != 7 {
		t.Errorf("Expected final score 7, got %d", g.FinalScore())
	}
}

// TestGameOverTransitions verifies restart and quit from game over
func TestGameOverTransitions(t *testing.T) {
	g, _ := startPlaying(t)
	hit := NewObstacle(225)
	hit.Y = 497
	g.Session().Obstacles = []Obstacle{hit}
	g.Update(none)

	if g.Update(enter) != ModeGameOver {
		t.Error("Expected enter ignored on game over")
	}
	if g.Update(help) != ModeHelp {
		t.Error("Expected help from game over")
	}
	g.Update(escape)

	if g.Update(restart) != ModePlaying {
		t.Fatal("Expected restart to start a new session")
	}
	if s := g.Session(); s == nil || s.Score != 0 {
		t.Error("Expected fresh session after restart")
	}

	g.Session().Obstacles = []Obstacle{hit}
	g.Update(none)
	if g.Update(quit) != ModeQuit {
		t.Error("Expected quit from game over")
	}
}

// TestScoreCues verifies one score cue per obstacle leaving the playfield
func TestScoreCues(t *testing.T) {
	g, p := startPlaying(t)
	s := g.Session()
	a, b := NewObstacle(0), NewObstacle(100)
	a.Y, b.Y = 599, 599
	s.Obstacles = []Obstacle{a, b}

	g.Update(none)
	if p.count(audio.CueScore) != 2 {
		t.Errorf("Expected 2 score cues, got %d", p.count(audio.CueScore))
	}
	if s.Score != 2 {
		t.Errorf("Expected score 2, got %d", s.Score)
	}
}

// TestWinFlow covers 114 -> 115, the win screen and the return to title
func TestWinFlow(t *testing.T) {
	g, _ := startPlaying(t)
	s := g.Session()
	s.Score = 114
	o := NewObstacle(0)
	o.Y = 599
	s.Obstacles = []Obstacle{o}

	if g.Update(none) != ModeWin {
		t.Fatalf("Expected win, got %v", g.Mode())
	}
	if g.Session() != nil {
		t.Error("Expected session ended on win")
	}
	if g.FinalScore() != 115 {
		t.Errorf("Expected final score 115, got %d", g.FinalScore())
	}

	if g.Update(none) != ModeWin {
		t.Error("Expected win screen to wait for enter")
	}
	if g.Update(enter) != ModeTitle {
		t.Fatal("Expected title after win")
	}
	if g.Update(enter) != ModePlaying {
		t.Error("Expected a new session from title")
	}
}

// TestQuitRequestFromAnyMode verifies the window/interrupt quit is honored everywhere
func TestQuitRequestFromAnyMode(t *testing.T) {
	setups := map[string]func(g *Game){
		"title":   func(g *Game) {},
		"playing": func(g *Game) { g.Update(enter) },
		"paused":  func(g *Game) { g.Update(enter); g.Update(escape) },
		"help":    func(g *Game) { g.Update(help) },
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			g, _ := newTestGame()
			setup(g)
			if g.Update(input.Snapshot{QuitRequest: true}) != ModeQuit {
				t.Errorf("Expected quit from %s", name)
			}
			if g.Update(enter) != ModeQuit {
				t.Error("Expected quit to be terminal")
			}
		})
	}
}

// TestPauseVolumeKeys verifies arrows adjust and clamp the volume
func TestPauseVolumeKeys(t *testing.T) {
	g, p := startPlaying(t)
	g.Update(escape)

	g.Update(input.Snapshot{Right: true})
	if v := g.Settings().Volume; math.Abs(v-0.51) > 1e-9 {
		t.Errorf("Expected volume 0.51, got %v", v)
	}
	if len(p.volumes) != 1 {
		t.Errorf("Expected 1 SetVolume call, got %d", len(p.volumes))
	}

	for i := 0; i < 100; i++ {
		g.Update(input.Snapshot{Right: true})
	}
	if v := g.Settings().Volume; v != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", v)
	}

	calls := len(p.volumes)
	g.Update(input.Snapshot{Right: true})
	if len(p.volumes) != calls {
		t.Error("Expected no SetVolume call when volume is unchanged")
	}

	for i := 0; i < 150; i++ {
		g.Update(input.Snapshot{Left: true})
	}
	if v := g.Settings().Volume; v != 0 {
		t.Errorf("Expected volume clamped to 0, got %v", v)
	}
}

// TestPauseVolumeSlider verifies clicks on the slider set the volume by position
func TestPauseVolumeSlider(t *testing.T) {
	g, p := startPlaying(t)
	g.Update(escape)

	tests := []struct {
		name     string
		pointer  input.Pointer
		expected float64
	}{
		{"quarter", input.Pointer{X: 200, Y: 360, Down: true}, 0.25},
		{"right end", input.Pointer{X: 350, Y: 355, Down: true}, 1},
		{"left end", input.Pointer{X: 150, Y: 370, Down: true}, 0},
		{"released", input.Pointer{X: 300, Y: 360, Down: false}, 0},
		{"outside", input.Pointer{X: 300, Y: 100, Down: true}, 0},
	}

	for _, tt := range tests {
		g.Update(input.Snapshot{Pointer: tt.pointer})
		if v := g.Settings().Volume; math.Abs(v-tt.expected) > 1e-9 {
			t.Errorf("%s: expected volume %v, got %v", tt.name, tt.expected, v)
		}
	}
	if last := p.volumes[len(p.volumes)-1]; last != 0 {
		t.Errorf("Expected last SetVolume(0), got %v", last)
	}
}

// TestVolumeSurvivesSessions verifies settings are process-wide
func TestVolumeSurvivesSessions(t *testing.T) {
	g, _ := startPlaying(t)
	g.Update(escape)
	g.Update(input.Snapshot{Pointer: input.Pointer{X: 200, Y: 360, Down: true}})
	g.Update(restart)

	if v := g.Settings().Volume; v != 0.25 {
		t.Errorf("Expected volume 0.25 after restart, got %v", v)
	}
}

// TestVolumeIgnoredWhilePlaying verifies arrows only move the player during play
func TestVolumeIgnoredWhilePlaying(t *testing.T) {
	g, p := startPlaying(t)
	g.Update(input.Snapshot{Right: true})

	if g.Settings().Volume != constants.DefaultVolume || len(p.volumes) != 0 {
		t.Error("Expected volume unchanged during play")
	}
	if g.Session().Player.X != 230 {
		t.Errorf("Expected player moved to 230, got %v", g.Session().Player.X)
	}
}

// TestView verifies the drawable values for a running session
func TestView(t *testing.T) {
	g, _ := startPlaying(t)
	s := g.Session()
	s.Score = 23
	s.Obstacles = []Obstacle{NewObstacle(40)}

	g.Update(input.Snapshot{Up: true})
	v := g.View(59.5)

	if v.Mode != ModePlaying {
		t.Errorf("Expected playing view, got %v", v.Mode)
	}
	if v.Score != 23 || v.Progress != 20 {
		t.Errorf("Expected score 23 and progress 20, got %d and %d", v.Score, v.Progress)
	}
	if v.FPS != 59.5 {
		t.Errorf("Expected fps 59.5, got %v", v.FPS)
	}
	if math.Abs(v.BoostFraction-1.0/60) > 1e-9 {
		t.Errorf("Expected boost fraction 1/60, got %v", v.BoostFraction)
	}
	if !v.BoostFlash {
		t.Error("Expected boost flash right after boost")
	}
	if len(v.Obstacles) != 1 || v.Obstacles[0].X != 40 {
		t.Errorf("Expected one obstacle at x=40, got %+v", v.Obstacles)
	}
	if v.Player != s.Player.Rect {
		t.Errorf("Expected player rect %+v, got %+v", s.Player.Rect, v.Player)
	}

	// The view owns its obstacle slice
	v.Obstacles[0].X = 999
	if s.Obstacles[0].X != 40 {
		t.Error("Expected view to copy obstacles")
	}
}

// TestViewBoostFlashWindow verifies the flash lasts BoostFlashFrames frames
func TestViewBoostFlashWindow(t *testing.T) {
	g, _ := startPlaying(t)
	g.Update(input.Snapshot{Up: true})

	flashing := 0
	for g.View(60).BoostFlash {
		g.Update(none)
		flashing++
	}
	// Cooldown 59 down to 51
	if flashing != constants.BoostFlashFrames-1 {
		t.Errorf("Expected %d flashing frames, got %d", constants.BoostFlashFrames-1, flashing)
	}
}

// TestViewAfterSession verifies the final score is shown once the session ends
func TestViewAfterSession(t *testing.T) {
	g, _ := startPlaying(t)
	g.Session().Score = 30
	hit := NewObstacle(225)
	hit.Y = 497
	g.Session().Obstacles = []Obstacle{hit}
	g.Update(none)

	v := g.View(60)
	if v.Mode != ModeGameOver || v.FinalScore != 30 || v.Score != 30 {
		t.Errorf("Expected game over view with score 30, got %+v", v)
	}
	if v.BoostFraction != 1 {
		t.Errorf("Expected full boost meter outside play, got %v", v.BoostFraction)
	}
}

func TestModeString(t *testing.T) {
	if ModeGameOver.String() != "game over" {
		t.Errorf("Expected 'game over', got %q", ModeGameOver.String())
	}
	if Mode(200).String() != "unknown" {
		t.Errorf("Expected 'unknown', got %q", Mode(200).String())
	}
	if !ModePaused.IsOverlay() || ModePlaying.IsOverlay() {
		t.Error("Unexpected overlay classification")
	}
}
