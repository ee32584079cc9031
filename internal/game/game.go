package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/ucm-visualizer/internal/config"
	"github.com/iburimskiy/ucm-visualizer/internal/cue"
	"github.com/iburimskiy/ucm-visualizer/internal/hud"
	"github.com/iburimskiy/ucm-visualizer/internal/kinematics"
	"github.com/iburimskiy/ucm-visualizer/internal/logging"
	"github.com/iburimskiy/ucm-visualizer/internal/scene"
	"github.com/iburimskiy/ucm-visualizer/internal/sim"
)

// Game is the desktop binding: it owns the session and drives it from
// ebiten's update loop.
type Game struct {
	session *sim.Session
	audio   *cue.Player
	log     logging.Logger

	// canvas is never cleared by the binding so the trail overlay can
	// accumulate over earlier frames.
	canvas  *ebiten.Image
	surface *ebitenSurface
	frame   sim.Frame

	lastTick time.Time

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func New(cfg config.Config, log logging.Logger) *Game {
	canvas := ebiten.NewImage(config.WindowWidth, config.WindowHeight)
	g := &Game{
		session: sim.New(cfg),
		log:     log,
		canvas:  canvas,
		surface: &ebitenSurface{img: canvas},
		prevKey: map[ebiten.Key]bool{},
	}

	audio, err := cue.New(cfg.Mute)
	if err != nil {
		// Non-fatal, the visualizer runs silent
		log.Warn("audio unavailable", logging.Err(err))
	} else {
		g.audio = audio
	}
	return g
}

func (g *Game) Update() error {
	justPressed := func(keys ...ebiten.Key) bool {
		hit := false
		for _, k := range keys {
			pressed := ebiten.IsKeyPressed(k)
			if pressed && !g.prevKey[k] {
				hit = true
			}
			g.prevKey[k] = pressed
		}
		return hit
	}

	if justPressed(ebiten.KeyEscape, ebiten.KeyQ) {
		return ebiten.Termination
	}

	s := g.session
	if justPressed(ebiten.KeySpace) {
		s.TogglePlay()
		g.log.Debug("play toggled", logging.String("state", playState(s.Playing)))
	}
	if justPressed(ebiten.KeyR) {
		s.ResetPhase()
	}
	if justPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter) {
		s.Recompute()
	}
	if justPressed(ebiten.KeyC) {
		s.Clear()
	}
	if justPressed(ebiten.KeyT) {
		s.ToggleTrail()
	}
	if justPressed(ebiten.KeyA) {
		s.ToggleAccel()
	}
	if justPressed(ebiten.KeyEqual, ebiten.KeyNumpadAdd) {
		s.StepSpeed(1)
	}
	if justPressed(ebiten.KeyMinus, ebiten.KeyNumpadSubtract) {
		s.StepSpeed(-1)
	}
	if justPressed(ebiten.KeyM) {
		g.audio.ToggleMute()
	}

	fields := []struct {
		key   ebiten.Key
		focus kinematics.Focus
	}{
		{ebiten.KeyDigit1, kinematics.FocusNone},
		{ebiten.KeyDigit2, kinematics.FocusT},
		{ebiten.KeyDigit3, kinematics.FocusF},
		{ebiten.KeyDigit4, kinematics.FocusW},
	}
	for _, f := range fields {
		if justPressed(f.key) {
			g.setErr(g.editFieldDialog(f.focus))
		}
	}
	if justPressed(ebiten.KeyP) {
		g.setErr(g.saveSnapshotDialog())
	}

	// dt also spans any time spent inside a blocking dialog.
	now := time.Now()
	var dt time.Duration
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick)
	}
	g.lastTick = now

	g.frame = s.Tick(dt)
	if g.frame.Turns > 0 {
		g.audio.Click()
	}
	scene.Render(g.surface, g.frame.State, g.frame.Phase, g.frame.Options)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)

	ebitenutil.DebugPrintAt(screen, hud.Readout(g.frame), 12, 12)
	status := hud.Status(g.frame, g.session.Inputs.Focus, g.audio.Muted())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 28)
	ebitenutil.DebugPrintAt(screen, hud.KeyHelp, 12, config.WindowHeight-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) setErr(err error) {
	if err == nil {
		return
	}
	g.lastErr = err
	g.log.Error("action failed", logging.Err(err))
}

func playState(playing bool) string {
	if playing {
		return "playing"
	}
	return "paused"
}
