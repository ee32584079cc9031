// Command ucm-term runs the circular motion visualizer in a terminal,
// drawing two raster pixels per cell with upper half blocks.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/ucm-visualizer/internal/config"
	"github.com/iburimskiy/ucm-visualizer/internal/cue"
	"github.com/iburimskiy/ucm-visualizer/internal/hud"
	"github.com/iburimskiy/ucm-visualizer/internal/kinematics"
	"github.com/iburimskiy/ucm-visualizer/internal/logging"
	"github.com/iburimskiy/ucm-visualizer/internal/scene"
	"github.com/iburimskiy/ucm-visualizer/internal/sim"
)

const (
	headerRows = 2
	footerRows = 1
)

type app struct {
	screen  tcell.Screen
	session *sim.Session
	raster  *scene.Raster
	audio   *cue.Player
	log     logging.Logger

	width, height int
	frame         sim.Frame
	lastTick      time.Time

	// prompt is non-nil while a field value is being typed.
	prompt *fieldPrompt
}

type fieldPrompt struct {
	field kinematics.Focus
	text  []rune
}

func main() {
	cfg, err := config.FromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// The terminal owns stdout and stderr while running.
	log := logging.Noop()
	if path := os.Getenv("UCM_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = logging.NewFromEnv(f).With(logging.String("binding", "term"))
	}

	if err := run(cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	a := &app{
		screen:  screen,
		session: sim.New(cfg),
		raster:  scene.NewRaster(1, 1),
		log:     log,
	}
	a.resize()

	if p, err := cue.New(cfg.Mute); err != nil {
		log.Warn("audio unavailable", logging.Err(err))
	} else {
		a.audio = p
	}

	ticker := time.NewTicker(config.FrameIntervalMs * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			a.tick(now)
			a.draw()
		}
	}
}

func (a *app) resize() {
	a.width, a.height = a.screen.Size()
	rows := max(a.height-headerRows-footerRows, 1)
	a.raster.Resize(max(a.width, 1), rows*2)
	a.screen.Clear()
}

func (a *app) tick(now time.Time) {
	var dt time.Duration
	if !a.lastTick.IsZero() {
		dt = now.Sub(a.lastTick)
	}
	a.lastTick = now

	a.frame = a.session.Tick(dt)
	if a.frame.Turns > 0 {
		a.audio.Click()
		a.log.Debug("revolution", logging.Int("turns", a.frame.Turns))
	}
	scene.Render(a.raster, a.frame.State, a.frame.Phase, a.frame.Options)
}

// handleEvent returns false when the program should exit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if a.prompt != nil {
			a.handlePromptKey(ev)
			return true
		}
		return a.handleKey(ev)
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	s := a.session
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		s.Recompute()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case ' ':
		s.TogglePlay()
	case 'r', 'R':
		s.ResetPhase()
	case 'c', 'C':
		s.Clear()
	case 't', 'T':
		s.ToggleTrail()
	case 'a', 'A':
		s.ToggleAccel()
	case '+', '=':
		s.StepSpeed(1)
	case '-', '_':
		s.StepSpeed(-1)
	case 'm', 'M':
		a.audio.ToggleMute()
	case '1', '2', '3', '4':
		field := kinematics.Focus(ev.Rune() - '1')
		a.prompt = &fieldPrompt{field: field, text: []rune(s.Inputs.Field(field))}
	}
	return true
}

func (a *app) handlePromptKey(ev *tcell.EventKey) {
	p := a.prompt
	switch ev.Key() {
	case tcell.KeyEscape:
		a.prompt = nil
	case tcell.KeyEnter:
		a.session.SetField(p.field, string(p.text))
		a.log.Debug("field edited", logging.String("field", p.field.String()), logging.String("value", string(p.text)))
		a.prompt = nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.text) > 0 {
			p.text = p.text[:len(p.text)-1]
		}
	case tcell.KeyRune:
		p.text = append(p.text, ev.Rune())
	}
}

func (a *app) draw() {
	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(toColor(scene.Background))
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray).Background(toColor(scene.Background))

	a.drawText(0, 0, hud.Readout(a.frame), textStyle)
	a.drawText(0, 1, hud.Status(a.frame, a.session.Inputs.Focus, a.audio.Muted()), dimStyle)

	blit(a.screen, a.raster, headerRows)

	footer := termHelp
	if a.prompt != nil {
		name, unit := hud.FieldLabel(a.prompt.field)
		footer = fmt.Sprintf("%s (%s): %s_", name, unit, string(a.prompt.text))
	}
	a.drawText(0, a.height-1, footer, dimStyle)

	a.screen.Show()
}

// drawText writes s on row y and pads the rest of the row with blanks.
func (a *app) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= a.width {
			return
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < a.width; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
}

const termHelp = "Space play  r reset  Enter calc  c clear  1-4 edit r/T/f/w  t trail  a arrow  +/- speed  m mute  q quit"
