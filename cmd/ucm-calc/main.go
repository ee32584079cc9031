// Command ucm-calc resolves a circular motion quantity set without a window
// and optionally renders a single frame to PNG.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/ucm-visualizer/internal/config"
	"github.com/iburimskiy/ucm-visualizer/internal/kinematics"
	"github.com/iburimskiy/ucm-visualizer/internal/logging"
	"github.com/iburimskiy/ucm-visualizer/internal/scene"
	"github.com/iburimskiy/ucm-visualizer/internal/sim"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
)

func main() {
	pngPath := flag.String("png", "", "render one frame to this PNG file")
	size := flag.Int("size", 480, "PNG width and height in pixels")
	phase := flag.Float64("phase", 0, "particle phase in radians for -png")

	cfg, err := config.FromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	log := logging.NewFromEnv(os.Stderr)

	s := sim.New(cfg)
	s.Phase = *phase
	frame := s.Tick(0)

	fmt.Println(renderTable(s.Inputs.Focus, frame))

	if *pngPath != "" {
		if err := writeFrame(*pngPath, *size, frame); err != nil {
			log.Error("render failed", logging.String("path", *pngPath), logging.Err(err))
			os.Exit(1)
		}
		log.Info("frame written", logging.String("path", *pngPath), logging.Int("size", *size))
	}
}

// renderTable lays out the readout, highlighting the authoritative field.
func renderTable(focus kinematics.Focus, f sim.Frame) string {
	rows := []struct {
		label string
		value string
		field kinematics.Focus
	}{
		{"Radius", kinematics.Format(f.State.R, "m"), -1},
		{"Period (T)", f.Readout.Period, kinematics.FocusT},
		{"Frequency (f)", f.Readout.Frequency, kinematics.FocusF},
		{"Angular velocity (w)", f.Readout.AngularVelocity, kinematics.FocusW},
		{"Centripetal accel.", f.Readout.Acceleration, -1},
		{"Tangential speed", f.Readout.Speed, -1},
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Uniform circular motion"))
	b.WriteString("\n")
	for _, r := range rows {
		value := valueStyle.Render(r.value)
		if focus != kinematics.FocusNone && r.field == focus {
			value = focusStyle.Render(r.value + " *")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r.label), value))
		b.WriteString("\n")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func writeFrame(path string, size int, f sim.Frame) error {
	if size <= 0 {
		return fmt.Errorf("invalid size %d", size)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := renderPNG(file, size, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func renderPNG(w io.Writer, size int, f sim.Frame) error {
	r := scene.NewRaster(size, size)
	// A single frame has no earlier pixels to fade.
	opts := f.Options
	opts.ShowTrail = false
	scene.Render(r, f.State, f.Phase, opts)
	return r.WritePNG(w)
}
