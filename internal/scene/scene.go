// Package scene draws one frame of the circular motion view onto a Surface.
package scene

import (
	"image/color"
	"math"

	"github.com/iburimskiy/ucm-visualizer/internal/kinematics"
)

// Geometry, in pixels unless noted.
const (
	// Fraction of min(W, H) covered by the orbit's radius.
	FillRatio = 0.42

	ParticleRadius = 8
	LineWidth      = 2
	AxisWidth      = 1
	DashOn         = 6
	DashOff        = 6

	ArrowMin        = 20
	ArrowMaxRatio   = 0.25
	ArrowHeadBack   = 10
	ArrowHeadSpread = 5
)

// Palette.
var (
	Background    = color.RGBA{R: 15, G: 18, B: 35, A: 255}
	TrailOverlay  = premul(15, 18, 35, 0.12)
	AxisColor     = premul(255, 255, 255, 0.08)
	OrbitColor    = premul(94, 234, 212, 0.9)
	RadiusColor   = premul(167, 139, 250, 0.9)
	ArrowColor    = premul(255, 255, 255, 0.9)
	ParticleColor = premul(255, 255, 255, 0.95)
)

func premul(r, g, b uint8, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(r)*a + 0.5),
		G: uint8(float64(g)*a + 0.5),
		B: uint8(float64(b)*a + 0.5),
		A: uint8(255*a + 0.5),
	}
}

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Surface is a 2D raster that keeps its pixels between frames.
type Surface interface {
	Size() (w, h int)
	// Clear replaces every pixel with c.
	Clear(c color.Color)
	// Fill composites c over every pixel.
	Fill(c color.Color)
	StrokeLine(a, b Point, width float64, c color.Color)
	StrokeCircle(center Point, r, width float64, c color.Color)
	FillCircle(center Point, r float64, c color.Color)
	FillTriangle(a, b, c Point, clr color.Color)
}

// Options toggles the optional overlays.
type Options struct {
	ShowTrail bool
	ShowAccel bool
}

// Layout is the pure geometry of one frame.
type Layout struct {
	Width, Height int
	Origin        Point
	Scale         float64
	OrbitRadius   float64
	Particle      Point
	ArrowLen      float64
}

// NewLayout places the orbit at the surface centre scaled to FillRatio.
// A non-positive radius collapses the orbit onto the origin.
func NewLayout(w, h int, st kinematics.State, phase float64) Layout {
	l := Layout{
		Width:  w,
		Height: h,
		Origin: Point{X: float64(w) / 2, Y: float64(h) / 2},
	}
	if st.R > 0 {
		l.Scale = FillRatio * minDim(w, h) / st.R
	}
	l.OrbitRadius = st.R * l.Scale
	l.Particle = Point{
		X: l.Origin.X + math.Cos(phase)*l.OrbitRadius,
		Y: l.Origin.Y + math.Sin(phase)*l.OrbitRadius,
	}
	l.ArrowLen = ArrowLength(st.Ac, w, h)
	return l
}

// ArrowLength maps ac onto a log-compressed arrow length bounded to
// [ArrowMin, ArrowMaxRatio·min(W,H)].
func ArrowLength(ac float64, w, h int) float64 {
	l := 10 + 30*math.Log10(1+ac)
	return clamp(l, ArrowMin, ArrowMaxRatio*minDim(w, h))
}

// Arrow returns the tip and the two arrowhead base corners of an arrow of
// length from `from` toward center.
func Arrow(from, center Point, length float64) (tip, left, right Point) {
	ax, ay := center.X-from.X, center.Y-from.Y
	n := math.Hypot(ax, ay)
	if n == 0 {
		n = 1
	}
	ux, uy := ax/n, ay/n

	tip = Point{X: from.X + ux*length, Y: from.Y + uy*length}
	left = Point{
		X: tip.X - ux*ArrowHeadBack - uy*ArrowHeadSpread,
		Y: tip.Y - uy*ArrowHeadBack + ux*ArrowHeadSpread,
	}
	right = Point{
		X: tip.X - ux*ArrowHeadBack + uy*ArrowHeadSpread,
		Y: tip.Y - uy*ArrowHeadBack - ux*ArrowHeadSpread,
	}
	return tip, left, right
}

// Render draws axes, orbit, radius, the optional acceleration arrow and the
// particle, in that order.
func Render(s Surface, st kinematics.State, phase float64, opts Options) {
	w, h := s.Size()
	l := NewLayout(w, h, st, phase)

	if opts.ShowTrail {
		s.Fill(TrailOverlay)
	} else {
		s.Clear(Background)
	}

	// axes
	dashed(s, Point{X: 0, Y: l.Origin.Y}, Point{X: float64(w), Y: l.Origin.Y}, AxisWidth, AxisColor)
	dashed(s, Point{X: l.Origin.X, Y: 0}, Point{X: l.Origin.X, Y: float64(h)}, AxisWidth, AxisColor)

	s.StrokeCircle(l.Origin, l.OrbitRadius, LineWidth, OrbitColor)
	s.StrokeLine(l.Origin, l.Particle, LineWidth, RadiusColor)

	if opts.ShowAccel {
		tip, left, right := Arrow(l.Particle, l.Origin, l.ArrowLen)
		s.StrokeLine(l.Particle, tip, LineWidth, ArrowColor)
		s.FillTriangle(tip, left, right, ArrowColor)
	}

	s.FillCircle(l.Particle, ParticleRadius, ParticleColor)
}

// dashed strokes a DashOn/DashOff pattern from a to b.
func dashed(s Surface, a, b Point, width float64, c color.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	total := math.Hypot(dx, dy)
	if total == 0 {
		return
	}
	ux, uy := dx/total, dy/total
	for d := 0.0; d < total; d += DashOn + DashOff {
		end := math.Min(d+DashOn, total)
		s.StrokeLine(
			Point{X: a.X + ux*d, Y: a.Y + uy*d},
			Point{X: a.X + ux*end, Y: a.Y + uy*end},
			width, c,
		)
	}
}

func minDim(w, h int) float64 {
	return float64(min(w, h))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
