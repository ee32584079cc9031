package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ucm-visualizer/internal/scene"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenSurface draws scene primitives onto an offscreen ebiten image that
// keeps its pixels between frames.
type ebitenSurface struct {
	img *ebiten.Image
}

func (s *ebitenSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ebitenSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s *ebitenSurface) Fill(c color.Color) {
	w, h := s.Size()
	vector.DrawFilledRect(s.img, 0, 0, float32(w), float32(h), c, false)
}

func (s *ebitenSurface) StrokeLine(a, b scene.Point, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), c, true)
}

func (s *ebitenSurface) StrokeCircle(center scene.Point, r, width float64, c color.Color) {
	vector.StrokeCircle(s.img, float32(center.X), float32(center.Y), float32(r), float32(width), c, true)
}

func (s *ebitenSurface) FillCircle(center scene.Point, r float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(center.X), float32(center.Y), float32(r), c, true)
}

func (s *ebitenSurface) FillTriangle(a, b, c scene.Point, clr color.Color) {
	var path vector.Path
	path.MoveTo(float32(a.X), float32(a.Y))
	path.LineTo(float32(b.X), float32(b.Y))
	path.LineTo(float32(c.X), float32(c.Y))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, bl, al := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(al) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	s.img.DrawTriangles(vs, is, whiteSubImage, op)
}
