package scene

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// Raster is a software Surface over an *image.RGBA, drawn with gg's
// anti-aliased rasterizer.
type Raster struct {
	Img *image.RGBA
	dc  *gg.Context
}

func NewRaster(w, h int) *Raster {
	return RasterFrom(image.NewRGBA(image.Rect(0, 0, w, h)))
}

// RasterFrom draws onto img in place.
func RasterFrom(img *image.RGBA) *Raster {
	return &Raster{Img: img, dc: gg.NewContextForRGBA(img)}
}

// Resize reallocates the backing image when the size changed; prior pixels
// are dropped.
func (r *Raster) Resize(w, h int) {
	if b := r.Img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	*r = *NewRaster(w, h)
}

func (r *Raster) Size() (int, int) {
	b := r.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Clear(c color.Color) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

func (r *Raster) Fill(c color.Color) {
	w, h := r.Size()
	r.dc.DrawRectangle(0, 0, float64(w), float64(h))
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) StrokeLine(a, b Point, width float64, c color.Color) {
	r.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	r.stroke(width, c)
}

func (r *Raster) StrokeCircle(center Point, radius, width float64, c color.Color) {
	if radius <= 0 {
		return
	}
	r.dc.DrawCircle(center.X, center.Y, radius)
	r.stroke(width, c)
}

func (r *Raster) FillCircle(center Point, radius float64, c color.Color) {
	if radius <= 0 {
		return
	}
	r.dc.DrawCircle(center.X, center.Y, radius)
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) FillTriangle(a, b, c Point, clr color.Color) {
	r.dc.MoveTo(a.X, a.Y)
	r.dc.LineTo(b.X, b.Y)
	r.dc.LineTo(c.X, c.Y)
	r.dc.ClosePath()
	r.dc.SetColor(clr)
	r.dc.Fill()
}

// WritePNG encodes the current pixels.
func (r *Raster) WritePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

func (r *Raster) stroke(width float64, c color.Color) {
	r.dc.SetLineWidth(width)
	r.dc.SetColor(c)
	r.dc.Stroke()
}
