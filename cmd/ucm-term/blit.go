package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/ucm-visualizer/internal/scene"
)

// halfBlock shows the foreground in the top half of a cell and the
// background in the bottom half.
const halfBlock = '▀'

// cellSetter is the subset of tcell.Screen that blit writes to.
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// blit copies raster rows 2y and 2y+1 into terminal row y+top.
func blit(dst cellSetter, r *scene.Raster, top int) {
	w, h := r.Size()
	for y := 0; y+1 < h; y += 2 {
		for x := 0; x < w; x++ {
			style := tcell.StyleDefault.
				Foreground(toColor(r.Img.RGBAAt(x, y))).
				Background(toColor(r.Img.RGBAAt(x, y+1)))
			dst.SetContent(x, top+y/2, halfBlock, nil, style)
		}
	}
}

// toColor flattens c onto black and converts it to a true-colour tcell colour.
func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
