package main

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ucm-visualizer/internal/kinematics"
	"github.com/iburimskiy/ucm-visualizer/internal/scene"
)

type cell struct {
	r     rune
	style tcell.Style
}

type grid map[[2]int]cell

func (g grid) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	g[[2]int{x, y}] = cell{r: primary, style: style}
}

func TestBlitPairsRows(t *testing.T) {
	r := scene.NewRaster(3, 4)
	r.Clear(color.RGBA{A: 255})
	r.Img.SetRGBA(1, 2, color.RGBA{R: 255, A: 255})
	r.Img.SetRGBA(1, 3, color.RGBA{B: 255, A: 255})

	g := grid{}
	blit(g, r, 2)

	require.Len(t, g, 6)
	c, ok := g[[2]int{1, 3}]
	require.True(t, ok)
	assert.Equal(t, halfBlock, c.r)

	fg, bg, _ := c.style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)
}

func TestBlitRenderedFrame(t *testing.T) {
	r := scene.NewRaster(80, 40)
	scene.Render(r, kinematics.Resolve(kinematics.Inputs{}), 0, scene.Options{ShowAccel: true})

	g := grid{}
	blit(g, r, 0)
	assert.Len(t, g, 80*20)

	_, bg, _ := g[[2]int{0, 0}].style.Decompose()
	assert.Equal(t, toColor(scene.Background), bg)
}
