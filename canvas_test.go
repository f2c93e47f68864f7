package larreco

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func countColor(c *Canvas, rgb color.RGBA) int {
	n := 0
	for row := 0; row < c.Height(); row++ {
		for col := 0; col < c.Width(); col++ {
			if c.At(row, col) == rgb {
				n++
			}
		}
	}
	return n
}

func TestNewCanvasIsBlack(t *testing.T) {
	c := NewCanvas(4, 3)
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, 3, c.Height())
	assert.Equal(t, 12, countColor(c, color.RGBA{A: 255}))
}

func TestFillBlockClipping(t *testing.T) {
	for _, tc := range []struct {
		name     string
		row, col int
		window   int
		want     image.Rectangle
	}{
		{name: "inside", row: 5, col: 5, window: 1, want: image.Rect(4, 4, 7, 7)},
		{name: "top left", row: 0, col: 0, window: 1, want: image.Rect(0, 0, 2, 2)},
		{name: "bottom right", row: 9, col: 9, window: 3, want: image.Rect(6, 6, 10, 10)},
		{name: "single cell", row: 2, col: 7, window: 0, want: image.Rect(7, 2, 8, 3)},
		{name: "partly above", row: -2, col: 5, window: 3, want: image.Rect(2, 0, 9, 2)},
		{name: "off canvas", row: 20, col: 20, window: 3, want: image.Rectangle{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(10, 10)
			got := c.FillBlock(tc.row, tc.col, tc.window, VertexColor)
			if tc.want.Empty() {
				assert.True(t, got.Empty())
			} else {
				assert.Equal(t, tc.want, got)
			}
			assert.True(t, got.In(image.Rect(0, 0, 10, 10)))
			assert.Equal(t, tc.want.Dx()*tc.want.Dy(), countColor(c, VertexColor))
		})
	}
}

func TestFillBlockLastWriteWins(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillBlock(5, 5, 1, HitColor)
	c.FillBlock(5, 6, 1, VertexColor)

	assert.Equal(t, HitColor, c.At(5, 4))
	assert.Equal(t, VertexColor, c.At(5, 5))
	assert.Equal(t, VertexColor, c.At(5, 7))
	assert.Equal(t, 3, countColor(c, HitColor))
}

func TestFillBlockOpaque(t *testing.T) {
	c := NewCanvas(3, 3)
	c.FillBlock(1, 1, 0, color.RGBA{R: 10, G: 20, B: 30})
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, c.At(1, 1))
}
