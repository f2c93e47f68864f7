package larreco

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Canvas is an opaque RGB pixel grid addressed by (row, col), row 0 being
// the top of the image.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas returns a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

func (c *Canvas) Width() int  { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// At returns the colour of the pixel at (row, col).
func (c *Canvas) At(row, col int) color.RGBA {
	return c.img.RGBAAt(col, row)
}

// FillBlock paints the square of side 2*window+1 centred on (row, col).
// The square is clipped to the canvas; cells outside it are dropped. The
// clipped rectangle, in (x=col, y=row) image coordinates, is returned and
// is empty when the block lies entirely off the canvas.
func (c *Canvas) FillBlock(row, col, window int, rgb color.RGBA) image.Rectangle {
	block := image.Rect(col-window, row-window, col+window+1, row+window+1)
	block = block.Intersect(c.img.Bounds())
	if block.Empty() {
		return block
	}

	rgb.A = 255
	draw.Draw(c.img, block, image.NewUniform(rgb), image.Point{}, draw.Src)
	return block
}

// Image exposes the canvas as an image.
func (c *Canvas) Image() image.Image { return c.img }

// EncodePNG writes the canvas as an 8-bit RGB PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}
