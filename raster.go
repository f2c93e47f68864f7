package larreco

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
)

const (
	DefaultWidth        = 1080
	DefaultHeight       = 1920
	DefaultHitWindow    = 1
	DefaultVertexWindow = 3
)

var (
	HitColor    = color.RGBA{B: 255, A: 255}
	VertexColor = color.RGBA{R: 255, A: 255}
)

// AxisRange is the closed interval of one physical axis mapped onto the
// full pixel extent of the matching image dimension.
type AxisRange struct {
	Min, Max float64
}

func (a *AxisRange) include(v float64) {
	a.Min = math.Min(a.Min, v)
	a.Max = math.Max(a.Max, v)
}

// Pixel maps v onto [0, size-1]: Min to 0 and Max to size-1.
func (a AxisRange) Pixel(v float64, size int) int {
	return int(math.Round(float64(size-1) * (v - a.Min) / (a.Max - a.Min)))
}

// Rasterizer renders events as images. Hits use the x and wire coordinates,
// the vertex uses x and z.
type Rasterizer struct {
	Width        int
	Height       int
	HitWindow    int
	VertexWindow int
	HitColor     color.RGBA
	VertexColor  color.RGBA
}

// NewRasterizer returns a Rasterizer with the default 1080x1920 geometry,
// 3x3 blue hits and a 7x7 red vertex.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		HitWindow:    DefaultHitWindow,
		VertexWindow: DefaultVertexWindow,
		HitColor:     HitColor,
		VertexColor:  VertexColor,
	}
}

// Ranges returns the x and wire ranges of the event, extended to contain the
// vertex.
func (r *Rasterizer) Ranges(event Event) (x, w AxisRange, err error) {
	x = AxisRange{Min: event.TrueVertex.X, Max: event.TrueVertex.X}
	w = AxisRange{Min: event.TrueVertex.Z, Max: event.TrueVertex.Z}
	for _, hit := range event.Hits {
		x.include(hit.X)
		w.include(hit.Wire)
	}

	if err := checkFinite("x", event.TrueVertex.X, event.Hits, func(h Hit) float64 { return h.X }); err != nil {
		return x, w, err
	}
	if err := checkFinite("wire", event.TrueVertex.Z, event.Hits, func(h Hit) float64 { return h.Wire }); err != nil {
		return x, w, err
	}
	if x.Max == x.Min {
		return x, w, &DegenerateRangeError{Axis: "x", Value: x.Min}
	}
	if w.Max == w.Min {
		return x, w, &DegenerateRangeError{Axis: "wire", Value: w.Min}
	}
	return x, w, nil
}

func checkFinite(axis string, vertex float64, hits []Hit, coord func(Hit) float64) error {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	if !finite(vertex) {
		return &NonFiniteError{Axis: axis, Value: vertex}
	}
	for _, hit := range hits {
		if v := coord(hit); !finite(v) {
			return &NonFiniteError{Axis: axis, Value: v}
		}
	}
	return nil
}

// pixel maps a physical position to (row, col); rows grow downwards so the
// wire axis is inverted.
func (r *Rasterizer) pixel(x, w AxisRange, px, pw float64) (row, col int) {
	col = x.Pixel(px, r.Width)
	row = (r.Height - 1) - w.Pixel(pw, r.Height)
	return row, col
}

// Render paints the hits and then the vertex of event on a new canvas.
func (r *Rasterizer) Render(event Event) (*Canvas, error) {
	xRange, wRange, err := r.Ranges(event)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", event.ID, err)
	}

	canvas := NewCanvas(r.Width, r.Height)
	for _, hit := range event.Hits {
		row, col := r.pixel(xRange, wRange, hit.X, hit.Wire)
		canvas.FillBlock(row, col, r.HitWindow, r.HitColor)
	}

	row, col := r.pixel(xRange, wRange, event.TrueVertex.X, event.TrueVertex.Z)
	canvas.FillBlock(row, col, r.VertexWindow, r.VertexColor)

	return canvas, nil
}

// WriteImage renders event into dir under ImageFilename, replacing any file
// of the same name, and returns the path written.
func (r *Rasterizer) WriteImage(event Event, interactionType, dir string) (string, error) {
	canvas, err := r.Render(event)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, ImageFilename(interactionType, event.ID))
	f, err := os.Create(path)
	if err != nil {
		return "", &FileError{Op: "creating", Path: path, Err: err}
	}

	err = canvas.EncodePNG(f)
	if err != nil {
		f.Close()
		return "", &FileError{Op: "encoding", Path: path, Err: err}
	}

	err = f.Close()
	if err != nil {
		return "", &FileError{Op: "closing", Path: path, Err: err}
	}
	return path, nil
}

// ImageFilename is the output name of an event image.
func ImageFilename(interactionType string, id int) string {
	return fmt.Sprintf("%s_event_%d.png", interactionType, id)
}
