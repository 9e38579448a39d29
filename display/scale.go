package display

import (
	"image/color"
	"math"
)

// scaledDisplayer maps font pixels onto scale x scale blocks of the canvas,
// offset by (x0, y0).
type scaledDisplayer struct {
	c      *Canvas
	x0, y0 int
	scale  float32
}

func (d *scaledDisplayer) Size() (x, y int16) {
	w, h := d.c.Size()
	return int16(float32(w) / d.scale), int16(float32(h) / d.scale)
}

func (d *scaledDisplayer) SetPixel(x, y int16, c color.RGBA) {
	x0, x1 := d.span(int(x))
	y0, y1 := d.span(int(y))
	d.c.fill(d.x0+x0, d.y0+y0, x1-x0, y1-y0, c)
}

func (d *scaledDisplayer) Display() error { return nil }

// span returns the half-open range of device pixels covered by font pixel v.
// Below scale 1 neighbouring font pixels share a device pixel.
func (d *scaledDisplayer) span(v int) (lo, hi int) {
	s := float64(d.scale)
	lo = int(math.Floor(float64(v) * s))
	hi = int(math.Floor(float64(v+1) * s))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
