// Package display draws text and filled shapes with a pen on any
// drivers.Displayer. The underlying device's Display call is the physical
// refresh and only happens in Canvas.Update.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// filler is implemented by devices with a faster rectangle path than
// per-pixel writes.
type filler interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Canvas keeps the current pen and font for a device.
type Canvas struct {
	dev  drivers.Displayer
	pen  Pen
	font tinyfont.Fonter
}

func NewCanvas(dev drivers.Displayer) *Canvas {
	return &Canvas{dev: dev, pen: PenInk, font: &proggy.TinySZ8pt7b}
}

func (c *Canvas) Size() (w, h int16) {
	if c.dev == nil {
		return 0, 0
	}
	return c.dev.Size()
}

func (c *Canvas) Pen() Pen { return c.pen }

func (c *Canvas) SetPen(p Pen) { c.pen = p & 0x0f }

// SetFont selects the font for Text. A nil font is ignored.
func (c *Canvas) SetFont(f tinyfont.Fonter) {
	if f == nil {
		return
	}
	c.font = f
}

// Clear fills the whole surface with the current pen.
func (c *Canvas) Clear() {
	w, h := c.Size()
	c.Rectangle(0, 0, w, h)
}

// Rectangle fills a rectangle with the current pen, clipped to the surface.
func (c *Canvas) Rectangle(x, y, w, h int16) {
	c.fill(int(x), int(y), int(w), int(h), c.pen.Color())
}

// Text draws s with its top-left corner at (x, y). The font is magnified by
// scale; scales below 1 shrink it by dropping pixels.
func (c *Canvas) Text(s string, x, y int16, scale float32) {
	if c.dev == nil || c.font == nil || s == "" || scale <= 0 {
		return
	}
	sd := &scaledDisplayer{c: c, x0: int(x), y0: int(y), scale: scale}
	tinyfont.WriteLine(sd, c.font, 0, Ascent(c.font), s, c.pen.Color())
}

// Update pushes the drawing to the panel.
func (c *Canvas) Update() error {
	if c.dev == nil {
		return nil
	}
	return c.dev.Display()
}

func (c *Canvas) fill(x, y, w, h int, col color.RGBA) {
	if c.dev == nil || w <= 0 || h <= 0 {
		return
	}
	sw, sh := c.dev.Size()
	x0 := clampInt(x, 0, int(sw))
	y0 := clampInt(y, 0, int(sh))
	x1 := clampInt(x+w, 0, int(sw))
	y1 := clampInt(y+h, 0, int(sh))
	if x0 >= x1 || y0 >= y1 {
		return
	}
	if f, ok := c.dev.(filler); ok {
		_ = f.FillRectangle(int16(x0), int16(y0), int16(x1-x0), int16(y1-y0), col)
		return
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.dev.SetPixel(int16(px), int16(py), col)
		}
	}
}

// Ascent is the distance from the top of a line to its baseline.
func Ascent(f tinyfont.Fonter) int16 {
	if f == nil {
		return 0
	}
	if g := f.GetGlyph('A'); g != nil {
		if off := g.Info().YOffset; off < 0 {
			return int16(-off)
		}
	}
	return int16(f.GetYAdvance())
}

// TextWidth is the advance width of s at the given scale.
func TextWidth(f tinyfont.Fonter, s string, scale float32) int16 {
	if f == nil || scale <= 0 {
		return 0
	}
	_, outbox := tinyfont.LineWidth(f, s)
	return int16(float32(outbox) * scale)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
