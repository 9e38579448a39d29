package display

import "image/color"

// Pen is one of 16 grey levels, 0 is full ink and 15 is bare paper.
type Pen uint8

const (
	PenInk   Pen = 0
	PenPaper Pen = 15
)

// Color expands the pen to an opaque grey.
func (p Pen) Color() color.RGBA {
	v := uint8(p&0x0f) * 17
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// IsInk reports whether a colour lands on the dark half of the grey ramp.
// Panels with a single bit per pixel use this as their threshold.
func IsInk(c color.RGBA) bool {
	luma := (299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000
	return luma < 0x80
}
