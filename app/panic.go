package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"inkstatus/display"
	"inkstatus/hal"

	"tinygo.org/x/tinyfont"
)

const panicMargin = 4

// showPanic logs v and leaves it on the panel. It never returns.
func showPanic(h hal.HAL, v any) {
	drawPanic(h, v)
	select {}
}

func drawPanic(h hal.HAL, v any) {
	msg := fmt.Sprintf("panic: %v", v)
	if l := h.Logger(); l != nil {
		l.WriteLineString("inkstatus " + msg)
	}

	disp := h.Display()
	if disp == nil {
		return
	}

	c := display.NewCanvas(disp)
	font := &tinyfont.Picopixel
	c.SetPen(display.PenPaper)
	c.Clear()
	c.SetPen(display.PenInk)
	c.SetFont(font)

	w, ht := c.Size()
	charW := display.TextWidth(font, "0", 1)
	lineH := int16(font.GetYAdvance())
	if charW <= 0 || lineH <= 0 {
		_ = c.Update()
		return
	}
	cols := (w - 2*panicMargin) / charW
	if cols <= 0 {
		cols = 1
	}

	y := int16(panicMargin)
	for _, line := range []string{"inkstatus halted", msg} {
		for len(line) > 0 {
			if y+lineH > ht {
				_ = c.Update()
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.Text(chunk, panicMargin, y, 1)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = c.Update()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
