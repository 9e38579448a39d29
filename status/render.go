package status

import (
	"inkstatus/display"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Surface is the set of drawing primitives Render needs.
//
// Text and Rectangle only touch the drawing buffer; Update pushes the buffer
// to the panel and is the slow part.
type Surface interface {
	SetPen(p display.Pen)
	SetFont(f tinyfont.Fonter)
	Clear()
	Text(s string, x, y int16, scale float32)
	Rectangle(x, y, w, h int16)
	Update() error
}

// Point is a top-left text origin.
type Point struct {
	X, Y int16
}

// Layout places the screen elements.
type Layout struct {
	Title      string
	TitleAt    Point
	TitleScale float32
	TitleFont  tinyfont.Fonter

	LocationAt    Point
	LocationScale float32
	LocationFont  tinyfont.Fonter

	// Footer band, filled with ink.
	BandX, BandY, BandW, BandH int16

	SummaryAt    Point
	SummaryScale float32
	SummaryFont  tinyfont.Fonter
}

// DefaultLayout is sized for the 296x128 Badger2040 panel in landscape.
func DefaultLayout() Layout {
	return Layout{
		Title:      "Paul is:",
		TitleAt:    Point{X: 10, Y: 0},
		TitleScale: 3,
		TitleFont:  &proggy.TinySZ8pt7b,

		LocationAt:    Point{X: 10, Y: 50},
		LocationScale: 2,
		LocationFont:  &proggy.TinySZ8pt7b,

		BandX: 0, BandY: 110, BandW: 296, BandH: 28,

		SummaryAt:    Point{X: 10, Y: 116},
		SummaryScale: 1,
		SummaryFont:  &tinyfont.Picopixel,
	}
}

// Render draws st and refreshes the panel.
func Render(s Surface, l Layout, st State) error {
	s.SetPen(display.PenPaper)
	s.Clear()
	s.SetPen(display.PenInk)

	s.SetFont(l.TitleFont)
	s.Text(l.Title, l.TitleAt.X, l.TitleAt.Y, l.TitleScale)

	s.SetFont(l.LocationFont)
	s.Text(st.Location, l.LocationAt.X, l.LocationAt.Y, l.LocationScale)

	s.Rectangle(l.BandX, l.BandY, l.BandW, l.BandH)
	s.SetPen(display.PenPaper)

	s.SetFont(l.SummaryFont)
	s.Text(st.Summary(), l.SummaryAt.X, l.SummaryAt.Y, l.SummaryScale)

	return s.Update()
}

// Renderer binds a Surface to a Layout.
type Renderer struct {
	Surface Surface
	Layout  Layout
}

func NewRenderer(s Surface) *Renderer {
	return &Renderer{Surface: s, Layout: DefaultLayout()}
}

func (r *Renderer) Render(st State) error {
	return Render(r.Surface, r.Layout, st)
}
