//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"
	"inkstatus/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow shows the presented frames of h in a desktop window while run
// executes on another goroutine. The window stays open after run returns nil
// and closes with run's error otherwise. It blocks until the window closes.
func RunWindow(h HAL, scale int, run func() error) error {
	hh, ok := h.(*hostHAL)
	if !ok {
		return errors.New("window mode needs the host HAL")
	}
	if scale <= 0 {
		scale = 1
	}

	done := make(chan error, 1)
	go func() { done <- run() }()

	g := &hostGame{h: hh, done: done}
	ebiten.SetWindowTitle("inkstatus (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(hh.fb.width*scale, hh.fb.height*scale)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	done    <-chan error
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.done:
		if err != nil {
			return err
		}
	default:
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.front))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)
	rgbaFrom565(g.img.Pix, g.scratch)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
