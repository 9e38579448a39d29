package app

import (
	"context"
	"fmt"

	"inkstatus/command"
	"inkstatus/display"
	"inkstatus/hal"
	"inkstatus/internal/buildinfo"
	"inkstatus/status"
)

// System is the status firmware wired to a HAL.
type System struct {
	h     hal.HAL
	log   hal.Logger
	state status.State
	r     *status.Renderer
	loop  *command.Loop
}

// New wires the command loop to the HAL's serial stream and panel.
func New(h hal.HAL) *System {
	s := &System{
		h:     h,
		log:   h.Logger(),
		state: status.Default(),
		r:     status.NewRenderer(display.NewCanvas(h.Display())),
	}
	s.loop = command.New(h.Serial(), &s.state, command.RendererFunc(s.render))
	return s
}

// Run draws the defaults and then follows commands until the input ends or
// ctx is cancelled.
func (s *System) Run(ctx context.Context) error {
	w, ht := s.h.Display().Size()
	s.logf("inkstatus %s: panel %dx%d", buildinfo.Long(), w, ht)
	err := s.loop.Run(ctx)
	s.logf("inkstatus: stopped after %d renders", s.loop.Renders())
	return err
}

// State returns the committed state.
func (s *System) State() status.State { return s.loop.State() }

// Renders counts redraws, the startup one included.
func (s *System) Renders() uint64 { return s.loop.Renders() }

func (s *System) render(st status.State) error {
	err := s.r.Render(st)
	n := s.loop.Renders()
	if err != nil {
		s.logf("render %d: %v", n, err)
		return err
	}
	s.logf("render %d: %q | %s", n, st.Location, st.Summary())
	return nil
}

func (s *System) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Run starts the firmware and blocks forever (TinyGo/native entrypoint).
// A panic is logged and drawn on the panel before halting.
func Run(h hal.HAL) {
	defer func() {
		if v := recover(); v != nil {
			showPanic(h, v)
		}
	}()

	if err := New(h).Run(context.Background()); err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("inkstatus: " + err.Error())
		}
	}
	select {}
}
