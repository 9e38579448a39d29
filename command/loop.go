package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"inkstatus/status"
)

// Renderer redraws the screen from a full state.
type Renderer interface {
	Render(st status.State) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(st status.State) error

func (f RendererFunc) Render(st status.State) error { return f(st) }

// Loop owns the committed state. It is not safe for concurrent use.
type Loop struct {
	lines   *LineReader
	state   *status.State
	r       Renderer
	renders uint64
}

// New returns a loop reading commands from src. st is mutated in place.
func New(src io.Reader, st *status.State, r Renderer) *Loop {
	return &Loop{lines: NewLineReader(src), state: st, r: r}
}

// State returns a copy of the committed state.
func (l *Loop) State() status.State { return *l.state }

// Renders counts redraws, the startup one included.
func (l *Loop) Renders() uint64 { return l.renders }

// Step applies one line. The screen is redrawn only when a field changed;
// the returned error is the renderer's.
func (l *Loop) Step(line string) (changed bool, err error) {
	prev := *l.state
	if cmd, ok := Parse(line); ok {
		cmd.Apply(l.state)
	}
	if *l.state == prev {
		return false, nil
	}
	return true, l.render()
}

// Run draws the current state once and then processes lines until the input
// ends or ctx is cancelled. Cancellation is seen between lines only. Render
// errors do not stop the loop.
func (l *Loop) Run(ctx context.Context) error {
	_ = l.render()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok, err := l.lines.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("command: read line: %w", err)
		}
		if !ok {
			continue
		}
		_, _ = l.Step(line)
	}
}

func (l *Loop) render() error {
	l.renders++
	if l.r == nil {
		return nil
	}
	return l.r.Render(*l.state)
}
