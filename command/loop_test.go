package command

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"inkstatus/status"
)

type recorder struct {
	frames []status.State
	err    error
}

func (r *recorder) Render(st status.State) error {
	r.frames = append(r.frames, st)
	return r.err
}

func runLines(t *testing.T, input string) (*Loop, *recorder) {
	t.Helper()
	st := status.Default()
	rec := &recorder{}
	l := New(strings.NewReader(input), &st, rec)
	require.NoError(t, l.Run(context.Background()))
	return l, rec
}

func TestStartupRendersDefaultsOnce(t *testing.T) {
	l, rec := runLines(t, "")
	require.Len(t, rec.frames, 1)
	require.Equal(t, status.State{Location: "Somewhere on Earth", Temperature: "??", Humidity: "??"}, rec.frames[0])
	require.Equal(t, uint64(1), l.Renders())
}

func TestScenario(t *testing.T) {
	l, rec := runLines(t, "LOC Office\nTH 21 55\nTH 21 55\nLOC Office\n")
	require.Len(t, rec.frames, 3)
	require.Equal(t, status.State{Location: "Office", Temperature: "??", Humidity: "??"}, rec.frames[1])
	want := status.State{Location: "Office", Temperature: "21", Humidity: "55"}
	require.Equal(t, want, rec.frames[2])
	require.Equal(t, want, l.State())
}

func TestIdempotentCommands(t *testing.T) {
	for _, line := range []string{"LOC Paris", "TH 19 40"} {
		st := status.Default()
		rec := &recorder{}
		l := New(nil, &st, rec)

		changed, err := l.Step(line)
		require.NoError(t, err)
		require.True(t, changed, line)

		changed, err = l.Step(line)
		require.NoError(t, err)
		require.False(t, changed, line)
		require.Len(t, rec.frames, 1, line)
	}
}

func TestPrefixExactness(t *testing.T) {
	st := status.Default()
	rec := &recorder{}
	l := New(nil, &st, rec)

	changed, err := l.Step("LOCATION x")
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, status.Default(), l.State())

	changed, err = l.Step("LOC ")
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "", l.State().Location)
	require.Len(t, rec.frames, 1)
}

func TestFieldIsolation(t *testing.T) {
	st := status.State{Location: "Home", Temperature: "20", Humidity: "50"}
	rec := &recorder{}
	l := New(nil, &st, rec)

	changed, err := l.Step("LOC Paris")
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, status.State{Location: "Paris", Temperature: "20", Humidity: "50"}, l.State())
	require.Len(t, rec.frames, 1)
}

func TestAnyFieldChangeRedraws(t *testing.T) {
	st := status.State{Location: "Home", Temperature: "20", Humidity: "50"}
	rec := &recorder{}
	l := New(nil, &st, rec)

	changed, err := l.Step("TH 21 50")
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "21", l.State().Temperature)
	require.Equal(t, "50", l.State().Humidity)

	changed, err = l.Step("TH 21 51")
	require.NoError(t, err)
	require.True(t, changed)
	require.Len(t, rec.frames, 2)
}

func TestMalformedReadingLeavesStateAlone(t *testing.T) {
	st := status.State{Location: "Home", Temperature: "20", Humidity: "50"}
	rec := &recorder{}
	l := New(nil, &st, rec)

	for _, line := range []string{"TH 21", "TH ", "TH 123 4", "TH 1 234"} {
		changed, err := l.Step(line)
		require.NoError(t, err)
		require.False(t, changed, line)
	}
	require.Equal(t, status.State{Location: "Home", Temperature: "20", Humidity: "50"}, l.State())
	require.Empty(t, rec.frames)
}

func TestStepReturnsRenderError(t *testing.T) {
	st := status.Default()
	boom := errors.New("panel busy")
	l := New(nil, &st, &recorder{err: boom})

	changed, err := l.Step("LOC Lab")
	require.True(t, changed)
	require.ErrorIs(t, err, boom)
	require.Equal(t, "Lab", l.State().Location)
}

func TestRunKeepsGoingAfterRenderError(t *testing.T) {
	st := status.Default()
	rec := &recorder{err: errors.New("panel busy")}
	l := New(strings.NewReader("LOC A\nLOC B\n"), &st, rec)

	require.NoError(t, l.Run(context.Background()))
	require.Len(t, rec.frames, 3)
	require.Equal(t, "B", l.State().Location)
}

func TestRunHandlesCRLFAndUnterminatedTail(t *testing.T) {
	l, rec := runLines(t, "LOC Office\r\nTH 21 55")
	require.Len(t, rec.frames, 3)
	require.Equal(t, status.State{Location: "Office", Temperature: "21", Humidity: "55"}, l.State())
}

func TestRunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := status.Default()
	rec := &recorder{}
	l := New(strings.NewReader("LOC Office\n"), &st, rec)

	require.ErrorIs(t, l.Run(ctx), context.Canceled)
	require.Len(t, rec.frames, 1)
	require.Equal(t, status.Default(), l.State())
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestRunReturnsReadError(t *testing.T) {
	st := status.Default()
	boom := errors.New("uart gone")
	l := New(failingReader{err: boom}, &st, nil)

	err := l.Run(context.Background())
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, io.EOF)
	require.Equal(t, uint64(1), l.Renders())
}

func TestRendererFunc(t *testing.T) {
	var got status.State
	st := status.Default()
	l := New(nil, &st, RendererFunc(func(s status.State) error {
		got = s
		return nil
	}))
	_, err := l.Step("TH 1 2")
	require.NoError(t, err)
	require.Equal(t, "1", got.Temperature)
}
