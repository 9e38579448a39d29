//go:build tinygo && !baremetal

package hal

import (
	"os"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *memFramebuffer
	disp   *FramebufferDisplay
	serial Serial
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` on linux where there is no panel; commands
// come from stdin and frames stay in memory.
func New() HAL {
	fb := newMemFramebuffer(296, 128)
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		fb:     fb,
		disp:   NewFramebufferDisplay(fb),
		serial: &stdioSerial{},
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return h.disp }
func (h *tinyGoHostHAL) Serial() Serial   { return h.serial }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type stdioSerial struct{}

func (s *stdioSerial) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (s *stdioSerial) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
