//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Badger2040 panel in landscape.
const (
	DefaultWidth  = 296
	DefaultHeight = 128
)

// HostConfig selects where the host build reads commands and what it does
// with presented frames.
type HostConfig struct {
	Width  int
	Height int

	// SerialPort is a device path such as /dev/ttyACM0. Empty reads stdin.
	SerialPort string
	BaudRate   int

	// Snapshot, when set, receives a PNG of every presented frame.
	Snapshot string

	Quiet bool
}

type hostHAL struct {
	logger *hostLogger
	fb     *memFramebuffer
	disp   *FramebufferDisplay
	serial Serial
	closer io.Closer
}

// New returns a host HAL implementation.
func New(cfg HostConfig) (HAL, error) {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}

	var w io.Writer = os.Stdout
	if cfg.Quiet {
		w = io.Discard
	}
	logger := &hostLogger{w: w}

	fb := newMemFramebuffer(cfg.Width, cfg.Height)
	if cfg.Snapshot != "" {
		path := cfg.Snapshot
		fb.onPresent = func(img []byte) error {
			return writeSnapshot(path, cfg.Width, cfg.Height, img)
		}
	}

	h := &hostHAL{
		logger: logger,
		fb:     fb,
		disp:   NewFramebufferDisplay(fb),
	}

	if cfg.SerialPort == "" {
		h.serial = &hostSerial{r: os.Stdin, w: os.Stdout}
		return h, nil
	}
	port, err := openSerialPort(cfg.SerialPort, cfg.BaudRate)
	if err != nil {
		return nil, err
	}
	h.serial = port
	h.closer = port
	return h, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Serial() Serial   { return h.serial }

// Presents counts frames pushed to the host panel.
func (h *hostHAL) Presents() uint64 { return h.fb.presentCount() }

// Close releases the serial port, if one was opened. A blocked Read returns.
func (h *hostHAL) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer.Close()
}

// Close closes h if it holds host resources.
func Close(h HAL) error {
	if c, ok := h.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
