//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goburrow/serial"
)

// portPollInterval bounds how long a Read waits before it notices Close.
const portPollInterval = 200 * time.Millisecond

var errClosed = errors.New("serial: closed")

type hostSerial struct {
	mu sync.Mutex
	r  io.Reader
	w  io.Writer
}

func (s *hostSerial) Read(p []byte) (int, error) {
	if s.r == nil {
		return 0, ErrNotImplemented
	}
	return s.r.Read(p)
}

func (s *hostSerial) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotImplemented
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// portSerial is a tty opened through goburrow/serial. Reads block until data
// arrives or the port is closed.
type portSerial struct {
	port   serial.Port
	closed atomic.Bool
}

func openSerialPort(address string, baud int) (*portSerial, error) {
	if baud <= 0 {
		baud = 115200
	}
	port, err := serial.Open(&serial.Config{
		Address:  address,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  portPollInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial %q: %w", address, err)
	}
	return &portSerial{port: port}, nil
}

func (s *portSerial) Read(p []byte) (int, error) {
	for {
		if s.closed.Load() {
			return 0, io.EOF
		}
		n, err := s.port.Read(p)
		if errors.Is(err, serial.ErrTimeout) && n == 0 {
			continue
		}
		if err != nil && s.closed.Load() {
			return n, io.EOF
		}
		return n, err
	}
}

func (s *portSerial) Write(p []byte) (int, error) {
	if s.closed.Load() {
		return 0, errClosed
	}
	return s.port.Write(p)
}

func (s *portSerial) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.port.Close()
}
