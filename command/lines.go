package command

import (
	"bufio"
	"errors"
	"io"
)

// MaxLineBytes bounds one command line, terminator included. Longer lines are
// dropped whole.
const MaxLineBytes = 256

// LineReader splits a byte stream into lines.
type LineReader struct {
	r *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReaderSize(r, MaxLineBytes)}
}

// ReadLine blocks until a full line is available and returns it without its
// "\n" or "\r\n" terminator. ok is false when the line exceeded MaxLineBytes
// and was discarded. A final unterminated line is returned before io.EOF.
func (lr *LineReader) ReadLine() (line string, ok bool, err error) {
	b, err := lr.r.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = lr.r.ReadSlice('\n')
		}
		return "", false, err
	}
	if err != nil {
		if errors.Is(err, io.EOF) && len(b) > 0 {
			return string(trimEOL(b)), true, nil
		}
		return "", false, err
	}
	return string(trimEOL(b)), true, nil
}

func trimEOL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}
	if n := len(b); n > 0 && b[n-1] == '\r' {
		b = b[:n-1]
	}
	return b
}
