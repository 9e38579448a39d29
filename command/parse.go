// Package command reads LOC and TH lines from a serial stream and keeps the
// status screen in step with them.
package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"inkstatus/status"
)

const (
	PrefixLocation = "LOC "
	PrefixReading  = "TH "

	// MaxTokenRunes bounds the temperature and humidity tokens.
	MaxTokenRunes = 2
)

var (
	ErrBadLocation = errors.New("command: location must be a single line")
	ErrBadToken    = errors.New("command: reading token must be 1-2 non-space characters")
)

// Kind identifies a recognized command.
type Kind uint8

const (
	KindNone Kind = iota
	KindLocation
	KindReading
)

func (k Kind) String() string {
	switch k {
	case KindLocation:
		return "LOC"
	case KindReading:
		return "TH"
	default:
		return "none"
	}
}

// Command is one parsed line.
type Command struct {
	Kind        Kind
	Location    string
	Temperature string
	Humidity    string
}

// Parse classifies a line with its terminator already removed. Prefixes are
// matched literally; nothing is trimmed. ok is false for lines that should be
// ignored, including TH lines whose first two tokens are missing or longer
// than MaxTokenRunes.
func Parse(line string) (cmd Command, ok bool) {
	if rest, found := strings.CutPrefix(line, PrefixLocation); found {
		return Command{Kind: KindLocation, Location: rest}, true
	}
	if rest, found := strings.CutPrefix(line, PrefixReading); found {
		fields := strings.Fields(rest)
		if len(fields) < 2 || !validToken(fields[0]) || !validToken(fields[1]) {
			return Command{}, false
		}
		return Command{Kind: KindReading, Temperature: fields[0], Humidity: fields[1]}, true
	}
	return Command{}, false
}

// Apply writes the fields the command carries into st.
func (c Command) Apply(st *status.State) {
	switch c.Kind {
	case KindLocation:
		st.Location = c.Location
	case KindReading:
		st.Temperature = c.Temperature
		st.Humidity = c.Humidity
	}
}

// FormatLocation builds a LOC line, newline included.
func FormatLocation(loc string) (string, error) {
	if strings.ContainsAny(loc, "\r\n") {
		return "", ErrBadLocation
	}
	return PrefixLocation + loc + "\n", nil
}

// FormatReading builds a TH line, newline included.
func FormatReading(temperature, humidity string) (string, error) {
	for _, tok := range []string{temperature, humidity} {
		if !validToken(tok) || strings.ContainsFunc(tok, unicode.IsSpace) {
			return "", fmt.Errorf("%w: %q", ErrBadToken, tok)
		}
	}
	return PrefixReading + temperature + " " + humidity + "\n", nil
}

func validToken(tok string) bool {
	n := utf8.RuneCountInString(tok)
	return n > 0 && n <= MaxTokenRunes
}
