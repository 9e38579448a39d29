//go:build !tinygo

// Command inksend writes LOC and TH lines to a badge over a serial port, or
// to stdout when no port is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"inkstatus/command"
	"inkstatus/internal/config"

	"github.com/goburrow/serial"
)

var errNothingToSend = errors.New("inksend: nothing to send (use -loc and/or -temp/-hum)")

type options struct {
	port     string
	baud     int
	location string
	setLoc   bool
	temp     string
	hum      string
}

func main() {
	var opt options
	flag.StringVar(&opt.port, "port", "", "Serial device of the badge (default: stdout).")
	flag.IntVar(&opt.baud, "baud", config.DefaultBaudRate, "Serial baud rate.")
	flag.StringVar(&opt.location, "loc", "", "Location text.")
	flag.StringVar(&opt.temp, "temp", "", "Temperature token (1-2 characters).")
	flag.StringVar(&opt.hum, "hum", "", "Humidity token (1-2 characters).")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "loc" {
			opt.setLoc = true
		}
	})

	lines, err := buildLines(opt)
	if err != nil {
		fatal(err)
	}

	var w io.Writer = os.Stdout
	if opt.port != "" {
		port, err := serial.Open(&serial.Config{
			Address:  opt.port,
			BaudRate: opt.baud,
			DataBits: 8,
			StopBits: 1,
			Parity:   "N",
		})
		if err != nil {
			fatal(fmt.Errorf("inksend: open %q: %w", opt.port, err))
		}
		defer port.Close()
		w = port
	}

	if err := send(w, lines); err != nil {
		fatal(err)
	}
}

// buildLines formats the requested commands, location first.
func buildLines(opt options) ([]string, error) {
	var lines []string
	if opt.setLoc {
		line, err := command.FormatLocation(opt.location)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if opt.temp != "" || opt.hum != "" {
		line, err := command.FormatReading(opt.temp, opt.hum)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, errNothingToSend
	}
	return lines, nil
}

func send(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("inksend: write: %w", err)
		}
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
