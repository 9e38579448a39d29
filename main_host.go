//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"inkstatus/app"
	"inkstatus/hal"
	"inkstatus/internal/config"
)

func main() {
	var (
		cfgPath  string
		port     string
		baud     int
		window   bool
		scale    int
		snapshot string
		quiet    bool
	)
	flag.StringVar(&cfgPath, "config", "", "YAML config file.")
	flag.StringVar(&port, "serial", "", "Serial device to read commands from (default: stdin).")
	flag.IntVar(&baud, "baud", 0, "Serial baud rate.")
	flag.BoolVar(&window, "window", false, "Show the panel in a window.")
	flag.IntVar(&scale, "window-scale", 0, "Window magnification.")
	flag.StringVar(&snapshot, "snapshot", "", "Write a PNG of every refresh to this path.")
	flag.BoolVar(&quiet, "quiet", false, "Do not log renders.")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "serial":
			cfg.Serial.Port = port
		case "baud":
			cfg.Serial.BaudRate = baud
		case "window":
			cfg.Window.Enabled = window
		case "window-scale":
			cfg.Window.Scale = scale
		case "snapshot":
			cfg.Snapshot.Path = snapshot
		case "quiet":
			cfg.Log.Quiet = quiet
		}
	})
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	h, err := hal.New(hal.HostConfig{
		SerialPort: cfg.Serial.Port,
		BaudRate:   cfg.Serial.BaudRate,
		Snapshot:   cfg.Snapshot.Path,
		Quiet:      cfg.Log.Quiet,
	})
	if err != nil {
		fatal(err)
	}
	defer hal.Close(h)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
		_ = hal.Close(h)
	}()

	sys := app.New(h)
	run := func() error { return sys.Run(ctx) }

	if cfg.Window.Enabled {
		err = hal.RunWindow(h, cfg.Window.Scale, run)
	} else {
		err = run()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
