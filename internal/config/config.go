// Package config loads the host runner settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaudRate    = 115200
	DefaultWindowScale = 3
	maxWindowScale     = 8
)

var ErrNoSerialPort = errors.New("config: baud_rate set without a serial port")

// Config is the host runner configuration. Zero values mean "use default".
type Config struct {
	Serial   SerialConfig   `yaml:"serial"`
	Window   WindowConfig   `yaml:"window"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Log      LogConfig      `yaml:"log"`
}

// SerialConfig selects the command source. An empty Port reads stdin.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

type WindowConfig struct {
	Enabled bool `yaml:"enabled"`
	Scale   int  `yaml:"scale"`
}

// SnapshotConfig writes a PNG of every refresh to Path.
type SnapshotConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Quiet bool `yaml:"quiet"`
}

// Default returns the configuration used without a file.
func Default() Config {
	return Config{
		Serial: SerialConfig{BaudRate: DefaultBaudRate},
		Window: WindowConfig{Scale: DefaultWindowScale},
	}
}

// Load reads a YAML file. Missing keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize fills zero values with defaults.
func (c *Config) Normalize() {
	if c.Serial.BaudRate == 0 && c.Serial.Port != "" {
		c.Serial.BaudRate = DefaultBaudRate
	}
	if c.Window.Scale == 0 {
		c.Window.Scale = DefaultWindowScale
	}
}

// Validate checks ranges. It does not touch the filesystem.
func (c Config) Validate() error {
	if c.Serial.BaudRate < 0 {
		return fmt.Errorf("config: serial.baud_rate %d must be positive", c.Serial.BaudRate)
	}
	if c.Serial.Port == "" && c.Serial.BaudRate != 0 && c.Serial.BaudRate != DefaultBaudRate {
		return ErrNoSerialPort
	}
	if c.Window.Scale < 1 || c.Window.Scale > maxWindowScale {
		return fmt.Errorf("config: window.scale %d out of range 1..%d", c.Window.Scale, maxWindowScale)
	}
	return nil
}
