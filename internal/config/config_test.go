package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inkstatus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "", cfg.Serial.Port)
	require.Equal(t, DefaultWindowScale, cfg.Window.Scale)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
serial:
  port: /dev/ttyACM0
  baud_rate: 9600
window:
  enabled: true
snapshot:
  path: /tmp/badge.png
log:
  quiet: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	require.Equal(t, 9600, cfg.Serial.BaudRate)
	require.True(t, cfg.Window.Enabled)
	require.Equal(t, DefaultWindowScale, cfg.Window.Scale)
	require.Equal(t, "/tmp/badge.png", cfg.Snapshot.Path)
	require.True(t, cfg.Log.Quiet)
}

func TestLoadZeroBaudGetsDefault(t *testing.T) {
	cfg, err := Load(writeFile(t, "serial:\n  port: /dev/ttyUSB0\n  baud_rate: 0\n"))
	require.NoError(t, err)
	require.Equal(t, DefaultBaudRate, cfg.Serial.BaudRate)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "window: [1, 2"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Window.Scale = 9
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Serial.BaudRate = -1
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Serial.BaudRate = 9600
	require.ErrorIs(t, cfg.Validate(), ErrNoSerialPort)
}
