//go:build tinygo && (badger2040 || badger2040_w)

package hal

import (
	"image/color"
	"machine"
	"time"

	"inkstatus/display"

	"tinygo.org/x/drivers/uc8151"
)

// warmUp gives the USB console and the panel supply time to settle.
const warmUp = 500 * time.Millisecond

type badgerHAL struct {
	logger *usbLogger
	disp   *inkDisplay
	serial *usbSerial
}

// New brings up the Badger2040: 3V3 rail, UC8151 over SPI0, USB CDC console.
func New() HAL {
	time.Sleep(warmUp)

	rail := machine.ENABLE_3V3
	rail.Configure(machine.PinConfig{Mode: machine.PinOutput})
	rail.High()

	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 12000000,
		SCK:       machine.EPD_SCK_PIN,
		SDO:       machine.EPD_SDO_PIN,
	})

	dev := uc8151.New(machine.SPI0, machine.EPD_CS_PIN, machine.EPD_DC_PIN, machine.EPD_RESET_PIN, machine.EPD_BUSY_PIN)
	dev.Configure(uc8151.Config{
		Speed:       uc8151.MEDIUM,
		FlickerFree: true,
		Rotation:    uc8151.ROTATION_270,
	})

	return &badgerHAL{
		logger: &usbLogger{port: machine.Serial},
		disp:   &inkDisplay{dev: &dev},
		serial: &usbSerial{port: machine.Serial},
	}
}

func (h *badgerHAL) Logger() Logger   { return h.logger }
func (h *badgerHAL) Display() Display { return h.disp }
func (h *badgerHAL) Serial() Serial   { return h.serial }

// inkDisplay thresholds grey pens to the panel's single bit. The UC8151
// driver treats any non-zero colour as ink.
type inkDisplay struct {
	dev *uc8151.Device
}

var (
	inkOn  = color.RGBA{R: 1, G: 1, B: 1, A: 255}
	inkOff = color.RGBA{A: 255}
)

func (d *inkDisplay) Size() (x, y int16) { return d.dev.Size() }

func (d *inkDisplay) SetPixel(x, y int16, c color.RGBA) {
	if display.IsInk(c) {
		d.dev.SetPixel(x, y, inkOn)
		return
	}
	d.dev.SetPixel(x, y, inkOff)
}

func (d *inkDisplay) Display() error {
	if err := d.dev.Display(); err != nil {
		return err
	}
	d.dev.WaitUntilIdle()
	return nil
}

type usbLogger struct {
	port machine.Serialer
}

func (l *usbLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.port.WriteByte(s[i])
	}
	l.port.WriteByte('\r')
	l.port.WriteByte('\n')
}

func (l *usbLogger) WriteLineBytes(b []byte) {
	l.port.Write(b)
	l.port.WriteByte('\r')
	l.port.WriteByte('\n')
}

// usbSerial blocks in Read until the host has sent something.
type usbSerial struct {
	port machine.Serialer
}

const serialPoll = 10 * time.Millisecond

func (s *usbSerial) Read(p []byte) (int, error) {
	if s.port == nil {
		return 0, ErrNotImplemented
	}
	if len(p) == 0 {
		return 0, nil
	}
	for s.port.Buffered() == 0 {
		time.Sleep(serialPoll)
	}
	n := 0
	for n < len(p) && s.port.Buffered() > 0 {
		b, err := s.port.ReadByte()
		if err != nil {
			break
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (s *usbSerial) Write(p []byte) (int, error) {
	if s.port == nil {
		return 0, ErrNotImplemented
	}
	return s.port.Write(p)
}
