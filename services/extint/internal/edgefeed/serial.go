package edgefeed

import (
	"io"
	"time"

	"github.com/tarm/serial"

	"eru-extint-go/errcode"
)

// SerialConfig names the host side of the bench generator's UART.
type SerialConfig struct {
	Device      string
	Baud        int
	ReadTimeout int // milliseconds; 0 blocks
}

// OpenSerial opens the port carrying a live feed.
func OpenSerial(cfg SerialConfig) (io.ReadCloser, error) {
	const op = "edgefeed.open_serial"
	if cfg.Device == "" {
		return nil, errcode.New(op, errcode.InvalidFeed, "no serial device")
	}
	if cfg.Baud == 0 {
		cfg.Baud = 115200
	}
	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, errcode.Wrap(op, errcode.FeedIO, err)
	}
	return p, nil
}
