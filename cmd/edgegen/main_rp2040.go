//go:build rp2040

// Command edgegen is bench firmware for an RP2040 that drives falling-edge
// bursts into the target's interrupt input, reports each burst as an edge
// feed line on UART1 and shows the LED level the target should reach on an
// I2C expander.
package main

import (
	"machine"
	"time"

	"github.com/jangala-dev/tinygo-uartx/uartx"
	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"eru-extint-go/drivers/led"
	"eru-extint-go/x/logx"
)

const (
	pulsePin = machine.GPIO15

	uartTX   = machine.GPIO4
	uartRX   = machine.GPIO5
	uartBaud = 115200

	i2cSDA       = machine.GPIO8
	i2cSCL       = machine.GPIO9
	expanderAddr = 0x20
	expanderBit  = 0

	burstGap = 2 * time.Second
)

func main() {
	time.Sleep(1500 * time.Millisecond)
	logx.Info("edgegen: boot")

	u := uartx.UART1
	if err := u.Configure(uartx.UARTConfig{BaudRate: uartBaud, TX: uartTX, RX: uartRX}); err != nil {
		logx.Warn("edgegen: uart1:", err)
	}

	if err := machine.I2C0.Configure(machine.I2CConfig{SDA: i2cSDA, SCL: i2cSCL, Frequency: 100_000}); err != nil {
		logx.Warn("edgegen: i2c0:", err)
	}
	expect := led.NewExpander(machine.I2C0, expanderAddr, expanderBit)
	if err := expect.Configure(false); err != nil {
		logx.Warn("edgegen: expander:", err)
	}

	pg, err := newPulser(rp2pio.PIO0, 0, pulsePin)
	if err != nil {
		logx.Warn("edgegen: pio:", err)
		for {
			time.Sleep(time.Hour)
		}
	}

	var (
		g   generator
		buf [16]byte
	)
	for {
		n := g.next()
		pg.emit(n)
		if _, err := u.Write(appendLine(buf[:0], n)); err != nil {
			logx.Warn("edgegen: uart1 write:", err)
		}
		if err := expect.Set(g.expectedLED()); err != nil {
			logx.Warn("edgegen: expander:", err)
		}
		time.Sleep(burstGap)
	}
}
