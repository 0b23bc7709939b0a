package led

import (
	"tinygo.org/x/drivers"

	"eru-extint-go/errcode"
)

// PCA9554-compatible register map.
const (
	ExpanderAddress = 0x20

	regInput  = 0x00
	regOutput = 0x01
	regConfig = 0x03 // 1 = input
)

// Expander drives one bit of an I2C output port. Each change is a bus
// transfer, so it belongs in foreground code, not in an interrupt handler.
type Expander struct {
	bus  drivers.I2C
	addr uint16
	mask uint8

	out uint8 // shadow of the output register
	w   [2]byte
	r   [1]byte
	err error
}

func NewExpander(bus drivers.I2C, addr uint16, bit uint8) *Expander {
	if addr == 0 {
		addr = ExpanderAddress
	}
	return &Expander{bus: bus, addr: addr, mask: 1 << (bit & 7)}
}

// Configure turns the bit into an output driven to initial.
func (e *Expander) Configure(initial bool) error {
	const op = "led.expander.configure"
	e.w[0] = regOutput
	if err := e.bus.Tx(e.addr, e.w[:1], e.r[:]); err != nil {
		return errcode.Wrap(op, errcode.OutputIO, err)
	}
	e.out = e.r[0]
	if err := e.Set(initial); err != nil {
		return err
	}

	e.w[0] = regConfig
	if err := e.bus.Tx(e.addr, e.w[:1], e.r[:]); err != nil {
		return errcode.Wrap(op, errcode.OutputIO, err)
	}
	e.w[0], e.w[1] = regConfig, e.r[0]&^e.mask
	if err := e.bus.Tx(e.addr, e.w[:], nil); err != nil {
		return errcode.Wrap(op, errcode.OutputIO, err)
	}
	return nil
}

// Set drives the bit.
func (e *Expander) Set(level bool) error {
	v := e.out &^ e.mask
	if level {
		v |= e.mask
	}
	e.w[0], e.w[1] = regOutput, v
	if err := e.bus.Tx(e.addr, e.w[:], nil); err != nil {
		e.err = errcode.Wrap("led.expander.set", errcode.OutputIO, err)
		return e.err
	}
	e.out = v
	return nil
}

// Toggle flips the bit; a failed transfer is kept for Err.
func (e *Expander) Toggle() { _ = e.Set(!e.Get()) }

func (e *Expander) Get() bool { return e.out&e.mask != 0 }

// Err returns the last transfer error, if any.
func (e *Expander) Err() error { return e.err }
