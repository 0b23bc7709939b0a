//go:build tinygo && (kit_xmc14_boot_001 || kit_xmc47_relax_v1)

package platform

import (
	"eru-extint-go/drivers/eru"
	"eru-extint-go/drivers/led"
	"eru-extint-go/drivers/nvic"
)

// Hardware is the board's memory-mapped peripherals.
type Hardware struct {
	ERU  *eru.Unit
	NVIC nvic.CortexM
	LED  led.PortPin
}

// NewHardware maps the selected board and binds its ERU vector.
func NewHardware() *Hardware {
	bindVector()
	p, _ := Selected()
	return &Hardware{
		ERU: eru.New(eru.MMIO(eruBase)),
		LED: led.NewPortPin(ledPortBase, p.LED.Pin),
	}
}

// BringUp releases the ERU and the input pin, then drives the LED off. It
// runs before any ERU register access.
func (hw *Hardware) BringUp() error {
	if err := prepareBoard(); err != nil {
		return err
	}
	hw.LED.ConfigureOutput(false)
	return nil
}
