//go:build tinygo && kit_xmc14_boot_001

package platform

import (
	"runtime/interrupt"

	"eru-extint-go/drivers/eru"
	"eru-extint-go/drivers/nvic"
)

const (
	eruBase     = eru.BaseXMC1400ERU0
	ledPortBase = 0x40040400 // PORT4

	inputPortBase = 0x40040200 // PORT2
	inputPin      = 5

	irqERU = 3
)

func isrERU(interrupt.Interrupt) { nvic.Serve(irqERU) }

func bindVector() { interrupt.New(irqERU, isrERU) }

// prepareBoard enables the P2.5 digital input. ERU0 needs no release on
// XMC1.
func prepareBoard() error {
	enableDigitalInput(eru.MMIO(inputPortBase), inputPin)
	return nil
}
