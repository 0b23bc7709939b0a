//go:build tinygo && kit_xmc47_relax_v1 && !kit_xmc14_boot_001

package platform

import (
	"runtime/interrupt"

	"eru-extint-go/drivers/eru"
	"eru-extint-go/drivers/nvic"
)

const (
	eruBase     = eru.BaseXMC4700ERU1
	ledPortBase = 0x48028500 // PORT5

	irqERU = 5 // ERU1_0
)

func isrERU(interrupt.Interrupt) { nvic.Serve(irqERU) }

func bindVector() { interrupt.New(irqERU, isrERU) }

// prepareBoard takes ERU1 out of reset. P1.15 is a digital-only pin.
func prepareBoard() error { return eru.ReleaseERU1(eru.MMIO(eru.BaseXMC4SCU)) }
