//go:build !tinygo

package platform

import (
	"eru-extint-go/drivers/eru"
	"eru-extint-go/drivers/led"
	"eru-extint-go/drivers/nvic"
	"eru-extint-go/types"
)

// SimHardware stands in for one board on host builds: a simulated ERU
// wired per profile, a modelled NVIC fed by the profile's OGU, and an
// in-memory LED.
type SimHardware struct {
	ERU  *eru.Sim
	NVIC *nvic.Sim
	LED  *led.Memory

	// BringUpErr is returned by BringUp, for fault injection.
	BringUpErr  error
	BringUpRuns int
}

func NewSimHardware(p types.Profile) *SimHardware {
	hw := &SimHardware{
		ERU:  eru.NewSim(Wires(p)),
		NVIC: nvic.NewSim(p.PrioBits),
		LED:  &led.Memory{},
	}
	hw.ERU.Route(p.OGU, hw.NVIC.Line(nvic.IRQ(p.IRQ)))
	return hw
}

func (hw *SimHardware) BringUp() error {
	hw.BringUpRuns++
	if hw.BringUpErr != nil {
		return hw.BringUpErr
	}
	hw.LED.Set(false)
	return nil
}
