//go:build rp2040

package main

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// Each TX word is a pulse count minus one. The pin idles high and every
// pulse is a low phase followed by a high phase of 32 cycles each.
func buildPulseProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		asm.Pull(false, true).Encode(),                    // 0: pull block
		asm.Out(rp2pio.OutDestX, 32).Encode(),             // 1: out x, 32
		asm.Set(rp2pio.SetDestPins, 0).Delay(31).Encode(), // 2: set pins, 0 [31]
		asm.Set(rp2pio.SetDestPins, 1).Delay(31).Encode(), // 3: set pins, 1 [31]
		asm.Jmp(2, rp2pio.JmpXNZeroDec).Encode(),          // 4: jmp x--, 2
	}
}

const pulseOrigin = 0

type pulser struct {
	pio *rp2pio.PIO
	sm  rp2pio.StateMachine
	pin machine.Pin
}

func newPulser(pio *rp2pio.PIO, smNum uint8, pin machine.Pin) (*pulser, error) {
	p := &pulser{pio: pio, sm: pio.StateMachine(smNum), pin: pin}
	p.sm.TryClaim()

	program := buildPulseProgram()
	offset, err := pio.AddProgram(program, pulseOrigin)
	if err != nil {
		return nil, err
	}
	pin.Configure(machine.PinConfig{Mode: pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(pin, 1)
	cfg.SetOutShift(true, false, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	// Slowest divider: ~17 ms per phase at 125 MHz.
	cfg.SetClkDivIntFrac(65535, 0)

	p.sm.Init(offset, cfg)
	p.sm.SetPindirsConsecutive(pin, 1, true)
	p.sm.SetPinsConsecutive(pin, 1, true)
	p.sm.SetEnabled(true)
	return p, nil
}

// emit queues a burst of n pulses.
func (p *pulser) emit(n uint32) {
	if n == 0 {
		return
	}
	for p.sm.IsTxFIFOFull() {
	}
	p.sm.TxPut(n - 1)
}
