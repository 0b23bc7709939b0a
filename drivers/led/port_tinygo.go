//go:build tinygo

package led

import (
	"runtime/volatile"
	"unsafe"
)

// XMC GPIO port register offsets.
const (
	portOUT   = 0x00
	portOMR   = 0x04
	portIOCR0 = 0x10

	iocrPushPull = 0x10 // PC field: general purpose push-pull output
)

// PortPin is one pin of an XMC GPIO port mapped at base.
type PortPin struct {
	base uintptr
	pin  uint8
}

func NewPortPin(base uintptr, pin uint8) PortPin { return PortPin{base: base, pin: pin & 15} }

func (p PortPin) reg(off uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(p.base + off))
}

// ConfigureOutput selects push-pull output mode and drives initial.
func (p PortPin) ConfigureOutput(initial bool) {
	if initial {
		p.reg(portOMR).Set(1 << p.pin)
	} else {
		p.reg(portOMR).Set(1 << (p.pin + 16))
	}
	iocr := p.reg(portIOCR0 + uintptr(p.pin/4)*4)
	shift := uint32(p.pin%4)*8 + 3
	iocr.Set(iocr.Get()&^(0x1F<<shift) | iocrPushPull<<shift)
}

// Toggle sets both PS and PR in OMR, which the port applies as a toggle in
// a single write.
func (p PortPin) Toggle() { p.reg(portOMR).Set(1<<p.pin | 1<<(p.pin+16)) }

func (p PortPin) Get() bool { return p.reg(portOUT).Get()&(1<<p.pin) != 0 }
