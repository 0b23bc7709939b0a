//go:build tinygo && cortexm

package nvic

import (
	"runtime/volatile"
	"unsafe"

	"eru-extint-go/errcode"
)

type nvicRegs struct {
	ISER [16]volatile.Register32
	_    [64]byte
	ICER [16]volatile.Register32
	_    [64]byte
	ISPR [16]volatile.Register32
	_    [64]byte
	ICPR [16]volatile.Register32
	_    [320]byte // IABR and reserved, up to 0x400
	// Word access only: ARMv6-M does not allow byte writes to IPR.
	IPR [124]volatile.Register32
}

var (
	hw    = (*nvicRegs)(unsafe.Pointer(uintptr(0xE000E100)))
	aircr = (*volatile.Register32)(unsafe.Pointer(uintptr(0xE000ED0C)))

	vectors [Lines]func()
)

// CortexM drives the core's NVIC. Handlers live in a fixed table and are
// entered from the statically bound vector stubs through Serve.
type CortexM struct{}

func (CortexM) SetPriority(irq IRQ, raw uint8) {
	r := &hw.IPR[irq>>2]
	shift := uint32(irq&3) * 8
	r.Set(r.Get()&^(0xFF<<shift) | uint32(raw)<<shift)
}

func (CortexM) Priority(irq IRQ) uint8 {
	return uint8(hw.IPR[irq>>2].Get() >> (uint32(irq&3) * 8))
}

func (CortexM) PriorityGrouping() uint32 { return (aircr.Get() >> 8) & 7 }

func (CortexM) Enable(irq IRQ)  { hw.ISER[irq>>5].Set(1 << (uint32(irq) & 31)) }
func (CortexM) Disable(irq IRQ) { hw.ICER[irq>>5].Set(1 << (uint32(irq) & 31)) }

func (CortexM) Enabled(irq IRQ) bool {
	return hw.ISER[irq>>5].Get()&(1<<(uint32(irq)&31)) != 0
}

func (CortexM) ClearPending(irq IRQ) { hw.ICPR[irq>>5].Set(1 << (uint32(irq) & 31)) }

func (CortexM) Install(irq IRQ, h func()) error {
	if irq < 0 || irq >= Lines {
		return errcode.New("nvic.install", errcode.UnknownIRQ, "")
	}
	vectors[irq] = h
	return nil
}

// Serve runs the handler installed for irq.
func Serve(irq IRQ) {
	if h := vectors[irq]; h != nil {
		h()
	}
}
