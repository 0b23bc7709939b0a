// Package nvic covers the Cortex-M nested vectored interrupt controller:
// priority encoding, masking and handler installation.
package nvic

import "eru-extint-go/types"

// IRQ is an external interrupt line number (vector number minus 16).
type IRQ int16

// Lines is the number of external lines modelled.
const Lines = 64

// Controller is the subset of NVIC operations the dispatch path needs.
type Controller interface {
	// SetPriority writes the raw 8-bit priority byte of irq.
	SetPriority(irq IRQ, raw uint8)
	Priority(irq IRQ) uint8
	// PriorityGrouping returns AIRCR.PRIGROUP.
	PriorityGrouping() uint32
	Enable(irq IRQ)
	Disable(irq IRQ)
	Enabled(irq IRQ) bool
	ClearPending(irq IRQ)
	// Install binds h as the handler run when irq is serviced.
	Install(irq IRQ, h func()) error
}

// EncodePriority packs a preempt and sub priority for the given grouping
// into a value of prioBits significant bits.
func EncodePriority(grouping uint32, prioBits uint8, preempt, sub uint32) uint32 {
	g := grouping & 7
	bits := uint32(prioBits)

	preemptBits := 7 - g
	if preemptBits > bits {
		preemptBits = bits
	}
	var subBits uint32
	if g+bits >= 7 {
		subBits = g - 7 + bits
	}
	return (preempt&(1<<preemptBits-1))<<subBits | sub&(1<<subBits-1)
}

// DecodePriority splits a prioBits-wide priority into preempt and sub parts.
func DecodePriority(prio uint32, grouping uint32, prioBits uint8) (preempt, sub uint32) {
	g := grouping & 7
	bits := uint32(prioBits)

	preemptBits := 7 - g
	if preemptBits > bits {
		preemptBits = bits
	}
	var subBits uint32
	if g+bits >= 7 {
		subBits = g - 7 + bits
	}
	return prio >> subBits & (1<<preemptBits - 1), prio & (1<<subBits - 1)
}

// Raw converts a prioBits-wide priority to the register byte.
func Raw(prio uint32, prioBits uint8) uint8 {
	return uint8(prio << (8 - uint32(prioBits)))
}

// Encode turns a profile priority into the register byte using the
// profile's encoding.
func Encode(enc types.PriorityEncoding, grouping uint32, prioBits uint8, value uint8) uint8 {
	prio := uint32(value)
	if enc == types.PriorityGrouped {
		prio = EncodePriority(grouping, prioBits, prio, 0)
	}
	return Raw(prio, prioBits)
}

// PreemptLevel returns the group priority of a raw byte; only a strictly
// lower level preempts a running handler.
func PreemptLevel(raw uint8, grouping uint32, prioBits uint8) uint8 {
	shift := (grouping & 7) + 1
	if low := 8 - uint32(prioBits); low > shift {
		shift = low
	}
	return raw >> shift
}
