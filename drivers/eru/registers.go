// Package eru provides register definitions and a driver for the XMC Event
// Request Unit: four Event Trigger Logic (ETL) channels feeding four Output
// Gating Units (OGU) whose service requests reach the interrupt controller.
package eru

import "sync/atomic"

const (
	// Peripheral base addresses.
	BaseXMC1400ERU0 = 0x40010600
	BaseXMC4700ERU0 = 0x50004800
	BaseXMC4700ERU1 = 0x40044000

	Channels = 4

	// --- Register offsets ---
	regEXISEL = 0x00 // input select, 4 bits per ETL
	regEXICON = 0x10 // EXICON[0..3], 4 bytes apart
	regEXOCON = 0x20 // EXOCON[0..3], 4 bytes apart

	regSpan = 0x30

	// --- EXISEL ---
	exiselBits = 4
	exiselMask = 0xF // EXSxA bits 1:0, EXSxB bits 3:2

	// --- EXICON bitfields ---
	exiconPE       = 1 << 0 // trigger pulse enable
	exiconLD       = 1 << 1 // rebuild level detection (hardware-cleared FL)
	exiconRE       = 1 << 2 // rising edge detection
	exiconFE       = 1 << 3 // falling edge detection
	exiconOCSShift = 4      // output channel select, 3 bits
	exiconOCSMask  = 0x7 << exiconOCSShift
	exiconFL       = 1 << 7 // status flag
	exiconSSShift  = 8      // SS bits 9:8, NA bit 10, NB bit 11
	exiconNA       = 1 << 10
	exiconNB       = 1 << 11
	exiconSSMask   = 0xF << exiconSSShift

	// --- EXOCON bitfields ---
	exoconISSMask   = 0x3    // peripheral trigger select
	exoconGEEN      = 1 << 2 // pattern detection enable
	exoconPDR       = 1 << 3 // pattern detection result (read only)
	exoconGPShift   = 4      // gating select, 2 bits
	exoconGPMask    = 0x3 << exoconGPShift
	exoconIPENShift = 12 // IPEN0..3
	exoconIPENMask  = 0xF << exoconIPENShift
)

// Registers is word access to one ERU instance, by byte offset.
type Registers interface {
	Load(off uintptr) uint32
	Store(off uintptr, v uint32)
}

// Memory is a host-side register file. Accesses are atomic so a simulator
// goroutine and handler code can share it.
type Memory struct {
	words [regSpan / 4]atomic.Uint32
}

func (m *Memory) Load(off uintptr) uint32     { return m.words[off>>2].Load() }
func (m *Memory) Store(off uintptr, v uint32) { m.words[off>>2].Store(v) }

// Snapshot copies every register word, EXISEL first.
func (m *Memory) Snapshot() [regSpan / 4]uint32 {
	var s [regSpan / 4]uint32
	for i := range m.words {
		s[i] = m.words[i].Load()
	}
	return s
}

func exicon(ch uint8) uintptr { return regEXICON + uintptr(ch&3)*4 }
func exocon(ch uint8) uintptr { return regEXOCON + uintptr(ch&3)*4 }
