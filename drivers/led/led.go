// Package led provides the outputs an edge handler toggles: an in-memory
// output for host builds, an XMC port pin for MCU builds, and one bit of an
// I2C port expander for bench indicators.
package led

import (
	"sync/atomic"

	"eru-extint-go/x/critical"
)

// Output is a GPIO output line.
type Output interface {
	Toggle()
	Get() bool
}

// Memory is a host-side output that counts its toggles.
type Memory struct {
	level   atomic.Bool
	toggles atomic.Uint32
}

func (m *Memory) Toggle() {
	for {
		old := m.level.Load()
		if m.level.CompareAndSwap(old, !old) {
			break
		}
	}
	m.toggles.Add(1)
}

func (m *Memory) Get() bool       { return m.level.Load() }
func (m *Memory) Set(level bool)  { m.level.Store(level) }
func (m *Memory) Toggles() uint32 { return m.toggles.Load() }

// Atomic makes an output's read-modify-write toggle safe when more than one
// interrupt handler writes it.
type Atomic struct {
	Out Output
}

func (a Atomic) Toggle() {
	s := critical.Enter()
	a.Out.Toggle()
	critical.Exit(s)
}

func (a Atomic) Get() bool { return a.Out.Get() }
