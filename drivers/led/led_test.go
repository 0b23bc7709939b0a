package led

import (
	"errors"
	"sync"
	"testing"

	"tinygo.org/x/drivers"

	"eru-extint-go/errcode"
)

func TestMemoryToggle(t *testing.T) {
	var m Memory
	for i := 0; i < 5; i++ {
		m.Toggle()
	}
	if !m.Get() || m.Toggles() != 5 {
		t.Fatalf("level=%v toggles=%d", m.Get(), m.Toggles())
	}
}

// plainOutput has an unguarded read-modify-write toggle.
type plainOutput struct {
	level bool
	n     int
}

func (p *plainOutput) Toggle()   { p.level = !p.level; p.n++ }
func (p *plainOutput) Get() bool { return p.level }

func TestAtomicSerialisesWriters(t *testing.T) {
	p := &plainOutput{}
	out := Atomic{Out: p}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1001; i++ {
				out.Toggle()
			}
		}()
	}
	wg.Wait()

	if p.n != 4004 {
		t.Fatalf("toggles = %d, want 4004", p.n)
	}
	if out.Get() {
		t.Fatal("even number of toggles should leave the output low")
	}
}

var _ drivers.I2C = (*fakeI2C)(nil)

// fakeI2C is a register-addressed device: a write of [reg, v] stores v, a
// write of [reg] followed by a read returns it.
type fakeI2C struct {
	regs   [4]byte
	writes int
	fail   error
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	if f.fail != nil {
		return f.fail
	}
	if addr != ExpanderAddress || len(w) == 0 {
		return errors.New("nack")
	}
	if len(w) == 2 {
		f.regs[w[0]] = w[1]
		f.writes++
	}
	if len(r) > 0 {
		r[0] = f.regs[w[0]]
	}
	return nil
}

func TestExpanderConfigureAndToggle(t *testing.T) {
	bus := &fakeI2C{}
	bus.regs[regConfig] = 0xFF // power-on: all inputs
	bus.regs[regOutput] = 0x01 // another bit already high

	e := NewExpander(bus, 0, 3)
	if err := e.Configure(false); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if bus.regs[regConfig] != 0xF7 {
		t.Fatalf("config = %#x, want 0xf7", bus.regs[regConfig])
	}

	e.Toggle()
	if !e.Get() || bus.regs[regOutput] != 0x09 {
		t.Fatalf("output = %#x after toggle", bus.regs[regOutput])
	}
	e.Toggle()
	if e.Get() || bus.regs[regOutput] != 0x01 {
		t.Fatalf("output = %#x after second toggle", bus.regs[regOutput])
	}
}

func TestExpanderKeepsLastError(t *testing.T) {
	bus := &fakeI2C{}
	e := NewExpander(bus, 0, 0)
	bus.fail = errors.New("bus stuck")

	e.Toggle()
	if !errors.Is(e.Err(), errcode.OutputIO) {
		t.Fatalf("Err = %v", e.Err())
	}
	if e.Get() {
		t.Fatal("failed write must not change the shadow level")
	}
}
