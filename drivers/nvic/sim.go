package nvic

import (
	"sync"

	"eru-extint-go/errcode"
)

// Sim is a host interrupt controller. Raising a line pends it; a pending,
// enabled line runs on the raising goroutine when its preempt level is
// strictly higher than every handler in progress, otherwise it waits for
// the running context to drain it. Handlers always run to completion.
type Sim struct {
	prioBits uint8

	mu       sync.Mutex
	grouping uint32
	prio     [Lines]uint8
	enabled  [Lines]bool
	pending  [Lines]bool
	vectors  [Lines]func()
	active   []IRQ
	serviced [Lines]uint32
}

func NewSim(prioBits uint8) *Sim {
	return &Sim{prioBits: prioBits, active: make([]IRQ, 0, 8)}
}

func (s *Sim) SetPriorityGrouping(g uint32) {
	s.mu.Lock()
	s.grouping = g & 7
	s.mu.Unlock()
}

func (s *Sim) PriorityGrouping() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grouping
}

func (s *Sim) SetPriority(irq IRQ, raw uint8) {
	s.mu.Lock()
	// Unimplemented low bits read as zero.
	s.prio[irq] = raw &^ (1<<(8-s.prioBits) - 1)
	s.mu.Unlock()
}

func (s *Sim) Priority(irq IRQ) uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prio[irq]
}

func (s *Sim) Enable(irq IRQ) {
	s.mu.Lock()
	s.enabled[irq] = true
	s.mu.Unlock()
	s.service()
}

func (s *Sim) Disable(irq IRQ) {
	s.mu.Lock()
	s.enabled[irq] = false
	s.mu.Unlock()
}

func (s *Sim) Enabled(irq IRQ) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled[irq]
}

func (s *Sim) Pending(irq IRQ) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[irq]
}

func (s *Sim) ClearPending(irq IRQ) {
	s.mu.Lock()
	s.pending[irq] = false
	s.mu.Unlock()
}

func (s *Sim) Install(irq IRQ, h func()) error {
	if irq < 0 || irq >= Lines {
		return errcode.New("nvic.install", errcode.UnknownIRQ, "")
	}
	s.mu.Lock()
	s.vectors[irq] = h
	s.mu.Unlock()
	return nil
}

// Serviced returns how many times irq's handler has been entered.
func (s *Sim) Serviced(irq IRQ) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serviced[irq]
}

// Raise pends irq, as a peripheral service request would, and services it
// if it may run now.
func (s *Sim) Raise(irq IRQ) {
	s.mu.Lock()
	s.pending[irq] = true
	s.mu.Unlock()
	s.service()
}

// Line returns a raise function for irq, suitable as a peripheral route.
func (s *Sim) Line(irq IRQ) func() {
	return func() { s.Raise(irq) }
}

func (s *Sim) service() {
	for {
		s.mu.Lock()
		irq, ok := s.nextLocked()
		if !ok {
			s.mu.Unlock()
			return
		}
		s.pending[irq] = false
		s.active = append(s.active, irq)
		s.serviced[irq]++
		h := s.vectors[irq]
		s.mu.Unlock()

		if h != nil {
			h()
		}

		s.mu.Lock()
		for i := len(s.active) - 1; i >= 0; i-- {
			if s.active[i] == irq {
				s.active = append(s.active[:i], s.active[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
	}
}

// nextLocked picks the highest priority pending line that may preempt
// everything currently active. Ties go to the lower line number.
func (s *Sim) nextLocked() (IRQ, bool) {
	ceiling := -1
	for _, a := range s.active {
		lvl := int(PreemptLevel(s.prio[a], s.grouping, s.prioBits))
		if ceiling < 0 || lvl < ceiling {
			ceiling = lvl
		}
	}
	best := IRQ(-1)
	var bestPrio uint8
	for i := 0; i < Lines; i++ {
		if !s.pending[i] || !s.enabled[i] {
			continue
		}
		if ceiling >= 0 && int(PreemptLevel(s.prio[i], s.grouping, s.prioBits)) >= ceiling {
			continue
		}
		if best < 0 || s.prio[i] < bestPrio {
			best, bestPrio = IRQ(i), s.prio[i]
		}
	}
	return best, best >= 0
}
