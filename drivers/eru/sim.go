package eru

import (
	"sync"

	"eru-extint-go/errcode"
	"eru-extint-go/types"
)

// Wire connects a board pin to one ETL input multiplexer position.
type Wire struct {
	Channel uint8
	Path    types.InputPath
	Select  uint8
	Pin     string
}

// Sim is a host model of the ERU signal path. It evaluates the configured
// input selection, edge detection, status flag latching and output gating
// whenever a pin level changes, and raises the routed service request
// lines. Register state lives in a Memory so the same Unit methods apply.
type Sim struct {
	*Unit
	mem *Memory

	mu     sync.Mutex
	levels map[string]bool
	wires  []Wire
	routes [Channels]func()
}

// NewSim returns a simulated ERU with every wired pin idling high.
func NewSim(wires []Wire) *Sim {
	mem := &Memory{}
	s := &Sim{
		Unit:   New(mem),
		mem:    mem,
		levels: make(map[string]bool, len(wires)),
		wires:  wires,
	}
	for _, w := range wires {
		s.levels[w.Pin] = true
	}
	return s
}

// Memory exposes the simulated register file.
func (s *Sim) Memory() *Memory { return s.mem }

// Route connects the service request output of OGU channel ogu to raise.
func (s *Sim) Route(ogu uint8, raise func()) {
	s.mu.Lock()
	s.routes[ogu&3] = raise
	s.mu.Unlock()
}

// Level reports the level of a wired pin.
func (s *Sim) Level(pin string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.levels[pin]
	return l, ok
}

// SetPin drives a wired pin. Service requests produced by the change are
// raised after the ERU state is updated, on the caller's goroutine.
func (s *Sim) SetPin(pin string, level bool) error {
	s.mu.Lock()
	old, ok := s.levels[pin]
	if !ok {
		s.mu.Unlock()
		return errcode.New("eru.sim", errcode.UnknownPin, pin)
	}
	if old == level {
		s.mu.Unlock()
		return nil
	}

	var before [Channels]bool
	for ch := range before {
		before[ch] = s.inputLocked(uint8(ch))
	}
	s.levels[pin] = level

	var pulse [Channels]bool
	for ch := uint8(0); ch < Channels; ch++ {
		after := s.inputLocked(ch)
		if after == before[ch] {
			continue
		}
		if ogu, fired := s.detectLocked(ch, after); fired {
			pulse[ogu] = true
		}
	}
	raise := s.gateLocked(pulse, types.PeripheralTriggerNone)
	s.mu.Unlock()

	for _, r := range raise {
		if r != nil {
			r()
		}
	}
	return nil
}

// PeripheralPulse delivers a peripheral trigger to every OGU selecting iss.
func (s *Sim) PeripheralPulse(iss types.PeripheralTrigger) {
	if iss == types.PeripheralTriggerNone {
		return
	}
	s.mu.Lock()
	raise := s.gateLocked([Channels]bool{}, iss)
	s.mu.Unlock()
	for _, r := range raise {
		if r != nil {
			r()
		}
	}
}

// inputLocked returns the combined, polarity-adjusted ETL input level.
func (s *Sim) inputLocked(ch uint8) bool {
	sel := s.mem.Load(regEXISEL) >> (uint32(ch) * exiselBits)
	a := s.wiredLocked(ch, types.InputA, uint8(sel&3))
	b := s.wiredLocked(ch, types.InputB, uint8(sel>>2)&3)

	w := s.mem.Load(exicon(ch))
	if w&exiconNA != 0 {
		a = !a
	}
	if w&exiconNB != 0 {
		b = !b
	}
	switch (w >> exiconSSShift) & 3 {
	case 0:
		return a
	case 1:
		return b
	case 2:
		return a || b
	default:
		return a && b
	}
}

// wiredLocked reads the pin behind a multiplexer position; unconnected
// positions read low.
func (s *Sim) wiredLocked(ch uint8, path types.InputPath, sel uint8) bool {
	for _, w := range s.wires {
		if w.Channel == ch && w.Path == path && w.Select == sel {
			return s.levels[w.Pin]
		}
	}
	return false
}

// detectLocked applies an input transition to ETL channel ch and reports
// the OGU channel receiving a trigger pulse, if any.
func (s *Sim) detectLocked(ch uint8, rising bool) (uint8, bool) {
	off := exicon(ch)
	w := s.mem.Load(off)
	match := (rising && w&exiconRE != 0) || (!rising && w&exiconFE != 0)
	if !match {
		if w&exiconLD != 0 && w&(exiconRE|exiconFE) != 0 {
			s.mem.Store(off, w&^exiconFL)
		}
		return 0, false
	}
	s.mem.Store(off, w|exiconFL)
	if w&exiconPE == 0 {
		return 0, false
	}
	return uint8((w & exiconOCSMask) >> exiconOCSShift), true
}

// gateLocked refreshes every OGU pattern result and returns the service
// request lines to raise for the given trigger pulses.
func (s *Sim) gateLocked(pulse [Channels]bool, iss types.PeripheralTrigger) [Channels]func() {
	var flags uint32
	for ch := uint8(0); ch < Channels; ch++ {
		if s.mem.Load(exicon(ch))&exiconFL != 0 {
			flags |= 1 << ch
		}
	}

	var raise [Channels]func()
	for ogu := uint8(0); ogu < Channels; ogu++ {
		off := exocon(ogu)
		w := s.mem.Load(off)
		ipen := (w & exoconIPENMask) >> exoconIPENShift
		pattern := flags&ipen == ipen

		if w&exoconGEEN != 0 && pattern {
			w |= exoconPDR
		} else {
			w &^= exoconPDR
		}
		s.mem.Store(off, w)

		trig := pulse[ogu]
		if iss != types.PeripheralTriggerNone && types.PeripheralTrigger(w&exoconISSMask) == iss {
			trig = true
		}
		if !trig {
			continue
		}
		var req bool
		switch types.ServiceRequest((w & exoconGPMask) >> exoconGPShift) {
		case types.ServiceRequestOnTrigger:
			req = true
		case types.ServiceRequestOnTriggerAndPatternMatch:
			req = pattern
		case types.ServiceRequestOnTriggerAndPatternMismatch:
			req = !pattern
		}
		if req {
			raise[ogu] = s.routes[ogu]
		}
	}
	return raise
}
