package extint

import (
	"context"
	"sync/atomic"
	"time"

	"eru-extint-go/x/logx"
)

// Serviced describes one handler run as seen by the monitor.
type Serviced struct {
	Seq   uint32
	Level bool // LED level after the toggle
	// TS is when the monitor goroutine picked the note up, not when the
	// handler ran; the handler does not read the clock.
	TS time.Time
}

// Mirror receives the LED level from foreground code, e.g. a bench
// indicator on an I2C expander.
type Mirror interface {
	Set(level bool) error
}

// Monitor reports serviced edges without touching the dispatch path: the
// handler side is a non-blocking send, excess notes are counted and dropped.
type Monitor struct {
	// Written by the handler; MUST NOT block:
	isrQ chan isrNote
	// Consumed by tools and tests:
	outQ    chan Serviced
	stopped chan struct{}

	mirror Mirror
	seq    atomic.Uint32
	drops  atomic.Uint32
}

type isrNote struct {
	seq   uint32
	level bool
}

func NewMonitor(isrBuf, outBuf int) *Monitor {
	if isrBuf <= 0 {
		isrBuf = 32
	}
	if outBuf <= 0 {
		outBuf = 32
	}
	return &Monitor{
		isrQ:    make(chan isrNote, isrBuf),
		outQ:    make(chan Serviced, outBuf),
		stopped: make(chan struct{}),
	}
}

// MirrorTo forwards every observed LED level to m. Call before Start.
func (m *Monitor) MirrorTo(mr Mirror) { m.mirror = mr }

func (m *Monitor) Start(ctx context.Context) {
	go func() {
		defer close(m.stopped)
		for {
			select {
			case <-ctx.Done():
				return
			case n := <-m.isrQ:
				m.handle(n)
			}
		}
	}()
}

func (m *Monitor) Events() <-chan Serviced { return m.outQ }
func (m *Monitor) Done() <-chan struct{}   { return m.stopped }

// Drops counts notes lost because the handler-side queue was full.
func (m *Monitor) Drops() uint32 { return m.drops.Load() }

// note is called from the handler.
func (m *Monitor) note(level bool) {
	select {
	case m.isrQ <- isrNote{seq: m.seq.Add(1), level: level}:
	default:
		m.drops.Add(1)
	}
}

func (m *Monitor) handle(n isrNote) {
	if m.mirror != nil {
		if err := m.mirror.Set(n.level); err != nil {
			logx.Warn("extint: mirror:", err)
		}
	}
	select {
	case m.outQ <- Serviced{Seq: n.seq, Level: n.level, TS: time.Now()}:
	default:
		// drop to protect the monitor if the consumer is slow
	}
}
