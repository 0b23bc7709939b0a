package extint

import (
	"sync"

	"eru-extint-go/drivers/eru"
	"eru-extint-go/drivers/nvic"
	"eru-extint-go/errcode"
	"eru-extint-go/types"
)

// State of a dispatch line. Transitions only move forward.
type State uint8

const (
	Unconfigured State = iota
	Configured
	Enabled
)

func (s State) String() string {
	switch s {
	case Configured:
		return "configured"
	case Enabled:
		return "enabled"
	default:
		return "unconfigured"
	}
}

// DispatchParams binds a dispatch line to its OGU channel and NVIC line.
type DispatchParams struct {
	OGU      uint8
	Config   types.DispatchConfig
	IRQ      nvic.IRQ
	Encoding types.PriorityEncoding
	PrioBits uint8
}

// Dispatch turns trigger pulses on one OGU channel into a prioritised
// interrupt and runs the installed handler.
type Dispatch struct {
	eru *eru.Unit
	nv  nvic.Controller
	p   DispatchParams

	mu      sync.Mutex
	state   State
	prioSet bool
	handler bool
}

func NewDispatch(u *eru.Unit, nv nvic.Controller, p DispatchParams) *Dispatch {
	return &Dispatch{eru: u, nv: nv, p: p}
}

// Configure sets the service request policy of the OGU channel.
func (d *Dispatch) Configure() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Enabled {
		return errcode.New("dispatch.configure", errcode.AlreadyEnabled, "")
	}
	d.eru.ConfigureOGU(d.p.OGU, d.p.Config)
	d.state = Configured
	return nil
}

// SetPriority programs the line's priority once, in the encoding of the
// target.
func (d *Dispatch) SetPriority(value uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.prioSet {
		return errcode.New("dispatch.set_priority", errcode.PriorityLocked, "")
	}
	raw := nvic.Encode(d.p.Encoding, d.nv.PriorityGrouping(), d.p.PrioBits, value)
	d.nv.SetPriority(d.p.IRQ, raw)
	d.prioSet = true
	return nil
}

// Install registers h for the line. h runs at interrupt priority: it must
// not block, allocate or wait on foreground code.
func (d *Dispatch) Install(h func()) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == Enabled {
		return errcode.New("dispatch.install", errcode.AlreadyEnabled, "")
	}
	if err := d.nv.Install(d.p.IRQ, h); err != nil {
		return err
	}
	d.handler = true
	return nil
}

// Enable unmasks the line. Requests latched before this point are dropped,
// so only edges after Enable reach the handler.
func (d *Dispatch) Enable() error {
	const op = "dispatch.enable"
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case d.state == Enabled:
		return errcode.New(op, errcode.AlreadyEnabled, "")
	case d.state != Configured:
		return errcode.New(op, errcode.NotConfigured, "ogu")
	case !d.prioSet:
		return errcode.New(op, errcode.NotConfigured, "priority")
	case !d.handler:
		return errcode.New(op, errcode.NotConfigured, "handler")
	}
	d.nv.ClearPending(d.p.IRQ)
	d.nv.Enable(d.p.IRQ)
	d.state = Enabled
	return nil
}

func (d *Dispatch) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Dispatch) IRQ() nvic.IRQ { return d.p.IRQ }
