// Package extint configures one external signal to interrupt on its edge
// through the ERU and services it by toggling an LED.
package extint

import (
	"context"

	"eru-extint-go/drivers/eru"
	"eru-extint-go/drivers/led"
	"eru-extint-go/drivers/nvic"
	"eru-extint-go/errcode"
	"eru-extint-go/types"
	"eru-extint-go/x/logx"
)

// BringUp initialises the board. It runs once, before any peripheral access.
type BringUp func() error

// Config wires the service to one board.
type Config struct {
	Profile types.Profile
	BringUp BringUp
	// Halt is called when bring-up fails. Defaults to the platform halt.
	Halt func()

	ERU  *eru.Unit
	NVIC nvic.Controller
	LED  led.Output

	Monitor *Monitor // optional
}

// Line is an external interrupt line after start-up.
type Line struct {
	Trigger  *Trigger
	Dispatch *Dispatch
	Handler  *EdgeHandler
}

// Setup runs the start-up sequence: bring-up, trigger, dispatch, priority,
// handler, enable. A bring-up failure halts before any peripheral is
// touched.
func Setup(cfg Config) (*Line, error) {
	const op = "extint.setup"
	if cfg.BringUp != nil {
		if err := cfg.BringUp(); err != nil {
			halt := cfg.Halt
			if halt == nil {
				halt = defaultHalt
			}
			halt()
			return nil, errcode.Wrap(op, errcode.BringUpFailed, err)
		}
	}

	p := cfg.Profile
	line := &Line{
		Trigger: NewTrigger(cfg.ERU, p.ETL, p.Trigger),
		Dispatch: NewDispatch(cfg.ERU, cfg.NVIC, DispatchParams{
			OGU:      p.OGU,
			Config:   p.Dispatch,
			IRQ:      nvic.IRQ(p.IRQ),
			Encoding: p.Encoding,
			PrioBits: p.PrioBits,
		}),
		Handler: &EdgeHandler{led: cfg.LED, mon: cfg.Monitor},
	}
	if p.Trigger.StatusFlag == types.StatusFlagSoftware {
		line.Handler.clear = line.Trigger.ClearStatus
	}

	line.Trigger.Configure()
	if err := line.Dispatch.Configure(); err != nil {
		return nil, err
	}
	if err := line.Dispatch.SetPriority(p.Priority); err != nil {
		return nil, err
	}
	if err := line.Dispatch.Install(line.Handler.OnExternalEdge); err != nil {
		return nil, err
	}
	if err := line.Dispatch.Enable(); err != nil {
		return nil, err
	}
	logx.Info("extint:", p.Name, "irq", int(p.IRQ), "enabled")
	return line, nil
}

// Run sets the line up and idles until ctx is cancelled. From then on the
// hardware invokes the handler on each qualifying edge.
func Run(ctx context.Context, cfg Config) error {
	if _, err := Setup(cfg); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}
