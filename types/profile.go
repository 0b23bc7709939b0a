package types

import "eru-extint-go/errcode"

// PriorityEncoding is how a profile's interrupt priority reaches the NVIC.
type PriorityEncoding uint8

const (
	// PriorityDirect writes the numeric priority as is.
	PriorityDirect PriorityEncoding = iota
	// PriorityGrouped encodes the priority against the current priority grouping.
	PriorityGrouped
)

func (e PriorityEncoding) String() string {
	if e == PriorityGrouped {
		return "grouped"
	}
	return "direct"
}

// PinRef is a GPIO port/pin pair, e.g. P4.0.
type PinRef struct {
	Port uint8
	Pin  uint8
}

// Profile fixes the wiring of one target board. Exactly one profile is
// compiled into a firmware image.
type Profile struct {
	Name string

	ETL      uint8 // ETL channel
	OGU      uint8 // OGU channel
	Trigger  TriggerConfig
	Dispatch DispatchConfig

	IRQ      int16 // NVIC line fed by the OGU service request
	Vector   string
	Priority uint8
	Encoding PriorityEncoding
	PrioBits uint8 // implemented NVIC priority bits

	LED PinRef
}

// Validate checks the correlations between the records of a profile.
// Firmware images do not call it; it guards the built-in tables in tests
// and host tools.
func (p Profile) Validate() error {
	const op = "profile.validate"
	if p.ETL > 3 || p.OGU > 3 {
		return errcode.New(op, errcode.UnknownChannel, p.Name)
	}
	if p.Trigger.Input.Channel != p.ETL {
		return errcode.New(op, errcode.ChannelMismatch, "input not wired to etl")
	}
	if uint8(p.Trigger.OutputChannel) != p.OGU {
		return errcode.New(op, errcode.ChannelMismatch, "trigger not routed to ogu")
	}
	if p.PrioBits == 0 || p.PrioBits > 8 || p.Priority >= 1<<p.PrioBits {
		return errcode.New(op, errcode.UnknownIRQ, "priority out of range")
	}
	if p.IRQ < 0 {
		return errcode.New(op, errcode.UnknownIRQ, p.Name)
	}
	return nil
}
