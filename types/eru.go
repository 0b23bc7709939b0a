package types

// ---- ERU event trigger logic (ETL) ----

// Edge selects which transitions an ETL channel detects (EXICON.RE/FE).
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

// Source is the input path combination: bits 1:0 SS, bit 2 NA, bit 3 NB.
type Source uint8

const (
	SourceA           Source = 0x0
	SourceB           Source = 0x1
	SourceAOrB        Source = 0x2
	SourceAAndB       Source = 0x3
	SourceNotA        Source = 0x4
	SourceNotAOrB     Source = 0x6
	SourceNotAAndB    Source = 0x7
	SourceNotB        Source = 0x9
	SourceAOrNotB     Source = 0xa
	SourceAAndNotB    Source = 0xb
	SourceNotAOrNotB  Source = 0xe
	SourceNotAAndNotB Source = 0xf
)

// StatusFlagMode selects how the ETL status flag (FL) is cleared.
type StatusFlagMode uint8

const (
	// StatusFlagSoftware: FL is sticky until software clears it.
	StatusFlagSoftware StatusFlagMode = iota
	// StatusFlagHardware: FL is cleared by the edge opposite to the detected one.
	StatusFlagHardware
)

func (m StatusFlagMode) String() string {
	if m == StatusFlagHardware {
		return "hwctrl"
	}
	return "swctrl"
}

// OutputChannel is the OGU channel an ETL trigger pulse is routed to (EXICON.OCS).
type OutputChannel uint8

const (
	OutputChannel0 OutputChannel = iota
	OutputChannel1
	OutputChannel2
	OutputChannel3
)

// InputPath names the ETL input multiplexer a signal is wired to.
type InputPath uint8

const (
	InputA InputPath = iota
	InputB
)

func (p InputPath) String() string {
	if p == InputB {
		return "B"
	}
	return "A"
}

// InputSignal identifies a board pin as an EXISEL selection for one ETL channel.
type InputSignal struct {
	Unit    uint8     // ERU instance (0 or 1)
	Channel uint8     // ETL channel the pin is wired to
	Path    InputPath // A or B multiplexer
	Select  uint8     // EXS value (0..3)
	Pin     string    // e.g. "P2.5"
}

// TriggerConfig programs one ETL channel.
type TriggerConfig struct {
	Input               InputSignal
	Source              Source
	Edge                Edge
	StatusFlag          StatusFlagMode
	EnableOutputTrigger bool
	OutputChannel       OutputChannel
}

// ---- ERU output gating unit (OGU) ----

// ServiceRequest is the gating policy for service requests (EXOCON.GP).
type ServiceRequest uint8

const (
	ServiceRequestDisabled ServiceRequest = iota
	ServiceRequestOnTrigger
	ServiceRequestOnTriggerAndPatternMatch
	ServiceRequestOnTriggerAndPatternMismatch
)

func (s ServiceRequest) String() string {
	switch s {
	case ServiceRequestOnTrigger:
		return "on_trigger"
	case ServiceRequestOnTriggerAndPatternMatch:
		return "on_trigger_and_match"
	case ServiceRequestOnTriggerAndPatternMismatch:
		return "on_trigger_and_mismatch"
	default:
		return "disabled"
	}
}

// PeripheralTrigger selects an external trigger into the OGU (EXOCON.ISS).
type PeripheralTrigger uint8

const (
	PeripheralTriggerNone PeripheralTrigger = iota
	PeripheralTrigger1
	PeripheralTrigger2
	PeripheralTrigger3
)

// DispatchConfig programs one OGU channel.
type DispatchConfig struct {
	ServiceRequest         ServiceRequest
	PeripheralTrigger      PeripheralTrigger
	EnablePatternDetection bool
	// PatternInputs is a 4-bit mask of ETL status flags taking part in
	// pattern detection (EXOCON.IPEN0..3).
	PatternInputs uint8
}
