package platform

import (
	"golang.org/x/exp/slices"

	"eru-extint-go/drivers/eru"
	"eru-extint-go/errcode"
	"eru-extint-go/types"
)

// XMC14Boot001 is the XMC1400 boot kit: P2.5 on ERU0 ETL1 input A, OGU0
// service request on IRQ3, Cortex-M0 priorities written directly.
var XMC14Boot001 = types.Profile{
	Name: "kit_xmc14_boot_001",
	ETL:  1,
	OGU:  0,
	Trigger: types.TriggerConfig{
		Input:               types.InputSignal{Unit: 0, Channel: 1, Path: types.InputA, Select: 2, Pin: "P2.5"},
		Source:              types.SourceA,
		Edge:                types.EdgeFalling,
		StatusFlag:          types.StatusFlagHardware,
		EnableOutputTrigger: true,
		OutputChannel:       types.OutputChannel0,
	},
	Dispatch: types.DispatchConfig{ServiceRequest: types.ServiceRequestOnTrigger},
	IRQ:      3,
	Vector:   "IRQ3",
	Priority: 3,
	Encoding: types.PriorityDirect,
	PrioBits: 2,
	LED:      types.PinRef{Port: 4, Pin: 0},
}

// XMC47RelaxV1 is the XMC4700 relax kit: P1.15 on ERU1 ETL1 input A, OGU0
// service request on ERU1_0, priority encoded against the grouping.
var XMC47RelaxV1 = types.Profile{
	Name: "kit_xmc47_relax_v1",
	ETL:  1,
	OGU:  0,
	Trigger: types.TriggerConfig{
		Input:               types.InputSignal{Unit: 1, Channel: 1, Path: types.InputA, Select: 0, Pin: "P1.15"},
		Source:              types.SourceA,
		Edge:                types.EdgeFalling,
		StatusFlag:          types.StatusFlagHardware,
		EnableOutputTrigger: true,
		OutputChannel:       types.OutputChannel0,
	},
	Dispatch: types.DispatchConfig{ServiceRequest: types.ServiceRequestOnTrigger},
	IRQ:      5,
	Vector:   "ERU1_0",
	Priority: 63,
	Encoding: types.PriorityGrouped,
	PrioBits: 6,
	LED:      types.PinRef{Port: 5, Pin: 9},
}

// Profiles lists every board this firmware knows.
var Profiles = []types.Profile{XMC14Boot001, XMC47RelaxV1}

// ByName looks a profile up for host tools.
func ByName(name string) (types.Profile, error) {
	i := slices.IndexFunc(Profiles, func(p types.Profile) bool { return p.Name == name })
	if i < 0 {
		return types.Profile{}, errcode.New("platform.by_name", errcode.UnknownBoard, name)
	}
	return Profiles[i], nil
}

// Names returns the profile names, sorted.
func Names() []string {
	out := make([]string, 0, len(Profiles))
	for _, p := range Profiles {
		out = append(out, p.Name)
	}
	slices.Sort(out)
	return out
}

// Wires returns the ERU input wiring a profile relies on.
func Wires(p types.Profile) []eru.Wire {
	in := p.Trigger.Input
	return []eru.Wire{{Channel: in.Channel, Path: in.Path, Select: in.Select, Pin: in.Pin}}
}
