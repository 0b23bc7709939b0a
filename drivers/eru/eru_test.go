package eru

import (
	"errors"
	"testing"

	"eru-extint-go/errcode"
	"eru-extint-go/types"
)

func fallingOnP25() types.TriggerConfig {
	return types.TriggerConfig{
		Input:               types.InputSignal{Channel: 1, Path: types.InputA, Select: 2, Pin: "P2.5"},
		Source:              types.SourceA,
		Edge:                types.EdgeFalling,
		StatusFlag:          types.StatusFlagHardware,
		EnableOutputTrigger: true,
		OutputChannel:       types.OutputChannel0,
	}
}

func TestConfigureETLEncoding(t *testing.T) {
	mem := &Memory{}
	u := New(mem)
	u.ConfigureETL(1, fallingOnP25())

	if got := mem.Load(regEXISEL); got != 2<<4 {
		t.Fatalf("EXISEL = %#x, want %#x", got, 2<<4)
	}
	want := uint32(exiconPE | exiconLD | exiconFE)
	if got := mem.Load(regEXICON + 4); got != want {
		t.Fatalf("EXICON1 = %#x, want %#x", got, want)
	}
	if got := mem.Load(regEXICON); got != 0 {
		t.Fatalf("EXICON0 touched: %#x", got)
	}
}

func TestConfigureETLKeepsOtherSelections(t *testing.T) {
	mem := &Memory{}
	mem.Store(regEXISEL, 0xF00F)
	u := New(mem)

	cfg := fallingOnP25()
	cfg.Input.Path = types.InputB
	cfg.Input.Select = 1
	u.ConfigureETL(1, cfg)

	if got := mem.Load(regEXISEL); got != 0xF04F {
		t.Fatalf("EXISEL = %#x, want 0xf04f", got)
	}
}

func TestConfigureIsIdempotent(t *testing.T) {
	once, twice := &Memory{}, &Memory{}
	dcfg := types.DispatchConfig{ServiceRequest: types.ServiceRequestOnTrigger}

	a := New(once)
	a.ConfigureETL(1, fallingOnP25())
	a.ConfigureOGU(0, dcfg)

	b := New(twice)
	for i := 0; i < 2; i++ {
		b.ConfigureETL(1, fallingOnP25())
		b.ConfigureOGU(0, dcfg)
	}
	if once.Snapshot() != twice.Snapshot() {
		t.Fatalf("register state differs:\n once  %#v\n twice %#v", once.Snapshot(), twice.Snapshot())
	}
}

func TestConfigureOGUEncoding(t *testing.T) {
	mem := &Memory{}
	u := New(mem)
	u.ConfigureOGU(2, types.DispatchConfig{
		ServiceRequest:         types.ServiceRequestOnTriggerAndPatternMatch,
		PeripheralTrigger:      types.PeripheralTrigger1,
		EnablePatternDetection: true,
		PatternInputs:          0x5,
	})
	want := uint32(1 | exoconGEEN | 2<<exoconGPShift | 0x5<<exoconIPENShift)
	if got := mem.Load(regEXOCON + 8); got != want {
		t.Fatalf("EXOCON2 = %#x, want %#x", got, want)
	}
	st := u.OGU(2)
	if st.ServiceRequest != types.ServiceRequestOnTriggerAndPatternMatch || st.PatternInputs != 0x5 || !st.PatternDetection {
		t.Fatalf("decoded %+v", st)
	}
}

func TestETLDecode(t *testing.T) {
	u := New(&Memory{})
	cfg := fallingOnP25()
	cfg.Source = types.SourceNotAOrB
	cfg.OutputChannel = types.OutputChannel3
	u.ConfigureETL(1, cfg)

	st := u.ETL(1)
	if st.SelectA != 2 || st.Source != types.SourceNotAOrB || st.Edge != types.EdgeFalling ||
		st.StatusFlag != types.StatusFlagHardware || !st.OutputTrigger || st.OutputChannel != types.OutputChannel3 {
		t.Fatalf("decoded %+v", st)
	}
}

func newSimP25(t *testing.T, cfg types.TriggerConfig) (*Sim, *int) {
	t.Helper()
	s := NewSim([]Wire{{Channel: 1, Path: types.InputA, Select: 2, Pin: "P2.5"}})
	s.ConfigureETL(1, cfg)
	s.ConfigureOGU(0, types.DispatchConfig{ServiceRequest: types.ServiceRequestOnTrigger})
	n := new(int)
	s.Route(0, func() { *n++ })
	return s, n
}

func TestSimFallingEdgeRaisesServiceRequest(t *testing.T) {
	s, n := newSimP25(t, fallingOnP25())

	if err := s.SetPin("P2.5", false); err != nil {
		t.Fatalf("SetPin: %v", err)
	}
	if *n != 1 {
		t.Fatalf("requests after falling edge = %d, want 1", *n)
	}
	if !s.ETLStatus(1) {
		t.Fatal("status flag not set by detected edge")
	}

	_ = s.SetPin("P2.5", true)
	if *n != 1 {
		t.Fatalf("rising edge raised a request (%d)", *n)
	}
	if s.ETLStatus(1) {
		t.Fatal("hardware-controlled flag not cleared by opposite edge")
	}

	// Same level again is not an edge.
	_ = s.SetPin("P2.5", true)
	if *n != 1 {
		t.Fatalf("repeated level raised a request (%d)", *n)
	}
}

func TestSimSoftwareFlagIsSticky(t *testing.T) {
	cfg := fallingOnP25()
	cfg.StatusFlag = types.StatusFlagSoftware
	s, _ := newSimP25(t, cfg)

	_ = s.SetPin("P2.5", false)
	_ = s.SetPin("P2.5", true)
	if !s.ETLStatus(1) {
		t.Fatal("software-controlled flag cleared by hardware")
	}
	s.ClearETLStatus(1)
	if s.ETLStatus(1) {
		t.Fatal("ClearETLStatus did not clear the flag")
	}
}

func TestSimTriggerDisabledDoesNotRaise(t *testing.T) {
	cfg := fallingOnP25()
	cfg.EnableOutputTrigger = false
	s, n := newSimP25(t, cfg)

	_ = s.SetPin("P2.5", false)
	if *n != 0 {
		t.Fatalf("request raised without PE (%d)", *n)
	}
	if !s.ETLStatus(1) {
		t.Fatal("flag should still latch without PE")
	}
}

func TestSimInvertedSource(t *testing.T) {
	cfg := fallingOnP25()
	cfg.Source = types.SourceNotA
	cfg.Edge = types.EdgeRising
	s, n := newSimP25(t, cfg)

	_ = s.SetPin("P2.5", false) // physical fall = logical rise
	if *n != 1 {
		t.Fatalf("requests = %d, want 1", *n)
	}
}

func TestSimPatternGating(t *testing.T) {
	s := NewSim([]Wire{
		{Channel: 0, Path: types.InputA, Select: 0, Pin: "P0.0"},
		{Channel: 1, Path: types.InputA, Select: 0, Pin: "P0.1"},
	})
	gate := types.TriggerConfig{Edge: types.EdgeFalling, StatusFlag: types.StatusFlagSoftware, OutputChannel: types.OutputChannel0}
	gate.Input.Channel = 0
	s.ConfigureETL(0, gate)

	trig := types.TriggerConfig{Edge: types.EdgeFalling, StatusFlag: types.StatusFlagHardware, EnableOutputTrigger: true}
	trig.Input.Channel = 1
	s.ConfigureETL(1, trig)
	s.ConfigureOGU(0, types.DispatchConfig{
		ServiceRequest:         types.ServiceRequestOnTriggerAndPatternMatch,
		EnablePatternDetection: true,
		PatternInputs:          1 << 0,
	})
	n := 0
	s.Route(0, func() { n++ })

	_ = s.SetPin("P0.1", false)
	if n != 0 {
		t.Fatal("request raised with pattern not matched")
	}
	_ = s.SetPin("P0.1", true)

	_ = s.SetPin("P0.0", false) // latch ETL0 flag
	if !s.PatternResult(0) {
		t.Fatal("pattern result not updated")
	}
	_ = s.SetPin("P0.1", false)
	if n != 1 {
		t.Fatalf("requests = %d, want 1 once pattern matches", n)
	}
}

func TestSimPeripheralPulse(t *testing.T) {
	s := NewSim(nil)
	s.ConfigureOGU(3, types.DispatchConfig{ServiceRequest: types.ServiceRequestOnTrigger, PeripheralTrigger: types.PeripheralTrigger2})
	n := 0
	s.Route(3, func() { n++ })

	s.PeripheralPulse(types.PeripheralTrigger1)
	s.PeripheralPulse(types.PeripheralTrigger2)
	if n != 1 {
		t.Fatalf("requests = %d, want 1", n)
	}
}

func TestSimUnknownPin(t *testing.T) {
	s := NewSim(nil)
	if err := s.SetPin("P9.9", false); !errors.Is(err, errcode.UnknownPin) {
		t.Fatalf("got %v, want unknown_pin", err)
	}
}
