package eru

import "eru-extint-go/types"

// Unit drives one ERU instance through its register file.
type Unit struct {
	r Registers
}

func New(r Registers) *Unit { return &Unit{r: r} }

// Registers returns the backing register file.
func (u *Unit) Registers() Registers { return u.r }

// ConfigureETL selects the input for ETL channel ch and rewrites its EXICON
// word. The status flag is cleared as a side effect. Channels are taken
// modulo 4; a channel not wired to cfg.Input is not detected.
func (u *Unit) ConfigureETL(ch uint8, cfg types.TriggerConfig) {
	ch &= 3
	shift := uint32(ch) * exiselBits
	sel := uint32(cfg.Input.Select & 3)
	if cfg.Input.Path == types.InputB {
		sel <<= 2
	}
	v := u.r.Load(regEXISEL)
	v = v&^(exiselMask<<shift) | sel<<shift
	u.r.Store(regEXISEL, v)

	u.r.Store(exicon(ch), encodeEXICON(cfg))
}

func encodeEXICON(cfg types.TriggerConfig) uint32 {
	var w uint32
	if cfg.EnableOutputTrigger {
		w |= exiconPE
	}
	if cfg.StatusFlag == types.StatusFlagHardware {
		w |= exiconLD
	}
	switch cfg.Edge {
	case types.EdgeRising:
		w |= exiconRE
	case types.EdgeFalling:
		w |= exiconFE
	case types.EdgeBoth:
		w |= exiconRE | exiconFE
	}
	w |= uint32(cfg.OutputChannel&3) << exiconOCSShift
	w |= uint32(cfg.Source&0xF) << exiconSSShift
	return w
}

// ConfigureOGU rewrites EXOCON for OGU channel ch.
func (u *Unit) ConfigureOGU(ch uint8, cfg types.DispatchConfig) {
	u.r.Store(exocon(ch), encodeEXOCON(cfg))
}

func encodeEXOCON(cfg types.DispatchConfig) uint32 {
	w := uint32(cfg.PeripheralTrigger) & exoconISSMask
	if cfg.EnablePatternDetection {
		w |= exoconGEEN
	}
	w |= uint32(cfg.ServiceRequest&3) << exoconGPShift
	w |= uint32(cfg.PatternInputs&0xF) << exoconIPENShift
	return w
}

// ETLStatus reports the status flag of ETL channel ch.
func (u *Unit) ETLStatus(ch uint8) bool {
	return u.r.Load(exicon(ch))&exiconFL != 0
}

// ClearETLStatus clears the status flag of ETL channel ch.
func (u *Unit) ClearETLStatus(ch uint8) {
	off := exicon(ch)
	u.r.Store(off, u.r.Load(off)&^exiconFL)
}

// PatternResult reports the pattern detection result of OGU channel ch.
func (u *Unit) PatternResult(ch uint8) bool {
	return u.r.Load(exocon(ch))&exoconPDR != 0
}

// ETLState is the decoded register content of one ETL channel.
type ETLState struct {
	SelectA, SelectB uint8
	Source           types.Source
	Edge             types.Edge
	StatusFlag       types.StatusFlagMode
	OutputTrigger    bool
	OutputChannel    types.OutputChannel
	Flag             bool
}

// ETL decodes the current configuration of ETL channel ch.
func (u *Unit) ETL(ch uint8) ETLState {
	ch &= 3
	w := u.r.Load(exicon(ch))
	sel := u.r.Load(regEXISEL) >> (uint32(ch) * exiselBits)

	st := ETLState{
		SelectA:       uint8(sel & 3),
		SelectB:       uint8(sel>>2) & 3,
		Source:        types.Source((w & exiconSSMask) >> exiconSSShift),
		OutputTrigger: w&exiconPE != 0,
		OutputChannel: types.OutputChannel((w & exiconOCSMask) >> exiconOCSShift),
		Flag:          w&exiconFL != 0,
	}
	if w&exiconLD != 0 {
		st.StatusFlag = types.StatusFlagHardware
	}
	switch w & (exiconRE | exiconFE) {
	case exiconRE:
		st.Edge = types.EdgeRising
	case exiconFE:
		st.Edge = types.EdgeFalling
	case exiconRE | exiconFE:
		st.Edge = types.EdgeBoth
	}
	return st
}

// OGUState is the decoded register content of one OGU channel.
type OGUState struct {
	ServiceRequest    types.ServiceRequest
	PeripheralTrigger types.PeripheralTrigger
	PatternDetection  bool
	PatternInputs     uint8
	PatternResult     bool
}

// OGU decodes the current configuration of OGU channel ch.
func (u *Unit) OGU(ch uint8) OGUState {
	w := u.r.Load(exocon(ch))
	return OGUState{
		ServiceRequest:    types.ServiceRequest((w & exoconGPMask) >> exoconGPShift),
		PeripheralTrigger: types.PeripheralTrigger(w & exoconISSMask),
		PatternDetection:  w&exoconGEEN != 0,
		PatternInputs:     uint8((w & exoconIPENMask) >> exoconIPENShift),
		PatternResult:     w&exoconPDR != 0,
	}
}
