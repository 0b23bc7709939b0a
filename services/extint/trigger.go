package extint

import (
	"eru-extint-go/drivers/eru"
	"eru-extint-go/types"
)

// Trigger is the edge-detection front end for one external signal: an ETL
// channel and the record it is programmed with.
type Trigger struct {
	eru *eru.Unit
	ch  uint8
	cfg types.TriggerConfig
}

func NewTrigger(u *eru.Unit, ch uint8, cfg types.TriggerConfig) *Trigger {
	return &Trigger{eru: u, ch: ch, cfg: cfg}
}

// Configure programs the channel. Repeating it reproduces the same state.
// A channel that is not wired to the record's input never detects an edge.
func (t *Trigger) Configure() { t.eru.ConfigureETL(t.ch, t.cfg) }

func (t *Trigger) Config() types.TriggerConfig { return t.cfg }
func (t *Trigger) Status() bool                { return t.eru.ETLStatus(t.ch) }
func (t *Trigger) ClearStatus()                { t.eru.ClearETLStatus(t.ch) }
