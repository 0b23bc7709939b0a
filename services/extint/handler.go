package extint

import "eru-extint-go/drivers/led"

// EdgeHandler is the work done for each serviced edge.
type EdgeHandler struct {
	led led.Output
	// clear is set when the trigger latches its status flag in software;
	// the flag is cleared on every service.
	clear func()
	mon   *Monitor
}

// OnExternalEdge toggles the LED. It shares no state with the idle loop.
func (h *EdgeHandler) OnExternalEdge() {
	h.led.Toggle()
	if h.clear != nil {
		h.clear()
	}
	if h.mon != nil {
		h.mon.note(h.led.Get())
	}
}
