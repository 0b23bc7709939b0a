//go:build tinygo

// Package critical brackets short read-modify-write sequences that may race
// with interrupt handlers.
package critical

import "runtime/interrupt"

// State is the saved interrupt state returned by Enter.
type State = interrupt.State

// Enter masks interrupts and returns the previous state.
func Enter() State { return interrupt.Disable() }

// Exit restores the interrupt state saved by Enter.
func Exit(s State) { interrupt.Restore(s) }
