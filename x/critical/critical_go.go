//go:build !tinygo

// Package critical brackets short read-modify-write sequences that may race
// with interrupt handlers.
package critical

import "sync"

// State is the saved interrupt state returned by Enter.
type State uintptr

// On host builds handlers run on goroutines, so a process-wide mutex
// stands in for masking interrupts.
var mu sync.Mutex

func Enter() State {
	mu.Lock()
	return 0
}

func Exit(State) { mu.Unlock() }
