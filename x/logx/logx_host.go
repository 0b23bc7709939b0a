//go:build !tinygo

// Package logx is the project's line logger: "Info:"/"Warn:" prefixed
// lines, written through fmt on host builds and println on MCU builds.
package logx

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
)

// SetOutput redirects log lines; nil discards them.
func SetOutput(w io.Writer) {
	mu.Lock()
	if w == nil {
		w = io.Discard
	}
	output = w
	mu.Unlock()
}

func Info(a ...any) { line("Info:", a) }
func Warn(a ...any) { line("Warn:", a) }

func line(prefix string, a []any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(output, append([]any{prefix}, a...)...)
}
