//go:build !rp2040

// Command edgegen prints the bench generator's burst schedule as an edge
// feed, for piping into "erusim run --feed -" without hardware.
package main

import (
	"bufio"
	"flag"
	"os"

	"eru-extint-go/x/logx"
)

func main() {
	count := flag.Int("bursts", 4, "number of bursts to print")
	flag.Parse()

	w := bufio.NewWriter(os.Stdout)
	var (
		g   generator
		buf [16]byte
	)
	for i := 0; i < *count; i++ {
		if _, err := w.Write(appendLine(buf[:0], g.next())); err != nil {
			logx.Warn("edgegen:", err)
			os.Exit(1)
		}
	}
	if err := w.Flush(); err != nil {
		logx.Warn("edgegen:", err)
		os.Exit(1)
	}
	logx.Info("edgegen: expected led", g.expectedLED())
}
