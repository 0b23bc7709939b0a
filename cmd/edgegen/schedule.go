package main

import "eru-extint-go/x/conv"

// bursts is the repeating pattern of pulse counts per burst.
var bursts = [...]uint32{1, 2, 3, 5}

// generator tracks what has been emitted so far.
type generator struct {
	i     int
	total uint32
}

func (g *generator) next() uint32 {
	n := bursts[g.i%len(bursts)]
	g.i++
	g.total += n
	return n
}

// expectedLED is the level the target LED should show after every pulse so
// far has been serviced, starting from off.
func (g *generator) expectedLED() bool { return g.total%2 == 1 }

// appendLine formats one burst as an edge feed line.
func appendLine(dst []byte, n uint32) []byte {
	dst = append(dst, 'P', ' ')
	dst = conv.AppendUint(dst, uint64(n))
	return append(dst, '\r', '\n')
}
