// Package edgefeed reads edge scripts for the simulated input pin. A feed is
// line oriented:
//
//	F      drive the pin low
//	R      drive the pin high
//	P [n]  n falling-then-rising pulses (default 1)
//	# ...  comment
//
// The bench generator (cmd/edgegen) emits the same lines on its UART.
package edgefeed

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"eru-extint-go/errcode"
)

type Op uint8

const (
	Fall Op = iota
	Rise
	Pulse
)

func (o Op) String() string {
	switch o {
	case Fall:
		return "fall"
	case Rise:
		return "rise"
	case Pulse:
		return "pulse"
	}
	return "unknown"
}

// Step is one parsed feed line.
type Step struct {
	Op    Op
	Count int
	Line  int
}

// Reader yields the steps of a feed in order.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Next returns the next step, or io.EOF once the feed is exhausted.
func (r *Reader) Next() (Step, error) {
	for r.sc.Scan() {
		r.line++
		s := strings.TrimSpace(r.sc.Text())
		if s == "" || s[0] == '#' {
			continue
		}
		return parse(s, r.line)
	}
	if err := r.sc.Err(); err != nil {
		return Step{}, err
	}
	return Step{}, io.EOF
}

func parse(s string, line int) (Step, error) {
	f := strings.Fields(s)
	st := Step{Count: 1, Line: line}
	switch strings.ToUpper(f[0]) {
	case "F":
		st.Op = Fall
	case "R":
		st.Op = Rise
	case "P":
		st.Op = Pulse
		if len(f) > 1 {
			n, err := strconv.Atoi(f[1])
			if err != nil || n < 0 {
				return Step{}, invalid(line, "bad pulse count "+strconv.Quote(f[1]))
			}
			st.Count = n
			f = f[1:]
		}
	default:
		return Step{}, invalid(line, "unknown op "+strconv.Quote(f[0]))
	}
	if len(f) > 1 {
		return Step{}, invalid(line, "trailing fields")
	}
	return st, nil
}

func invalid(line int, msg string) error {
	return errcode.New("edgefeed.parse", errcode.InvalidFeed, "line "+strconv.Itoa(line)+": "+msg)
}

// Pin is the input a feed drives; *eru.Sim satisfies it.
type Pin interface {
	SetPin(pin string, level bool) error
}

// Stats counts the level transitions a replay requested.
type Stats struct {
	Falls int
	Rises int
}

// Replay applies every step of r to pin until the feed ends or ctx is
// cancelled. A clean end of feed returns a nil error.
func Replay(ctx context.Context, r io.Reader, p Pin, pin string) (Stats, error) {
	var st Stats
	fr := NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		step, err := fr.Next()
		if err == io.EOF {
			return st, nil
		}
		if err != nil {
			return st, err
		}
		if err := apply(p, pin, step, &st); err != nil {
			return st, err
		}
	}
}

func apply(p Pin, pin string, s Step, st *Stats) error {
	switch s.Op {
	case Fall:
		st.Falls++
		return p.SetPin(pin, false)
	case Rise:
		st.Rises++
		return p.SetPin(pin, true)
	}
	for i := 0; i < s.Count; i++ {
		st.Falls++
		if err := p.SetPin(pin, false); err != nil {
			return err
		}
		st.Rises++
		if err := p.SetPin(pin, true); err != nil {
			return err
		}
	}
	return nil
}
