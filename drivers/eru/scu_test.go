package eru

import (
	"errors"
	"testing"

	"eru-extint-go/errcode"
)

// fakeSCU models the clear registers: writing a bit to PRCLR0 or CGATCLR0
// clears it in the matching status word, unless stuck.
type fakeSCU struct {
	prstat, cgatstat uint32
	stuck            bool
	writes           []uintptr
}

func (f *fakeSCU) Load(off uintptr) uint32 {
	if off == scuPRSTAT0 {
		return f.prstat
	}
	return 0
}

func (f *fakeSCU) Store(off uintptr, v uint32) {
	f.writes = append(f.writes, off)
	switch off {
	case scuPRCLR0:
		if !f.stuck {
			f.prstat &^= v
		}
	case scuCGATCLR0:
		f.cgatstat &^= v
	}
}

func TestReleaseERU1UngatesThenDeassertsReset(t *testing.T) {
	scu := &fakeSCU{prstat: scuERU1 | 1, cgatstat: scuERU1 | 1}
	if err := ReleaseERU1(scu); err != nil {
		t.Fatalf("ReleaseERU1: %v", err)
	}
	if scu.prstat != 1 || scu.cgatstat != 1 {
		t.Fatalf("prstat=%#x cgatstat=%#x, other peripherals must stay untouched", scu.prstat, scu.cgatstat)
	}
	if len(scu.writes) != 2 || scu.writes[0] != scuCGATCLR0 || scu.writes[1] != scuPRCLR0 {
		t.Fatalf("write order %#x", scu.writes)
	}
}

func TestReleaseERU1ReportsStuckReset(t *testing.T) {
	scu := &fakeSCU{prstat: scuERU1, stuck: true}
	if err := ReleaseERU1(scu); !errors.Is(err, errcode.BringUpFailed) {
		t.Fatalf("want bringup_failed, got %v", err)
	}
}
