package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":              OK,
		"bringup_failed":  BringUpFailed,
		"no_board":        NoBoard,
		"unknown_board":   UnknownBoard,
		"unknown_channel": UnknownChannel,
		"unknown_irq":     UnknownIRQ,
		"not_configured":  NotConfigured,
		"priority_locked": PriorityLocked,
		"already_enabled": AlreadyEnabled,
		"invalid_feed":    InvalidFeed,
		"feed_io":         FeedIO,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestWrapKeepsCodeAndCause(t *testing.T) {
	cause := errors.New("nack")
	err := Wrap("led.expander", OutputIO, cause)
	if !errors.Is(err, OutputIO) {
		t.Fatalf("errors.Is(code) = false for %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause lost: %v", err)
	}
	if Of(err) != OutputIO {
		t.Fatalf("Of = %q", Of(err))
	}
	if got := err.Error(); got != "led.expander: output_io: nack" {
		t.Fatalf("Error() = %q", got)
	}
	if Wrap("x", Error, nil) != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil should map to ok")
	}
	if Of(NotConfigured) != NotConfigured {
		t.Fatal("bare code should map to itself")
	}
	if Of(errors.New("other")) != Error {
		t.Fatal("foreign error should map to error")
	}
	if Of(New("dispatch.enable", NotConfigured, "")) != NotConfigured {
		t.Fatal("E should map to its code")
	}
}
