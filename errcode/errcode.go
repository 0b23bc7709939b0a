package errcode

// Code is a stable error identifier shared by the firmware and host tools.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Bring-up / board selection
	BringUpFailed Code = "bringup_failed"
	NoBoard       Code = "no_board"
	UnknownBoard  Code = "unknown_board"

	// Peripheral addressing
	UnknownChannel Code = "unknown_channel"
	UnknownIRQ     Code = "unknown_irq"
	UnknownPin     Code = "unknown_pin"

	// Dispatch lifecycle
	NotConfigured   Code = "not_configured"
	PriorityLocked  Code = "priority_locked"
	AlreadyEnabled  Code = "already_enabled"
	ChannelMismatch Code = "channel_mismatch"

	// Outputs and bench links
	OutputIO    Code = "output_io"
	InvalidFeed Code = "invalid_feed"
	FeedIO      Code = "feed_io"

	Error Code = "error" // generic fallback
)

// E keeps an operation name and a cause next to a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.X) match a wrapped code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// New returns an *E for op with code c.
func New(op string, c Code, msg string) error {
	return &E{C: c, Op: op, Msg: msg}
}

// Wrap attaches a code and op to a lower-level cause. Nil stays nil.
func Wrap(op string, c Code, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: c, Op: op, Msg: err.Error(), Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
