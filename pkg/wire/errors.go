package wire

import (
	"errors"
	"fmt"
)

// ErrOverflow indicates a frame exceeded the buffer capacity before
// its terminator and was discarded.
var ErrOverflow = errors.New("framing overflow, frame discarded")

// DecodeReason classifies command decode failures.
type DecodeReason int

const (
	// MalformedPayload means the frame is not valid JSON.
	MalformedPayload DecodeReason = iota
	// MissingField means the axisInfo key is absent.
	MissingField
	// TypeMismatch means axisInfo is not an array of integers.
	TypeMismatch
	// BadAxisCount means axisInfo does not hold exactly one value
	// per logical axis.
	BadAxisCount
)

var reasonNames = map[DecodeReason]string{
	MalformedPayload: "malformed payload",
	MissingField:     "missing field",
	TypeMismatch:     "type mismatch",
	BadAxisCount:     "bad axis count",
}

// String implements Stringer.
func (r DecodeReason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}

// DecodeError wraps a command decode failure. The cycle that hits it
// skips actuation entirely and surfaces the error as a diagnostic on
// the telemetry channel.
type DecodeError struct {
	Reason DecodeReason
	Detail string
}

// Error implements error.
func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("decode: %s", e.Reason)
	}
	return fmt.Sprintf("decode: %s: %s", e.Reason, e.Detail)
}

func decodeErr(reason DecodeReason, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
