// Package thruster resolves operator axis intents into pulse-width
// commands for the four propulsion ESCs.
package thruster

// PulseWidth is an ESC command in microseconds.
type PulseWidth int

// Safe actuation range. ESCs treat PulseNeutral as stop.
const (
	PulseMin     PulseWidth = 1000
	PulseNeutral PulseWidth = 1500
	PulseMax     PulseWidth = 2000
)

// Clamp bounds a pulse width to the safe actuation range.
func (p PulseWidth) Clamp() PulseWidth {
	if p < PulseMin {
		return PulseMin
	}
	if p > PulseMax {
		return PulseMax
	}
	return p
}

// Logical control axes, in wire order of the axisInfo array.
const (
	AxisForwardBackward int = iota
	AxisLeft
	AxisRight
	AxisAscendDescend
	AxisPitchLeft
	AxisPitchRight

	// AxisCount is the number of logical axes in a command frame.
	AxisCount
)

// CommandFrame is one decoded operator command: a pulse-width intent
// per logical axis. It is immutable once decoded and is consumed
// within the same cycle.
type CommandFrame [AxisCount]PulseWidth

// NeutralCommand returns a frame with every axis at rest.
func NeutralCommand() CommandFrame {
	var f CommandFrame
	for i := range f {
		f[i] = PulseNeutral
	}
	return f
}

// AxisInfo returns the frame as a plain int slice in wire order.
func (f CommandFrame) AxisInfo() []int {
	vals := make([]int, AxisCount)
	for i, p := range f {
		vals[i] = int(p)
	}
	return vals
}
