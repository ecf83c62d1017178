package thruster

// Outputs holds the resolved pulse width for each physical actuator
// channel.
type Outputs struct {
	LeftFront  PulseWidth
	RightFront PulseWidth
	LeftUp     PulseWidth
	RightUp    PulseWidth
}

// NeutralOutputs returns all channels at rest.
func NeutralOutputs() Outputs {
	return Outputs{
		LeftFront:  PulseNeutral,
		RightFront: PulseNeutral,
		LeftUp:     PulseNeutral,
		RightUp:    PulseNeutral,
	}
}

// Map resolves the six logical axes onto the four actuator channels.
//
// Each actuator pair serves two axes: the front pair serves
// forward/backward (primary) and left/right turning (secondary); the
// up pair serves ascend/descend (primary) and pitch (secondary). A
// pair follows its primary axis unless the primary is at
// PulseNeutral, in which case the per-side secondary values take
// over. When both are non-neutral the primary wins and the secondary
// intent is dropped for the cycle. All outputs are clamped to
// [PulseMin, PulseMax].
func Map(f CommandFrame) Outputs {
	var out Outputs
	out.LeftFront, out.RightFront = resolvePair(
		f[AxisForwardBackward], f[AxisLeft], f[AxisRight])
	out.LeftUp, out.RightUp = resolvePair(
		f[AxisAscendDescend], f[AxisPitchLeft], f[AxisPitchRight])
	return out
}

func resolvePair(primary, secLeft, secRight PulseWidth) (left, right PulseWidth) {
	if primary == PulseNeutral {
		return secLeft.Clamp(), secRight.Clamp()
	}
	p := primary.Clamp()
	return p, p
}
