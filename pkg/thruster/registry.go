package thruster

import (
	"github.com/golang/glog"

	fx "github.com/marinerobo/rov.go/pkg/framework"
)

// Channel identifies one physical actuator output.
type Channel int

// Actuator channels.
const (
	ChannelLeftFront Channel = iota
	ChannelRightFront
	ChannelLeftUp
	ChannelRightUp
)

var channelNames = map[Channel]string{
	ChannelLeftFront:  "leftFront",
	ChannelRightFront: "rightFront",
	ChannelLeftUp:     "leftUp",
	ChannelRightUp:    "rightUp",
}

// String implements Stringer.
func (c Channel) String() string {
	if name, ok := channelNames[c]; ok {
		return name
	}
	return "unknown"
}

// PulseWriter is the actuator driver boundary. Implementations write
// one pulse width to one physical channel.
type PulseWriter interface {
	WritePulseWidth(Channel, PulseWidth) error
}

// PulseWriterFunc is the func form of PulseWriter.
type PulseWriterFunc func(Channel, PulseWidth) error

// WritePulseWidth implements PulseWriter.
func (f PulseWriterFunc) WritePulseWidth(ch Channel, p PulseWidth) error {
	return f(ch, p)
}

// Registry owns the four actuator channels and their last applied
// state. It is constructed once at startup and passed by reference
// to the control pipeline; channels are written at most once per
// cycle and read back only for telemetry echo.
type Registry struct {
	driver  PulseWriter
	applied Outputs
}

// NewRegistry creates a Registry over a driver with all channels
// at rest.
func NewRegistry(driver PulseWriter) *Registry {
	return &Registry{
		driver:  driver,
		applied: NeutralOutputs(),
	}
}

// Apply writes all four channels. Every channel is attempted even if
// an earlier write fails; the recorded state reflects only the
// writes that succeeded.
func (r *Registry) Apply(out Outputs) error {
	glog.V(2).Infof("apply lf=%d rf=%d lu=%d ru=%d",
		out.LeftFront, out.RightFront, out.LeftUp, out.RightUp)
	var errs fx.AggregatedError
	writes := []struct {
		ch    Channel
		value PulseWidth
		dst   *PulseWidth
	}{
		{ChannelLeftFront, out.LeftFront, &r.applied.LeftFront},
		{ChannelRightFront, out.RightFront, &r.applied.RightFront},
		{ChannelLeftUp, out.LeftUp, &r.applied.LeftUp},
		{ChannelRightUp, out.RightUp, &r.applied.RightUp},
	}
	for _, w := range writes {
		if err := r.driver.WritePulseWidth(w.ch, w.value); err != nil {
			errs.Add(err)
			continue
		}
		*w.dst = w.value
	}
	return errs.Aggregate()
}

// ApplyNeutral commands all channels to stop. Used at startup so the
// ESCs see an armed/stopped signal before the loop accepts frames.
func (r *Registry) ApplyNeutral() error {
	return r.Apply(NeutralOutputs())
}

// Applied returns the last pulse widths written successfully.
func (r *Registry) Applied() Outputs {
	return r.applied
}
