// Package vehicle wires the command-and-telemetry pipeline of the
// thruster controller into the control loop.
package vehicle

import (
	"context"
	"io"
	"time"

	"github.com/golang/glog"

	fx "github.com/marinerobo/rov.go/pkg/framework"
	"github.com/marinerobo/rov.go/pkg/telemetry"
	"github.com/marinerobo/rov.go/pkg/thruster"
	"github.com/marinerobo/rov.go/pkg/wire"
)

// Vehicle is the thruster controller: it assembles command frames
// from the serial byte stream, resolves them onto the actuator
// channels and emits one telemetry frame per cycle.
type Vehicle struct {
	Source    *ByteSource
	Assembler *wire.Assembler
	Registry  *thruster.Registry
	Encoder   *telemetry.Encoder
	Sampler   telemetry.AnalogSampler

	ArmDelay time.Duration

	lastCmd thruster.CommandFrame
	pending *thruster.CommandFrame
}

// New creates a Vehicle over a serial channel, an actuator driver
// and an analog sampler, with the supplied configuration.
func New(conf *Config, rw io.ReadWriter, driver thruster.PulseWriter, sampler telemetry.AnalogSampler) *Vehicle {
	enc := telemetry.NewEncoder(rw)
	enc.ADC = telemetry.ADC{
		FullScale:     conf.ADCFullScale,
		RefMillivolts: conf.ADCRefMillivolts,
	}
	return &Vehicle{
		Source:    NewByteSource(rw, conf.BufferCapacity),
		Assembler: wire.NewAssembler(conf.BufferCapacity),
		Registry:  thruster.NewRegistry(driver),
		Encoder:   enc,
		Sampler:   sampler,
		ArmDelay:  conf.ArmDelay,
		lastCmd:   thruster.NeutralCommand(),
	}
}

// AddToLoop implements LoopAdder.
func (v *Vehicle) AddToLoop(l *fx.Loop) {
	l.AddRunnable(fx.NamedRun(v.Source.Name(), v.Source))
	l.AddController(fx.StageControl, fx.ControlFunc(v.pollCommands))
	l.AddController(fx.StageActuate, fx.ControlFunc(v.actuate))
	l.AddController(fx.StagePost, fx.ControlFunc(v.emitTelemetry))
}

// Arm holds all channels at neutral for the arm delay so the ESCs
// recognize a stopped signal before the loop accepts frames. Runs
// once, outside the steady-state loop.
func (v *Vehicle) Arm(ctx context.Context) error {
	if err := v.Registry.ApplyNeutral(); err != nil {
		return err
	}
	if v.ArmDelay <= 0 {
		return nil
	}
	glog.Infof("arming, holding neutral for %v", v.ArmDelay)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(v.ArmDelay):
		return nil
	}
}

// pollCommands drains the bytes currently available, reassembles
// frames and decodes them. Decode and framing errors skip actuation
// for the cycle and surface as diagnostics on the telemetry channel;
// they never stop the loop.
func (v *Vehicle) pollCommands(cc fx.ControlContext) error {
	for {
		b, ok := v.Source.Poll()
		if !ok {
			return nil
		}
		cc.MarkProgress()
		switch v.Assembler.Feed(b) {
		case wire.FrameComplete:
			cmd, err := wire.DecodeCommand(v.Assembler.Bytes())
			if err != nil {
				v.diagnose(err)
				continue
			}
			frame := cmd
			v.pending = &frame
		case wire.FrameOverflow:
			v.diagnose(wire.ErrOverflow)
		}
	}
}

// actuate applies the most recent decoded command, if any arrived
// this cycle. Channels are untouched on cycles without a valid
// command.
func (v *Vehicle) actuate(cc fx.ControlContext) error {
	if v.pending == nil {
		return nil
	}
	cmd := *v.pending
	v.pending = nil
	if err := v.Registry.Apply(thruster.Map(cmd)); err != nil {
		return err
	}
	v.lastCmd = cmd
	return nil
}

// emitTelemetry reads the analog sensor and writes one telemetry
// frame, every cycle.
func (v *Vehicle) emitTelemetry(cc fx.ControlContext) error {
	raw, err := v.Sampler.ReadSample()
	if err != nil {
		return err
	}
	return v.Encoder.Encode(raw, v.lastCmd)
}

// LastCommand returns the last command applied to the actuators.
func (v *Vehicle) LastCommand() thruster.CommandFrame {
	return v.lastCmd
}

func (v *Vehicle) diagnose(err error) {
	glog.Errorf("command rejected: %v", err)
	if werr := v.Encoder.EncodeDiagnostic(err); werr != nil {
		glog.Errorf("diagnostic write failed: %v", werr)
	}
}
