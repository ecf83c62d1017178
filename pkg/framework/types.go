package framework

import (
	"context"
	"time"
)

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable defines a generic interface for background runners.
type Runnable interface {
	Run(context.Context) error
}

// Controller defines the abstract controlling logic invoked
// once per loop iteration.
type Controller interface {
	Control(ControlContext) error
}

// TimeSource provides the time for controlling logic.
type TimeSource interface {
	Time() time.Time
}

// ControlContext provides the context of current control iteration.
type ControlContext interface {
	TimeSource
	// Context retrieves context.Context.
	Context() context.Context
	// Stage gets the pipeline stage being executed.
	Stage() int
	// MarkProgress records that this iteration consumed input or
	// produced output. Iterations with no progress invoke the
	// registered IdleObservers after the last stage.
	MarkProgress()
}

// Pipeline stages, executed in order within one iteration.
const (
	// StageSense polls inputs (serial bytes, sensors).
	StageSense int = iota
	// StageControl decodes commands and resolves actuator intents.
	StageControl
	// StageActuate drives actuator outputs.
	StageActuate
	// StagePost emits telemetry and diagnostics.
	StagePost

	// Stages is the total number of pipeline stages.
	Stages
)

// IdleObserver is invoked after iterations that made no progress.
// It replaces ad-hoc busy-wait hooks (status LEDs, heartbeats) and
// must not block.
type IdleObserver interface {
	Idle(ControlContext)
}

// IdleFunc is the func form of IdleObserver.
type IdleFunc func(ControlContext)

// Idle implements IdleObserver.
func (f IdleFunc) Idle(cc ControlContext) {
	f(cc)
}

// RunnableFunc is the func form of Runnable.
type RunnableFunc func(context.Context) error

// Run implements Runnable.
func (f RunnableFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// ControlFunc defines the func form of Controller.
type ControlFunc func(ControlContext) error

// Control implements Controller.
func (f ControlFunc) Control(cc ControlContext) error {
	return f(cc)
}
