package framework

import (
	"context"
	"log"
	"time"

	"github.com/golang/glog"
)

// Loop evaluates the control pipeline once per tick. All controllers
// run on the loop goroutine; Runnables (byte pumps etc.) run in the
// background and communicate through non-blocking polls.
type Loop struct {
	Interval time.Duration

	stages  [Stages][]Controller
	idlers  []IdleObserver
	runners []Runnable
}

// LoopAdder provides specific logic to add components to loop.
type LoopAdder interface {
	AddToLoop(*Loop)
}

// NewLoop creates a Loop.
func NewLoop() *Loop {
	return &Loop{Interval: 100 * time.Millisecond}
}

// Add adds LoopAdders.
func (l *Loop) Add(adders ...LoopAdder) *Loop {
	for _, adder := range adders {
		adder.AddToLoop(l)
	}
	return l
}

// AddController registers controllers at a pipeline stage.
func (l *Loop) AddController(stage int, ctls ...Controller) *Loop {
	l.stages[stage] = append(l.stages[stage], ctls...)
	for _, ctl := range ctls {
		if runner, ok := ctl.(Runnable); ok {
			l.runners = append(l.runners, runner)
		}
	}
	return l
}

// AddRunnable adds Runnable implementations.
func (l *Loop) AddRunnable(runnables ...Runnable) *Loop {
	l.runners = append(l.runners, runnables...)
	return l
}

// AddIdleObserver registers observers for no-progress iterations.
func (l *Loop) AddIdleObserver(obs ...IdleObserver) *Loop {
	l.idlers = append(l.idlers, obs...)
	return l
}

// Run implements Runnable.
func (l *Loop) Run(ctx context.Context) error {
	runner := NewRunnerWith(ctx)
	runner.Go(l.runners...)
	defer runner.Wait()

	interval := l.Interval
	if interval == 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.RunIteration(ctx)
		}
	}
}

// RunOrFail is intended to be used in main to simply run the loop.
func (l *Loop) RunOrFail() {
	if err := l.Run(context.Background()); err != nil && err != context.Canceled {
		log.Fatalln(err)
	}
}

// RunIteration evaluates all pipeline stages once. Exposed so tests
// can drive the pipeline without a ticker.
func (l *Loop) RunIteration(ctx context.Context) {
	iter := &loopIteration{ctx: ctx, time: time.Now()}
	for i := 0; i < Stages; i++ {
		iter.stage = i
		for _, ctl := range l.stages[i] {
			if err := ctl.Control(iter); err != nil {
				glog.Errorf("controller error: %v", err)
			}
		}
	}
	if !iter.progressed {
		for _, obs := range l.idlers {
			obs.Idle(iter)
		}
	}
}

type loopIteration struct {
	ctx        context.Context
	time       time.Time
	stage      int
	progressed bool
}

func (t *loopIteration) Context() context.Context {
	return t.ctx
}

func (t *loopIteration) Time() time.Time {
	return t.time
}

func (t *loopIteration) Stage() int {
	return t.stage
}

func (t *loopIteration) MarkProgress() {
	t.progressed = true
}
