// Package loop implements the watch-build-reload state machine.
package loop

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/hotloop/internal/core/domain"
	"go.trai.ch/hotloop/internal/core/ports"
)

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the real clock used between polls.
func WithClock(clock clockwork.Clock) Option {
	return func(l *Loop) { l.clock = clock }
}

// WithWake lets an external source cut the wait between polls short.
// Wakes only trigger an early poll; the detector still decides whether anything changed.
func WithWake(wake <-chan struct{}) Option {
	return func(l *Loop) { l.wake = wake }
}

// WithStateHook registers fn to observe every state transition.
func WithStateHook(fn func(domain.LoopState)) Option {
	return func(l *Loop) { l.hook = fn }
}

// Loop drives INITIAL_BUILD → WATCHING → (REBUILDING → WATCHING)* → STOPPED.
type Loop struct {
	root     string
	interval time.Duration
	detector ports.ChangeDetector
	builder  ports.Builder
	stop     ports.StopSignal
	logger   ports.Logger
	clock    clockwork.Clock
	wake     <-chan struct{}
	hook     func(domain.LoopState)

	mu    sync.Mutex
	state domain.LoopState
}

// New creates a Loop watching root every interval.
func New(
	root string,
	interval time.Duration,
	detector ports.ChangeDetector,
	builder ports.Builder,
	stop ports.StopSignal,
	logger ports.Logger,
	opts ...Option,
) *Loop {
	l := &Loop{
		root:     root,
		interval: interval,
		detector: detector,
		builder:  builder,
		stop:     stop,
		logger:   logger,
		clock:    clockwork.NewRealClock(),
		state:    domain.StateInitialBuild,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current state.
func (l *Loop) State() domain.LoopState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Run performs the initial build, records the snapshot and watches until a stop is
// requested or ctx is done. Build failures never end the loop.
func (l *Loop) Run(ctx context.Context) error {
	defer l.transition(domain.StateStopped)

	l.transition(domain.StateInitialBuild)
	l.builder.BuildAndRun(ctx)

	l.logger.Info("Populating initial file modification times...")
	if err := l.detector.Snapshot(l.root); err != nil {
		return err
	}

	l.logger.Info("Watching for changes in " + l.root + "...")
	l.transition(domain.StateWatching)

	for {
		if ctx.Err() != nil {
			return nil
		}

		l.poll(ctx)

		if l.stopRequested() {
			l.logger.Info("Exit signal detected. Exiting...")
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-l.clock.After(l.interval):
		case <-l.wake:
		}
	}
}

// poll rebuilds once for however many changes accumulated since the last poll.
func (l *Loop) poll(ctx context.Context) {
	changes, err := l.detector.Poll(l.root)
	if err != nil {
		l.logger.Error(err)
	}
	if !changes.Detected() {
		return
	}

	for _, c := range changes {
		l.logger.Info("Detected change in " + c.Path + " (" + c.Kind.String() + ").")
	}
	l.logger.Info("Rebuilding due to detected changes...")

	l.transition(domain.StateRebuilding)
	l.builder.BuildAndRun(ctx)
	l.transition(domain.StateWatching)
}

func (l *Loop) stopRequested() bool {
	requested, err := l.stop.Consume()
	if err != nil {
		l.logger.Error(err)
		return false
	}
	return requested
}

func (l *Loop) transition(next domain.LoopState) {
	l.mu.Lock()
	l.state = next
	l.mu.Unlock()

	if l.hook != nil {
		l.hook(next)
	}
}
