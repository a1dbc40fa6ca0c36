// Package sim drives a grid through successive generations at a fixed
// cadence and publishes each one to a presenter.
package sim

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/model"
	"github.com/sheikhrachel/go-torus-life/utils"
)

// Presenter receives every completed generation. g is only valid for the
// duration of the call.
type Presenter interface {
	Present(generation int, g *model.Grid) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(generation int, g *model.Grid) error

func (f PresenterFunc) Present(generation int, g *model.Grid) error {
	return f(generation, g)
}

// Loop owns the current generation and advances it one step per tick.
type Loop struct {
	current    *model.Grid
	generation int

	engine         *model.StepEngine
	presenter      Presenter
	interval       time.Duration
	maxGenerations int
	stats          *utils.Stats
}

// Option configures a Loop.
type Option func(*Loop)

// WithInterval sets the delay between the start of consecutive steps.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) { l.interval = d }
}

// WithEngine sets the engine used to compute generations.
func WithEngine(e *model.StepEngine) Option {
	return func(l *Loop) { l.engine = e }
}

// WithPresenter sets where generations are published.
func WithPresenter(p Presenter) Option {
	return func(l *Loop) { l.presenter = p }
}

// WithMaxGenerations stops Run after n generations. 0 runs until cancelled.
func WithMaxGenerations(n int) Option {
	return func(l *Loop) { l.maxGenerations = n }
}

// WithStats records population and throughput after every step.
func WithStats(s *utils.Stats) Option {
	return func(l *Loop) { l.stats = s }
}

// NewLoop takes ownership of initial and returns a loop positioned at
// generation 0.
func NewLoop(initial *model.Grid, opts ...Option) (*Loop, error) {
	if initial == nil {
		return nil, errors.New("[NewLoop] initial grid is nil")
	}

	l := &Loop{
		current:  initial,
		interval: utils.DefaultInterval * time.Millisecond,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.engine == nil {
		l.engine = model.NewStepEngine(nil)
	}

	if l.interval < utils.MinInterval*time.Millisecond {
		return nil, errors.WithStack(&utils.ConfigurationError{
			Field:  "interval",
			Value:  l.interval,
			Reason: "must be at least 1ms",
		})
	}
	if l.maxGenerations < 0 {
		return nil, errors.WithStack(&utils.ConfigurationError{
			Field:  "max_generations",
			Value:  l.maxGenerations,
			Reason: "must not be negative",
		})
	}

	l.recordStats()
	return l, nil
}

func (l *Loop) recordStats() {
	if l.stats == nil {
		return
	}
	size := l.current.Size()
	l.stats.Update(l.generation, l.current.CountLivingCells(), size*size, time.Now())
}

// Current returns the current generation. Callers must not modify it or
// hold on to it across ticks.
func (l *Loop) Current() *model.Grid { return l.current }

// Generation returns the number of completed steps.
func (l *Loop) Generation() int { return l.generation }

// Engine returns the engine computing generations.
func (l *Loop) Engine() *model.StepEngine { return l.engine }

// Interval returns the configured step cadence.
func (l *Loop) Interval() time.Duration { return l.interval }

// Done reports whether the generation limit has been reached.
func (l *Loop) Done() bool {
	return l.maxGenerations > 0 && l.generation >= l.maxGenerations
}

// Publish sends the current generation to the presenter.
func (l *Loop) Publish() error {
	if l.presenter == nil {
		return nil
	}
	return errors.Wrapf(l.presenter.Present(l.generation, l.current),
		"[Publish] presenter failed at generation %d", l.generation)
}

// Tick computes the next generation, replaces the current one with it and
// publishes it. The replaced generation is returned to the engine's pool.
func (l *Loop) Tick() error {
	next := l.engine.Step(l.current)
	prev := l.current
	l.current = next
	l.generation++

	l.recordStats()

	err := l.Publish()
	l.engine.Recycle(prev)
	return err
}

// Run publishes generation 0 and then ticks once per interval until ctx is
// cancelled or the generation limit is reached. Cancellation is not an error.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Publish(); err != nil {
		return err
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for !l.Done() {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := l.Tick(); err != nil {
				return err
			}
		}
	}
	return nil
}
