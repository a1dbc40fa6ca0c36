package sim

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/model"
	"github.com/sheikhrachel/go-torus-life/utils"
)

func blinker(t *testing.T) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(10)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(5, 4, model.Alive)
	g.Set(5, 5, model.Alive)
	g.Set(5, 6, model.Alive)
	return g
}

type recorder struct {
	generations []int
	frames      []*model.Grid
}

func (r *recorder) Present(generation int, g *model.Grid) error {
	r.generations = append(r.generations, generation)
	r.frames = append(r.frames, g.Clone())
	return nil
}

func TestNewLoopRejectsBadConfiguration(t *testing.T) {
	var cfgErr *utils.ConfigurationError

	_, err := NewLoop(blinker(t), WithInterval(0))
	if !errors.As(err, &cfgErr) || cfgErr.Field != "interval" {
		t.Fatalf("interval 0: error = %v, want interval ConfigurationError", err)
	}

	_, err = NewLoop(blinker(t), WithMaxGenerations(-1))
	if !errors.As(err, &cfgErr) || cfgErr.Field != "max_generations" {
		t.Fatalf("max generations -1: error = %v", err)
	}

	if _, err = NewLoop(nil); err == nil {
		t.Fatal("nil initial grid must be rejected")
	}

	l, err := NewLoop(blinker(t))
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	if l.Interval() != 250*time.Millisecond {
		t.Fatalf("default interval = %v", l.Interval())
	}
}

func TestTickReplacesAndPublishes(t *testing.T) {
	initial := blinker(t)
	want := initial.Clone()
	rec := &recorder{}

	l, err := NewLoop(initial, WithPresenter(rec))
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	for i := 1; i <= 4; i++ {
		before := l.Current()
		if err = l.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
		if l.Current() == before {
			t.Fatal("Tick must replace the current grid")
		}
		if l.Generation() != i {
			t.Fatalf("generation = %d, want %d", l.Generation(), i)
		}
		want = model.Step(want)
		if !l.Current().Equal(want) {
			t.Fatalf("generation %d:\n%s\nwant\n%s", i, l.Current(), want)
		}
	}

	if len(rec.generations) != 4 || rec.generations[0] != 1 || rec.generations[3] != 4 {
		t.Fatalf("published generations = %v", rec.generations)
	}
	if rec.frames[0].Equal(rec.frames[1]) {
		t.Fatal("blinker frames must alternate")
	}
	if !rec.frames[0].Equal(rec.frames[2]) {
		t.Fatal("blinker must have period 2")
	}
}

func TestTickWithPooledEngine(t *testing.T) {
	plain, err := NewLoop(blinker(t))
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}
	pooled, err := NewLoop(blinker(t), WithEngine(model.NewStepEngine(model.NewGridPool())))
	if err != nil {
		t.Fatalf("NewLoop: %v", err)
	}

	for range 6 {
		if err = plain.Tick(); err != nil {
			t.Fatal(err)
		}
		if err = pooled.Tick(); err != nil {
			t.Fatal(err)
		}
		if !plain.Current().Equal(pooled.Current()) {
			t.Fatal("pooled loop diverged")
		}
	}
}

func TestTickKeepsRepublishingStillLife(t *testing.T) {
	g, err := model.NewGrid(10)
	if err != nil {
		t.Fatal(err)
	}
	for _, rc := range [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}} {
		g.Set(rc[0], rc[1], model.Alive)
	}
	rec := &recorder{}
	l, err := NewLoop(g.Clone(), WithPresenter(rec))
	if err != nil {
		t.Fatal(err)
	}

	for range 5 {
		if err = l.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	if len(rec.frames) != 5 {
		t.Fatalf("published %d frames, want 5", len(rec.frames))
	}
	for _, f := range rec.frames {
		if !f.Equal(g) {
			t.Fatal("still life changed")
		}
	}
}

func TestTickReturnsPresenterError(t *testing.T) {
	boom := errors.New("window gone")
	l, err := NewLoop(blinker(t), WithPresenter(PresenterFunc(func(int, *model.Grid) error {
		return boom
	})))
	if err != nil {
		t.Fatal(err)
	}

	if err = l.Tick(); errors.Cause(err) != boom {
		t.Fatalf("Tick error = %v, want %v", err, boom)
	}
	if l.Generation() != 1 {
		t.Fatal("the step must complete even when publishing fails")
	}
}

func TestRunStopsAtMaxGenerations(t *testing.T) {
	rec := &recorder{}
	stats := utils.NewStats()
	l, err := NewLoop(blinker(t),
		WithInterval(time.Millisecond),
		WithPresenter(rec),
		WithMaxGenerations(5),
		WithStats(stats),
	)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = l.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !l.Done() || l.Generation() != 5 {
		t.Fatalf("generation = %d, want 5", l.Generation())
	}
	want := []int{0, 1, 2, 3, 4, 5}
	if len(rec.generations) != len(want) {
		t.Fatalf("published generations = %v, want %v", rec.generations, want)
	}
	for i, g := range want {
		if rec.generations[i] != g {
			t.Fatalf("published generations = %v, want %v", rec.generations, want)
		}
	}
	if stats.TotalGenerations != 5 || stats.LivingCells != 3 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	l, err := NewLoop(blinker(t), WithInterval(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err = <-done:
		if err != nil {
			t.Fatalf("Run after cancel: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestRunFirstFrameShowsInitialPopulation(t *testing.T) {
	var (
		buf   bytes.Buffer
		stats = utils.NewStats()
	)
	l, err := NewLoop(blinker(t),
		WithInterval(time.Millisecond),
		WithPresenter(model.NewTerminalRenderer(&buf, false, stats)),
		WithMaxGenerations(1),
		WithStats(stats),
	)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalGenerations != 0 || stats.LivingCells != 3 {
		t.Fatalf("stats before the first tick = %+v", stats)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = l.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	first := strings.SplitN(buf.String(), "\n", 2)[0]
	if !strings.HasPrefix(first, "Gen: 0 | Living: 3 | Density: 3.0%") {
		t.Fatalf("first status line = %q", first)
	}
}
