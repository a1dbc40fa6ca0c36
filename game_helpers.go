package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-torus-life/model"
	"github.com/sheikhrachel/go-torus-life/sim"
	"github.com/sheikhrachel/go-torus-life/utils"
	"github.com/sheikhrachel/go-torus-life/view"
)

var errInterrupted = errors.New("interrupted")

// initializeGame builds the initial grid and the loop that owns it
func initializeGame(config utils.Config, presenter sim.Presenter, stats *utils.Stats) (*sim.Loop, error) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid, err := model.NewRandomGrid(config.MapSize, config.Probability, model.NewSource(config.Seed))
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create initial grid")
	}

	return sim.NewLoop(grid,
		sim.WithEngine(model.NewStepEngine(pool)),
		sim.WithInterval(config.IntervalDuration()),
		sim.WithPresenter(presenter),
		sim.WithMaxGenerations(config.MaxGenerations),
		sim.WithStats(stats),
	)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, loop *sim.Loop) {
	fmt.Printf("Grid: %dx%d | Interval: %v | Initial living cells: %d | Memory Pool: %v\n",
		config.MapSize, config.MapSize, loop.Interval(),
		loop.Current().CountLivingCells(), config.UseMemoryPool)
	fmt.Println("Press Ctrl+C to exit gracefully")
}

// displayFinalStats summarizes the run
func displayFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// runTerminal runs the loop until it finishes or the process is signalled
func runTerminal(ctx context.Context, loop *sim.Loop) error {
	eg, ctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(ctx)

	eg.Go(func() error {
		defer stop()
		return loop.Run(runCtx)
	})

	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			return errInterrupted
		case <-runCtx.Done():
			return nil
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errInterrupted) {
		return err
	}
	return nil
}

func run(config utils.Config) error {
	stats := utils.NewStats()

	if config.Window {
		if !view.Available() {
			return errors.New("[run] -window needs a binary built with -tags ebiten")
		}
		frame := &view.Frame{}
		loop, err := initializeGame(config, frame, stats)
		if err != nil {
			return err
		}
		return view.Run(loop, frame, config.Scale)
	}

	renderer := model.NewTerminalRenderer(os.Stdout, config.ClearScreen, stats)
	loop, err := initializeGame(config, renderer, stats)
	if err != nil {
		return err
	}

	displayGameInfo(config, loop)
	err = runTerminal(context.Background(), loop)
	displayFinalStats(stats)
	return err
}
