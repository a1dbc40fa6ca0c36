//go:build ebiten

package view

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/sim"
)

const tps = 60

// Window adapts a sim.Loop to the ebiten.Game interface. The loop is
// advanced from Update, so stepping and drawing share one goroutine.
type Window struct {
	loop    *sim.Loop
	frame   *Frame
	cadence *sim.FixedStep
	canvas  *ebiten.Image
	scale   int
	paused  bool
}

// NewWindow builds a window for loop. frame must be the loop's presenter.
func NewWindow(loop *sim.Loop, frame *Frame, scale int) *Window {
	if scale <= 0 {
		scale = 1
	}
	return &Window{
		loop:    loop,
		frame:   frame,
		cadence: sim.NewFixedStep(loop.Interval()),
		scale:   scale,
	}
}

// Update handles input and advances the loop when a step is due.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.paused = !w.paused
		if !w.paused {
			w.cadence.Reset()
		}
	}

	if w.loop.Done() {
		return ebiten.Termination
	}
	if w.paused {
		return nil
	}
	if w.cadence.ShouldStep(time.Now()) {
		return w.loop.Tick()
	}
	return nil
}

// Draw blits the most recent frame.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.frame.Size == 0 {
		return
	}
	if w.canvas == nil {
		w.canvas = ebiten.NewImage(w.frame.Size, w.frame.Size)
	}
	w.canvas.WritePixels(w.frame.Pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.canvas, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Gen: %d  Living: %d", w.frame.Generation, w.frame.Living))
}

// Layout returns the logical screen size.
func (w *Window) Layout(int, int) (int, int) {
	n := w.loop.Current().Size() * w.scale
	return n, n
}

// Run opens the window and blocks until it is closed.
func Run(loop *sim.Loop, frame *Frame, scale int) error {
	if err := loop.Publish(); err != nil {
		return err
	}

	win := NewWindow(loop, frame, scale)
	size := loop.Current().Size() * win.scale

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(size, size)

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Available reports whether this build can open a window.
func Available() bool { return true }
