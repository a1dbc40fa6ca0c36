package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus-life/utils"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws each published generation as text
type TerminalRenderer struct {
	out         io.Writer
	clearScreen bool
	stats       *utils.Stats
}

// NewTerminalRenderer returns a renderer writing to out. A nil out writes to stdout.
// stats may be nil, in which case no status line is printed.
func NewTerminalRenderer(out io.Writer, clearScreen bool, stats *utils.Stats) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{out: out, clearScreen: clearScreen, stats: stats}
}

// Present renders one generation. It does not retain g.
func (r *TerminalRenderer) Present(generation int, g *Grid) error {
	if r.clearScreen {
		r.Clear()
	}

	w := bufio.NewWriter(r.out)
	if r.stats != nil {
		fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | %.1f gen/sec | Avg Pop: %.1f\n",
			generation, r.stats.LivingCells, r.stats.Density,
			r.stats.GenerationsPerSecond, r.stats.AveragePopulation)
	} else {
		fmt.Fprintf(w, "Gen: %d | Living: %d\n", generation, g.CountLivingCells())
	}
	r.display(w, g)

	return errors.Wrap(w.Flush(), "[Present] failed to write frame")
}

func (r *TerminalRenderer) display(w io.Writer, g *Grid) {
	for row := range g.size {
		for col := range g.size {
			if g.cells[row*g.size+col] == Alive {
				io.WriteString(w, gridPosBlock)
			} else {
				io.WriteString(w, gridPosEmpty)
			}
		}
		io.WriteString(w, "\n")
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
