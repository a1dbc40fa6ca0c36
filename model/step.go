package model

import "github.com/sheikhrachel/go-torus-life/rules"

// StepEngine computes successive generations. The input grid is only read,
// and every result is a separate buffer, so no cell ever sees a neighbor
// that has already moved to the next generation.
type StepEngine struct {
	pool *GridPool
}

// NewStepEngine returns an engine drawing result buffers from pool. pool may be nil.
func NewStepEngine(pool *GridPool) *StepEngine {
	return &StepEngine{pool: pool}
}

// Step returns the next generation of g. g is not modified.
func (e *StepEngine) Step(g *Grid) *Grid {
	var next *Grid
	if e != nil && e.pool != nil {
		next = e.pool.Get(g.size)
	} else {
		next = newGrid(g.size)
	}

	for row := range g.size {
		for col := range g.size {
			idx := row*g.size + col
			if rules.ApplyConwayRules(g.cells[idx] == Alive, g.CountNeighbors(row, col)) {
				next.cells[idx] = Alive
			} else {
				next.cells[idx] = Dead
			}
		}
	}

	return next
}

// Step returns the next generation of g using a freshly allocated grid.
func Step(g *Grid) *Grid {
	return NewStepEngine(nil).Step(g)
}

// Recycle hands a generation that is no longer referenced back to the
// engine's pool. It is a no-op for engines without a pool.
func (e *StepEngine) Recycle(g *Grid) {
	if e == nil {
		return
	}
	GridToPool(g, e.pool)
}

// Pooled reports whether the engine recycles buffers through a GridPool.
func (e *StepEngine) Pooled() bool {
	return e != nil && e.pool != nil
}
