package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	LivingCells          int
	Density              float64
	StartTime            time.Time

	lastUpdate time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a completed generation with the given population out of
// the given number of cells.
func (s *Stats) Update(generation, population, cells int, now time.Time) {
	s.TotalGenerations = generation
	s.LivingCells = population
	if cells > 0 {
		s.Density = float64(population) / float64(cells) * 100
	}

	if !s.lastUpdate.IsZero() {
		if d := now.Sub(s.lastUpdate); d > 0 {
			s.GenerationsPerSecond = 1.0 / d.Seconds()
		}
	}
	s.lastUpdate = now

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time elapsed since the stats were created.
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
