package rules

const (
	// BirthNeighbors is the exact count that brings a dead cell to life.
	BirthNeighbors = 3
	// MinSurvivalNeighbors and MaxSurvivalNeighbors bound the counts a live
	// cell survives with.
	MinSurvivalNeighbors = 2
	MaxSurvivalNeighbors = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors and dies otherwise (underpopulation below 2,
overpopulation above 3). A dead cell comes alive with exactly 3 live neighbors.
*/
func ApplyConwayRules(alive bool, neighbors int) bool {
	if alive {
		return neighbors >= MinSurvivalNeighbors && neighbors <= MaxSurvivalNeighbors
	}
	return neighbors == BirthNeighbors
}
