package csp

import "time"

// Solver finds one satisfying assignment for a Problem within a wall-clock
// budget. It is a decision procedure: the first feasible assignment wins,
// with no ranking among alternatives.
type Solver interface {
	Solve(problem Problem, budget time.Duration) (Solution, Result, error)
}

func NewBacktrackingSolver() Solver {
	return &backtrackingSolver{}
}

func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}
