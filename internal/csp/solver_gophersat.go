package csp

import (
	"time"

	"github.com/crillab/gophersat/solver"
)

// gophersatSolver runs the problem's CNF encoding through the in-process
// gophersat engine. The budget is enforced through the stop channel; an
// indeterminate status maps to Unknown since nothing was proven.
type gophersatSolver struct{}

func (gophersat *gophersatSolver) Solve(problem Problem, budget time.Duration) (Solution, Result, error) {
	if problem.Variables == 0 {
		return Solution{false}, Satisfied, nil
	}

	engine := solver.New(solver.ParseSlice(problem.Clauses()))

	stop := make(chan struct{})
	timer := time.AfterFunc(budget, func() { close(stop) })
	defer timer.Stop()

	result := engine.Optimal(nil, stop)
	switch result.Status {
	case solver.Sat:
		solution := make(Solution, problem.Variables+1)
		for variable := 1; variable <= problem.Variables; variable++ {
			if variable-1 < len(result.Model) && result.Model[variable-1] {
				solution[variable] = true
			}
		}
		return solution, Satisfied, nil
	case solver.Unsat:
		return nil, Unsatisfiable, nil
	default:
		return nil, Unknown, nil
	}
}
