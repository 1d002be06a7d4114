package csp

import "time"

// backtrackingSolver searches over the per-group exactly-one choices with
// most-constrained-group-first ordering and forward checking after each
// choice. Variables outside every group stay false; conflicts against them
// are vacuous.
type backtrackingSolver struct{}

func (solver *backtrackingSolver) Solve(problem Problem, budget time.Duration) (Solution, Result, error) {
	state := newSearch(problem)

	for _, size := range state.remaining {
		if size == 0 {
			return nil, Unsatisfiable, nil
		}
	}

	switch state.run(time.Now().Add(budget)) {
	case searchFound:
		solution := make(Solution, problem.Variables+1)
		for group := range state.chosen {
			if state.chosen[group] != 0 {
				solution[state.chosen[group]] = true
			}
		}
		return solution, Satisfied, nil
	case searchExhausted:
		return nil, Unsatisfiable, nil
	default:
		return nil, Unknown, nil
	}
}

type searchOutcome int

const (
	searchFound searchOutcome = iota
	searchExhausted
	searchDeadline
)

type search struct {
	groups     [][]int
	groupOf    []int   // variable -> group index, -1 for ungrouped
	neighbours [][]int // variable -> conflicting variables

	removed   []bool // variable -> pruned from its group's domain
	remaining []int  // group -> live domain size
	chosen    []int  // group -> picked variable, 0 while unassigned
	done      []bool // group -> assigned

	nodes uint64
}

func newSearch(problem Problem) *search {
	state := &search{
		groups:     problem.Groups,
		groupOf:    make([]int, problem.Variables+1),
		neighbours: make([][]int, problem.Variables+1),
		removed:    make([]bool, problem.Variables+1),
		remaining:  make([]int, len(problem.Groups)),
		chosen:     make([]int, len(problem.Groups)),
		done:       make([]bool, len(problem.Groups)),
	}

	for variable := range state.groupOf {
		state.groupOf[variable] = -1
	}
	for group, variables := range problem.Groups {
		for _, variable := range variables {
			state.groupOf[variable] = group
		}
		state.remaining[group] = len(variables)
	}

	for _, conflict := range problem.Conflicts {
		state.neighbours[conflict[0]] = append(state.neighbours[conflict[0]], conflict[1])
		state.neighbours[conflict[1]] = append(state.neighbours[conflict[1]], conflict[0])
	}

	return state
}

func (state *search) run(deadline time.Time) searchOutcome {
	state.nodes++
	if state.nodes&63 == 0 && time.Now().After(deadline) {
		return searchDeadline
	}

	group := state.mostConstrained()
	if group == -1 {
		return searchFound
	}

	for _, variable := range state.groups[group] {
		if state.removed[variable] {
			continue
		}

		state.done[group] = true
		state.chosen[group] = variable

		pruned, wipeout := state.forwardCheck(variable)
		if !wipeout {
			outcome := state.run(deadline)
			if outcome != searchExhausted {
				return outcome
			}
		}

		state.undo(pruned)
		state.done[group] = false
		state.chosen[group] = 0
	}

	return searchExhausted
}

// mostConstrained picks the unassigned group with the fewest live
// candidates, lowest index on ties. Returns -1 once every group is
// assigned.
func (state *search) mostConstrained() int {
	best, bestSize := -1, 0
	for group := range state.groups {
		if state.done[group] {
			continue
		}
		if best == -1 || state.remaining[group] < bestSize {
			best, bestSize = group, state.remaining[group]
		}
	}
	return best
}

// forwardCheck prunes every live variable conflicting with the chosen one.
// A group left with an empty domain reports a wipeout; the caller undoes
// the pruning either way.
func (state *search) forwardCheck(variable int) (pruned []int, wipeout bool) {
	for _, neighbour := range state.neighbours[variable] {
		group := state.groupOf[neighbour]
		if group == -1 || state.done[group] || state.removed[neighbour] {
			continue
		}

		state.removed[neighbour] = true
		state.remaining[group]--
		pruned = append(pruned, neighbour)

		if state.remaining[group] == 0 {
			return pruned, true
		}
	}
	return pruned, false
}

func (state *search) undo(pruned []int) {
	for _, variable := range pruned {
		state.removed[variable] = false
		state.remaining[state.groupOf[variable]]++
	}
}
