package csp

import (
	"fmt"
	"strings"
)

// Result classifies the outcome of a solve attempt. Unknown means the time
// budget ran out before the search could either find a solution or exhaust
// the space, so infeasibility remains unproven.
type Result int

const (
	Satisfied Result = iota
	Unsatisfiable
	Unknown
)

// Solution holds the truth value of every variable. It is 1-based:
// Solution[v] is the value of variable v and index 0 is unused.
type Solution []bool

// Problem is a boolean constraint problem over 1-based variables: exactly
// one variable of every group must be true, and no conflicting pair may be
// true simultaneously.
type Problem struct {
	Variables int
	Groups    [][]int
	Conflicts [][2]int
}

// Clauses renders the problem in CNF: one positive clause per group,
// pairwise negative clauses within each group and one negative clause per
// conflict.
func (p Problem) Clauses() [][]int {
	clauses := make([][]int, 0, len(p.Groups)+len(p.Conflicts))

	for _, group := range p.Groups {
		clauses = append(clauses, append([]int{}, group...))
		for i := range len(group) - 1 {
			for j := i + 1; j < len(group); j++ {
				clauses = append(clauses, []int{-group[i], -group[j]})
			}
		}
	}

	for _, conflict := range p.Conflicts {
		clauses = append(clauses, []int{-conflict[0], -conflict[1]})
	}

	return clauses
}

func (p Problem) ToDIMACS() string {
	clauses := p.Clauses()

	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", p.Variables, len(clauses))
	for _, clause := range clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
