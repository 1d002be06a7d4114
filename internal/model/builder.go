package model

import (
	"timegrid/internal/csp"
)

// variable holds the attributes behind one decision variable: the session
// held in the room at the timeslot. The table maps index to attributes for
// conflict grouping and for materializing the solution, and is 1-based on
// the variable side: table[v-1] are the attributes of variable v.
type variable struct {
	Session  uint64
	Room     uint64
	Timeslot uint64
}

type modelBuilder struct {
	catalog    Catalog
	sessions   []Session
	candidates [][]Candidate

	table []variable
}

func newModelBuilder(catalog Catalog, sessions []Session, candidates [][]Candidate) *modelBuilder {
	builder := &modelBuilder{
		catalog:    catalog,
		sessions:   sessions,
		candidates: candidates,
	}

	for _, session := range sessions {
		for _, candidate := range candidates[session.ID] {
			builder.table = append(builder.table, variable{
				Session:  session.ID,
				Room:     candidate.Room,
				Timeslot: candidate.Timeslot,
			})
		}
	}

	return builder
}

// build assembles the boolean problem: an exactly-one group per session and
// binary conflicts for room, faculty and batch exclusivity plus the lunch
// break.
func (builder *modelBuilder) build() csp.Problem {
	conflicts := [][2]int{}
	conflicts = append(conflicts, builder.roomExclusivity()...)
	conflicts = append(conflicts, builder.facultyExclusivity()...)
	conflicts = append(conflicts, builder.batchExclusivity()...)
	conflicts = append(conflicts, builder.lunchBreakConflicts()...)

	return csp.Problem{
		Variables: len(builder.table),
		Groups:    builder.completenessGroups(),
		Conflicts: conflicts,
	}
}

func (builder *modelBuilder) completenessGroups() [][]int {
	groups := make([][]int, len(builder.sessions))
	for index, attributes := range builder.table {
		groups[attributes.Session] = append(groups[attributes.Session], index+1)
	}
	return groups
}

func (builder *modelBuilder) roomExclusivity() [][2]int {
	occupants := map[[2]uint64][]int{}
	for index, attributes := range builder.table {
		key := [2]uint64{attributes.Room, attributes.Timeslot}
		occupants[key] = append(occupants[key], index+1)
	}
	return pairwise(occupants)
}

func (builder *modelBuilder) facultyExclusivity() [][2]int {
	occupants := map[[2]uint64][]int{}
	for index, attributes := range builder.table {
		key := [2]uint64{builder.sessions[attributes.Session].Faculty, attributes.Timeslot}
		occupants[key] = append(occupants[key], index+1)
	}
	return pairwise(occupants)
}

func (builder *modelBuilder) batchExclusivity() [][2]int {
	occupants := map[[2]uint64][]int{}
	for index, attributes := range builder.table {
		key := [2]uint64{builder.sessions[attributes.Session].Batch, attributes.Timeslot}
		occupants[key] = append(occupants[key], index+1)
	}
	return pairwise(occupants)
}

// lunchBreakConflicts forces a free midday slot: for each (batch, day)
// whose day carries two midday slots, the batch may not hold sessions in
// both. Under batch exclusivity this is equivalent to the explicit
// break-choice formulation with one auxiliary boolean per (batch, day).
func (builder *modelBuilder) lunchBreakConflicts() [][2]int {
	conflicts := [][2]int{}

	for _, pair := range middaySlots(builder.catalog.Timeslots) {
		earlier, later := pair[0], pair[1]

		atEarlier := map[uint64][]int{}
		atLater := map[uint64][]int{}
		for index, attributes := range builder.table {
			batch := builder.sessions[attributes.Session].Batch
			switch attributes.Timeslot {
			case earlier:
				atEarlier[batch] = append(atEarlier[batch], index+1)
			case later:
				atLater[batch] = append(atLater[batch], index+1)
			}
		}

		for batch, variables := range atEarlier {
			for _, variable1 := range variables {
				for _, variable2 := range atLater[batch] {
					conflicts = append(conflicts, [2]int{variable1, variable2})
				}
			}
		}
	}

	return conflicts
}

// pairwise turns each occupant list into at-most-one binary conflicts.
func pairwise(occupants map[[2]uint64][]int) [][2]int {
	conflicts := [][2]int{}
	for _, variables := range occupants {
		for i := range len(variables) - 1 {
			for j := i + 1; j < len(variables); j++ {
				conflicts = append(conflicts, [2]int{variables[i], variables[j]})
			}
		}
	}
	return conflicts
}
