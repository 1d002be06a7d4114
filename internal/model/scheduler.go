package model

import (
	"time"

	"timegrid/internal/csp"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

const DefaultBudget = 10 * time.Second

type Scheduler interface {
	// Solve produces one conflict-free schedule for the catalog snapshot,
	// or an *InfeasibleError naming why none was produced. The run is
	// synchronous and mutates nothing in the catalog.
	Solve(catalog Catalog, name string) (*Schedule, error)

	// Verify checks a schedule against the catalog's hard constraints.
	Verify(schedule *Schedule, catalog Catalog) bool
}

func NewScheduler(solver csp.Solver, budget time.Duration) Scheduler {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &scheduler{solver: solver, budget: budget}
}

type scheduler struct {
	solver csp.Solver
	budget time.Duration
}

func (s *scheduler) Solve(catalog Catalog, name string) (*Schedule, error) {
	sessions, err := generateSessions(catalog)
	if err != nil {
		return nil, err
	}

	candidates, err := buildCandidates(catalog, sessions)
	if err != nil {
		return nil, err
	}

	if !coverable(sessions, candidates) {
		return nil, &InfeasibleError{Reason: NoSolutionFound}
	}

	builder := newModelBuilder(catalog, sessions, candidates)
	problem := builder.build()

	solution, result, err := s.solver.Solve(problem, s.budget)
	if err != nil {
		return nil, err
	}

	switch result {
	case csp.Unsatisfiable:
		return nil, &InfeasibleError{Reason: NoSolutionFound}
	case csp.Unknown:
		return nil, &InfeasibleError{Reason: TimedOut}
	}

	return materialize(builder, sessions, solution, name), nil
}

// coverable checks a relaxation before any search: every session must be
// matchable to a distinct (room, timeslot) pair. A largest matching smaller
// than the session count proves infeasibility outright, exclusivity and
// break constraints aside.
func coverable(sessions []Session, candidates [][]Candidate) bool {
	pairs := lo.Uniq(lo.Flatten(candidates))
	left := lo.ToAnySlice(sessions)
	right := lo.ToAnySlice(pairs)

	neighbours := func(session, pair any) (bool, error) {
		return lo.Contains(candidates[session.(Session).ID], pair.(Candidate)), nil
	}

	graph, err := bipartitegraph.NewBipartiteGraph(left, right, neighbours)
	if err != nil {
		return true // fall through to the full search
	}

	return len(graph.LargestMatching()) == len(sessions)
}

// materialize projects the solution through the variable table into one
// assignment per session and freezes them into a named, timestamped
// schedule. The schedule value is fully built before being returned, so
// consumers never observe a partial one.
func materialize(builder *modelBuilder, sessions []Session, solution csp.Solution, name string) *Schedule {
	assignments := make([]Assignment, 0, len(sessions))
	for index, attributes := range builder.table {
		if !solution[index+1] {
			continue
		}

		session := sessions[attributes.Session]
		assignments = append(assignments, Assignment{
			Session:  session.ID,
			Batch:    session.Batch,
			Subject:  session.Subject,
			Faculty:  session.Faculty,
			Room:     attributes.Room,
			Timeslot: attributes.Timeslot,
		})
	}

	return &Schedule{
		Name:        name,
		CreatedAt:   time.Now(),
		Assignments: assignments,
	}
}

func (s *scheduler) Verify(schedule *Schedule, catalog Catalog) bool {
	sessions, err := generateSessions(catalog)
	if err != nil || len(schedule.Assignments) != len(sessions) {
		return false
	}

	rooms := lo.KeyBy(catalog.Rooms, func(room Room) uint64 { return room.ID })
	blackouts := make(map[uint64]map[uint64]bool, len(catalog.Faculties))
	for _, faculty := range catalog.Faculties {
		blackouts[faculty.ID] = lo.SliceToMap(faculty.Blackouts, func(slot uint64) (uint64, bool) {
			return slot, true
		})
	}

	assigned := map[uint64]bool{}
	roomUse := map[[2]uint64]bool{}
	facultyUse := map[[2]uint64]bool{}
	batchUse := map[[2]uint64]bool{}

	for _, assignment := range schedule.Assignments {
		// Exactly one assignment per generated session, carrying its fields
		if assignment.Session >= uint64(len(sessions)) || assigned[assignment.Session] {
			return false
		}
		assigned[assignment.Session] = true

		session := sessions[assignment.Session]
		if session.Batch != assignment.Batch || session.Subject != assignment.Subject || session.Faculty != assignment.Faculty {
			return false
		}

		room, known := rooms[assignment.Room]
		if !known || (room.Type == RoomLab) != session.Lab {
			return false
		}

		if blackouts[session.Faculty][assignment.Timeslot] {
			return false
		}

		roomKey := [2]uint64{assignment.Room, assignment.Timeslot}
		facultyKey := [2]uint64{session.Faculty, assignment.Timeslot}
		batchKey := [2]uint64{session.Batch, assignment.Timeslot}
		if roomUse[roomKey] || facultyUse[facultyKey] || batchUse[batchKey] {
			return false
		}
		roomUse[roomKey] = true
		facultyUse[facultyKey] = true
		batchUse[batchKey] = true
	}

	// One of the two midday slots must stay free per batch and day
	for _, batch := range catalog.Batches {
		for _, pair := range middaySlots(catalog.Timeslots) {
			if batchUse[[2]uint64{batch.ID, pair[0]}] && batchUse[[2]uint64{batch.ID, pair[1]}] {
				return false
			}
		}
	}

	return true
}
