package model

import (
	"fmt"
	"time"
)

type InfeasibleReason string

const (
	EmptyCatalog             InfeasibleReason = "emptyCatalog"
	SubjectWithoutFaculty    InfeasibleReason = "subjectWithoutFaculty"
	SessionWithoutCandidates InfeasibleReason = "sessionWithoutCandidates"
	NoSolutionFound          InfeasibleReason = "noSolutionFound"
	TimedOut                 InfeasibleReason = "timedOut"
)

// InfeasibleError reports why a run produced no schedule. Subject and
// Session identify the offending entity for the per-entity reasons.
// NoSolutionFound is a proof of infeasibility; TimedOut proves nothing.
type InfeasibleError struct {
	Reason  InfeasibleReason
	Subject uint64
	Session uint64
}

func (err *InfeasibleError) Error() string {
	switch err.Reason {
	case EmptyCatalog:
		return "catalog is missing rooms, batches, subjects or timeslots"
	case SubjectWithoutFaculty:
		return fmt.Sprintf("subject %v has no eligible faculty", err.Subject)
	case SessionWithoutCandidates:
		return fmt.Sprintf("session %v has no candidate room and timeslot", err.Session)
	case TimedOut:
		return "time budget exhausted before the search completed"
	default:
		return "no satisfying schedule exists"
	}
}

// Assignment is the solved binding of one class session to one room and
// timeslot.
type Assignment struct {
	Session  uint64
	Batch    uint64
	Subject  uint64
	Faculty  uint64
	Room     uint64
	Timeslot uint64
}

// Schedule is the immutable named snapshot of all assignments of one
// successful run.
type Schedule struct {
	Name        string
	CreatedAt   time.Time
	Assignments []Assignment
}
