package model

import "github.com/samber/lo"

// Session is one required weekly occurrence of a subject for a batch, the
// atomic schedulable unit. Sibling sessions of one (batch, subject) pair
// differ only by the slot the solver ends up picking.
type Session struct {
	ID      uint64
	Batch   uint64
	Subject uint64
	Faculty uint64
	Lab     bool
}

// generateSessions expands the catalog's curriculum into concrete weekly
// sessions. Ids are dense indexes in deterministic generation order, so an
// unchanged catalog always reproduces the same ids.
func generateSessions(catalog Catalog) ([]Session, error) {
	if len(catalog.Rooms) == 0 || len(catalog.Batches) == 0 || len(catalog.Subjects) == 0 || len(catalog.Timeslots) == 0 {
		return nil, &InfeasibleError{Reason: EmptyCatalog}
	}

	for _, subject := range catalog.Subjects {
		taught := lo.SomeBy(catalog.Eligibilities, func(eligibility Eligibility) bool {
			return eligibility.Subject == subject.ID
		})
		if !taught {
			return nil, &InfeasibleError{Reason: SubjectWithoutFaculty, Subject: subject.ID}
		}
	}

	sessions := make([]Session, 0)
	for _, batch := range catalog.Batches {
		for _, subject := range catalog.Subjects {
			if !applicable(batch, subject) {
				continue
			}

			faculty := assignedFaculty(catalog, subject.ID)
			for range subject.ClassesPerWeek {
				sessions = append(sessions, Session{
					ID:      uint64(len(sessions)),
					Batch:   batch.ID,
					Subject: subject.ID,
					Faculty: faculty,
					Lab:     subject.Lab,
				})
			}
		}
	}

	return sessions, nil
}

// applicable reports whether the subject belongs to the batch's current
// year: year y spans semesters 2y-1 and 2y.
func applicable(batch Batch, subject Subject) bool {
	return lo.Some(subject.Semesters, []uint64{2*batch.Year - 1, 2 * batch.Year})
}

// assignedFaculty picks the faculty of the earliest-registered eligibility
// row for the subject. First eligible wins; a load-balanced policy would
// only have to replace this function.
func assignedFaculty(catalog Catalog, subject uint64) uint64 {
	row, _ := lo.Find(catalog.Eligibilities, func(eligibility Eligibility) bool {
		return eligibility.Subject == subject
	})
	return row.Faculty
}
