package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func sessionCatalog() Catalog {
	return Catalog{
		Rooms: []Room{{ID: 1, Type: RoomClassroom}},
		Batches: []Batch{
			{ID: 1, Year: 1},
			{ID: 2, Year: 2},
		},
		Subjects: []Subject{
			{ID: 1, Semesters: []uint64{1}, ClassesPerWeek: 2},
			{ID: 2, Semesters: []uint64{4}, ClassesPerWeek: 1, Lab: true},
			{ID: 3, Semesters: []uint64{2, 3}, ClassesPerWeek: 1},
		},
		Faculties: []Faculty{{ID: 1}, {ID: 2}},
		Timeslots: []Timeslot{{ID: 1, Day: 0, Start: "09:00", End: "10:00"}},
		Eligibilities: []Eligibility{
			{Faculty: 2, Subject: 1},
			{Faculty: 1, Subject: 1},
			{Faculty: 1, Subject: 2},
			{Faculty: 1, Subject: 3},
		},
	}
}

func TestGenerateSessions(t *testing.T) {
	t.Run("expands weekly counts per applicable pair", func(t *testing.T) {
		// Act
		sessions, err := generateSessions(sessionCatalog())

		// Assert
		assert.Nil(t, err)
		// Batch 1 (semesters 1,2): subject 1 twice, subject 3 once.
		// Batch 2 (semesters 3,4): subject 2 once, subject 3 once.
		assert.Len(t, sessions, 5)
		assert.Equal(t, []uint64{0, 1, 2, 3, 4}, lo.Map(sessions, func(session Session, _ int) uint64 { return session.ID }))

		counts := lo.CountValuesBy(sessions, func(session Session) [2]uint64 {
			return [2]uint64{session.Batch, session.Subject}
		})
		assert.Equal(t, map[[2]uint64]int{
			{1, 1}: 2,
			{1, 3}: 1,
			{2, 2}: 1,
			{2, 3}: 1,
		}, counts)
	})

	t.Run("first eligible faculty wins", func(t *testing.T) {
		sessions, err := generateSessions(sessionCatalog())

		assert.Nil(t, err)
		for _, session := range sessions {
			if session.Subject == 1 {
				// Faculty 2 registered its eligibility first
				assert.Equal(t, uint64(2), session.Faculty)
			} else {
				assert.Equal(t, uint64(1), session.Faculty)
			}
		}
	})

	t.Run("lab flag carried from subject", func(t *testing.T) {
		sessions, err := generateSessions(sessionCatalog())

		assert.Nil(t, err)
		labs := lo.Filter(sessions, func(session Session, _ int) bool { return session.Lab })
		assert.Len(t, labs, 1)
		assert.Equal(t, uint64(2), labs[0].Subject)
	})

	t.Run("identical ids on re-run", func(t *testing.T) {
		first, err1 := generateSessions(sessionCatalog())
		second, err2 := generateSessions(sessionCatalog())

		assert.Nil(t, err1)
		assert.Nil(t, err2)
		assert.Equal(t, first, second)
	})

	t.Run("empty catalog", func(t *testing.T) {
		catalog := sessionCatalog()
		catalog.Timeslots = nil

		_, err := generateSessions(catalog)

		assert.Equal(t, &InfeasibleError{Reason: EmptyCatalog}, err)
	})

	t.Run("subject without faculty", func(t *testing.T) {
		catalog := sessionCatalog()
		catalog.Eligibilities = lo.Filter(catalog.Eligibilities, func(eligibility Eligibility, _ int) bool {
			return eligibility.Subject != 2
		})

		_, err := generateSessions(catalog)

		assert.Equal(t, &InfeasibleError{Reason: SubjectWithoutFaculty, Subject: 2}, err)
	})
}
