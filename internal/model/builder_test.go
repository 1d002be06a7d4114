package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	t.Run("exclusivity conflicts", func(t *testing.T) {
		// Arrange: two sessions of one batch, one room, two non-midday slots.
		// Variables: session 0 -> 1 (slot 1), 2 (slot 2); session 1 -> 3, 4.
		catalog := Catalog{
			Rooms: []Room{{ID: 1, Type: RoomClassroom}},
			Timeslots: []Timeslot{
				{ID: 1, Day: 0, Start: "09:00", End: "10:00"},
				{ID: 2, Day: 0, Start: "10:00", End: "11:00"},
			},
			Batches:   []Batch{{ID: 1, Year: 1}},
			Faculties: []Faculty{{ID: 1}},
		}
		sessions := []Session{
			{ID: 0, Batch: 1, Subject: 1, Faculty: 1},
			{ID: 1, Batch: 1, Subject: 1, Faculty: 1},
		}
		candidates := [][]Candidate{
			{{Room: 1, Timeslot: 1}, {Room: 1, Timeslot: 2}},
			{{Room: 1, Timeslot: 1}, {Room: 1, Timeslot: 2}},
		}

		// Act
		problem := newModelBuilder(catalog, sessions, candidates).build()

		// Assert
		assert.Equal(t, 4, problem.Variables)
		assert.Equal(t, [][]int{{1, 2}, {3, 4}}, problem.Groups)
		assert.Contains(t, problem.Conflicts, [2]int{1, 3})
		assert.Contains(t, problem.Conflicts, [2]int{2, 4})
		assert.NotContains(t, problem.Conflicts, [2]int{1, 4})
		assert.NotContains(t, problem.Conflicts, [2]int{2, 3})
	})

	t.Run("lunch break conflicts", func(t *testing.T) {
		// Both slots are midday on one day, so a batch may not use both.
		catalog := Catalog{
			Rooms: []Room{{ID: 1, Type: RoomClassroom}},
			Timeslots: []Timeslot{
				{ID: 1, Day: 0, Start: "11:00", End: "12:00"},
				{ID: 2, Day: 0, Start: "13:00", End: "14:00"},
			},
			Batches:   []Batch{{ID: 1, Year: 1}},
			Faculties: []Faculty{{ID: 1}},
		}
		sessions := []Session{
			{ID: 0, Batch: 1, Subject: 1, Faculty: 1},
			{ID: 1, Batch: 1, Subject: 2, Faculty: 1},
		}
		candidates := [][]Candidate{
			{{Room: 1, Timeslot: 1}, {Room: 1, Timeslot: 2}},
			{{Room: 1, Timeslot: 1}, {Room: 1, Timeslot: 2}},
		}

		problem := newModelBuilder(catalog, sessions, candidates).build()

		// Cross-session midday pairs: variable 1 (earlier) vs 4 (later) and
		// 3 (earlier) vs 2 (later)
		assert.Contains(t, problem.Conflicts, [2]int{1, 4})
		assert.Contains(t, problem.Conflicts, [2]int{3, 2})
	})

	t.Run("no lunch conflicts across batches", func(t *testing.T) {
		catalog := Catalog{
			Rooms: []Room{{ID: 1, Type: RoomClassroom}, {ID: 2, Type: RoomClassroom}},
			Timeslots: []Timeslot{
				{ID: 1, Day: 0, Start: "11:00", End: "12:00"},
				{ID: 2, Day: 0, Start: "13:00", End: "14:00"},
			},
			Batches:   []Batch{{ID: 1, Year: 1}, {ID: 2, Year: 1}},
			Faculties: []Faculty{{ID: 1}, {ID: 2}},
		}
		sessions := []Session{
			{ID: 0, Batch: 1, Subject: 1, Faculty: 1},
			{ID: 1, Batch: 2, Subject: 1, Faculty: 2},
		}
		// Variables: session 0 -> 1 (slot 1), session 1 -> 2 (slot 2)
		candidates := [][]Candidate{
			{{Room: 1, Timeslot: 1}},
			{{Room: 2, Timeslot: 2}},
		}

		problem := newModelBuilder(catalog, sessions, candidates).build()

		assert.Empty(t, problem.Conflicts)
	})
}
