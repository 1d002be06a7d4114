package model

import "github.com/samber/lo"

// Candidate is a (room, timeslot) pair structurally legal for a session
// after filtering.
type Candidate struct {
	Room     uint64
	Timeslot uint64
}

// buildCandidates computes the legal pairs per session: lab sessions pair
// with lab rooms only, non-lab sessions never with lab rooms, and the
// session's faculty must not be blacked out at the slot. Room-type and
// blackout constraints thereby become structural omissions and never reach
// the model.
func buildCandidates(catalog Catalog, sessions []Session) ([][]Candidate, error) {
	blackouts := make(map[uint64]map[uint64]bool, len(catalog.Faculties))
	for _, faculty := range catalog.Faculties {
		blackouts[faculty.ID] = lo.SliceToMap(faculty.Blackouts, func(slot uint64) (uint64, bool) {
			return slot, true
		})
	}

	candidates := make([][]Candidate, len(sessions))
	for _, session := range sessions {
		rooms := lo.Filter(catalog.Rooms, func(room Room, _ int) bool {
			return (room.Type == RoomLab) == session.Lab
		})
		slots := lo.Filter(catalog.Timeslots, func(slot Timeslot, _ int) bool {
			return !blackouts[session.Faculty][slot.ID]
		})

		for _, room := range rooms {
			for _, slot := range slots {
				candidates[session.ID] = append(candidates[session.ID], Candidate{Room: room.ID, Timeslot: slot.ID})
			}
		}

		if len(candidates[session.ID]) == 0 {
			return nil, &InfeasibleError{Reason: SessionWithoutCandidates, Session: session.ID}
		}
	}

	return candidates, nil
}
