package model

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type RoomType string

const (
	RoomClassroom RoomType = "classroom"
	RoomLab       RoomType = "lab"
	RoomSeminar   RoomType = "seminar"
)

type Room struct {
	ID       uint64
	Name     string
	Capacity uint64
	Type     RoomType
}

type Timeslot struct {
	ID    uint64
	Day   uint64 // 0=Monday .. 4=Friday
	Start string // "HH:MM"
	End   string
}

type Batch struct {
	ID      uint64
	Name    string
	Program string
	Year    uint64
}

type Subject struct {
	ID             uint64
	Code           string
	Name           string
	Semesters      []uint64
	ClassesPerWeek uint64
	Lab            bool
}

type Faculty struct {
	ID             uint64
	Name           string
	MaxLoadPerWeek uint64   // informational only, never enforced
	Blackouts      []uint64 // timeslot ids the faculty declared unavailable
}

// Eligibility links a faculty to a subject it can teach. Slice order in the
// catalog is registration order and drives the deterministic first-eligible
// faculty pick.
type Eligibility struct {
	Faculty uint64
	Subject uint64
}

// Catalog is the immutable resource snapshot one solve run reads. No core
// component reads any ambient state beyond it.
type Catalog struct {
	Rooms         []Room
	Batches       []Batch
	Subjects      []Subject
	Faculties     []Faculty
	Timeslots     []Timeslot
	Eligibilities []Eligibility
}

const clockLayout = "15:04"

func clockMinutes(value string) (uint64, error) {
	parsed, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, err
	}
	return uint64(parsed.Hour()*60 + parsed.Minute()), nil
}

func (slot Timeslot) startMinutes() uint64 {
	minutes, err := clockMinutes(slot.Start)
	if err != nil {
		panic(fmt.Sprintf("unvalidated timeslot %v: %v", slot.ID, err))
	}
	return minutes
}

func (slot Timeslot) endMinutes() uint64 {
	minutes, err := clockMinutes(slot.End)
	if err != nil {
		panic(fmt.Sprintf("unvalidated timeslot %v: %v", slot.ID, err))
	}
	return minutes
}

// Midday window for the solver-chosen lunch break.
const (
	middayWindowStart = 11*60 + 30
	middayWindowEnd   = 13*60 + 30
)

func (slot Timeslot) midday() bool {
	return slot.startMinutes() < middayWindowEnd && slot.endMinutes() > middayWindowStart
}

// middaySlots returns, for each day carrying exactly two midday timeslots,
// the pair ordered earlier-first.
func middaySlots(slots []Timeslot) map[uint64][2]uint64 {
	perDay := lo.GroupBy(
		lo.Filter(slots, func(slot Timeslot, _ int) bool { return slot.midday() }),
		func(slot Timeslot) uint64 { return slot.Day },
	)

	pairs := make(map[uint64][2]uint64)
	for day, daySlots := range perDay {
		if len(daySlots) != 2 {
			continue
		}
		slices.SortFunc(daySlots, func(a, b Timeslot) int {
			return int(a.startMinutes()) - int(b.startMinutes())
		})
		pairs[day] = [2]uint64{daySlots[0].ID, daySlots[1].ID}
	}
	return pairs
}

// Validate checks the snapshot's referential integrity so that no component
// downstream has to re-check ids or time formats at point of use.
func (catalog Catalog) Validate() error {
	if err := uniqueIDs("room", lo.Map(catalog.Rooms, func(room Room, _ int) uint64 { return room.ID })); err != nil {
		return err
	}
	if err := uniqueIDs("batch", lo.Map(catalog.Batches, func(batch Batch, _ int) uint64 { return batch.ID })); err != nil {
		return err
	}
	if err := uniqueIDs("subject", lo.Map(catalog.Subjects, func(subject Subject, _ int) uint64 { return subject.ID })); err != nil {
		return err
	}
	if err := uniqueIDs("faculty", lo.Map(catalog.Faculties, func(faculty Faculty, _ int) uint64 { return faculty.ID })); err != nil {
		return err
	}
	if err := uniqueIDs("timeslot", lo.Map(catalog.Timeslots, func(slot Timeslot, _ int) uint64 { return slot.ID })); err != nil {
		return err
	}

	for _, room := range catalog.Rooms {
		if !lo.Contains([]RoomType{RoomClassroom, RoomLab, RoomSeminar}, room.Type) {
			return fmt.Errorf("room %v: unknown type %q", room.ID, room.Type)
		}
	}

	for _, slot := range catalog.Timeslots {
		if slot.Day > 4 {
			return fmt.Errorf("timeslot %v: day %v out of range", slot.ID, slot.Day)
		}
		start, err := clockMinutes(slot.Start)
		if err != nil {
			return fmt.Errorf("timeslot %v: %v", slot.ID, err)
		}
		end, err := clockMinutes(slot.End)
		if err != nil {
			return fmt.Errorf("timeslot %v: %v", slot.ID, err)
		}
		if start >= end {
			return fmt.Errorf("timeslot %v: start %v is not before end %v", slot.ID, slot.Start, slot.End)
		}
	}

	faculties := lo.SliceToMap(catalog.Faculties, func(faculty Faculty) (uint64, bool) { return faculty.ID, true })
	subjects := lo.SliceToMap(catalog.Subjects, func(subject Subject) (uint64, bool) { return subject.ID, true })
	slots := lo.SliceToMap(catalog.Timeslots, func(slot Timeslot) (uint64, bool) { return slot.ID, true })

	for _, eligibility := range catalog.Eligibilities {
		if !faculties[eligibility.Faculty] {
			return fmt.Errorf("eligibility references unknown faculty %v", eligibility.Faculty)
		}
		if !subjects[eligibility.Subject] {
			return fmt.Errorf("eligibility references unknown subject %v", eligibility.Subject)
		}
	}

	for _, faculty := range catalog.Faculties {
		for _, blackout := range faculty.Blackouts {
			if !slots[blackout] {
				return fmt.Errorf("faculty %v blackout references unknown timeslot %v", faculty.ID, blackout)
			}
		}
	}

	return nil
}

func uniqueIDs(entity string, ids []uint64) error {
	if len(lo.Uniq(ids)) != len(ids) {
		return fmt.Errorf("duplicated %v id", entity)
	}
	return nil
}

// CatalogFromJson loads and validates a catalog snapshot from a JSON file.
func CatalogFromJson(file string) (Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Catalog{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return Catalog{}, err
	}

	var catalog Catalog
	if err := mapstructure.Decode(raw, &catalog); err != nil {
		return Catalog{}, err
	}

	if err := catalog.Validate(); err != nil {
		return Catalog{}, err
	}
	return catalog, nil
}
