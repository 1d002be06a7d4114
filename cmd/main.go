package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"timegrid/internal/csp"
	"timegrid/internal/model"

	"github.com/samber/lo"
)

var days = map[uint64]string{
	0: "Monday",
	1: "Tuesday",
	2: "Wednesday",
	3: "Thursday",
	4: "Friday",
}

func main() {
	catalogPath := flag.String("catalog", "catalog.json", "path to the catalog snapshot")
	budget := flag.Duration("budget", model.DefaultBudget, "search time budget")
	backend := flag.String("solver", "backtracking", "solver backend: backtracking or gophersat")
	name := flag.String("name", "", "schedule name")
	flag.Parse()

	catalog, err := model.CatalogFromJson(*catalogPath)
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}

	var solver csp.Solver
	switch *backend {
	case "backtracking":
		solver = csp.NewBacktrackingSolver()
	case "gophersat":
		solver = csp.NewGophersatSolver()
	default:
		log.Fatalf("unknown solver backend: %v", *backend)
	}

	scheduleName := *name
	if scheduleName == "" {
		scheduleName = fmt.Sprintf("Timetable %v", time.Now().Format("2006-01-02 15:04"))
	}

	scheduler := model.NewScheduler(solver, *budget)
	schedule, err := scheduler.Solve(catalog, scheduleName)

	var infeasible *model.InfeasibleError
	if errors.As(err, &infeasible) {
		fmt.Printf("No schedule (%v): %v\n", infeasible.Reason, infeasible)
		return
	} else if err != nil {
		log.Fatal(err)
	}

	rooms := lo.KeyBy(catalog.Rooms, func(room model.Room) uint64 { return room.ID })
	batches := lo.KeyBy(catalog.Batches, func(batch model.Batch) uint64 { return batch.ID })
	subjects := lo.KeyBy(catalog.Subjects, func(subject model.Subject) uint64 { return subject.ID })
	faculties := lo.KeyBy(catalog.Faculties, func(faculty model.Faculty) uint64 { return faculty.ID })
	slots := lo.KeyBy(catalog.Timeslots, func(slot model.Timeslot) uint64 { return slot.ID })

	assignments := slices.Clone(schedule.Assignments)
	slices.SortFunc(assignments, func(a, b model.Assignment) int {
		slotA, slotB := slots[a.Timeslot], slots[b.Timeslot]
		if slotA.Day != slotB.Day {
			return int(slotA.Day) - int(slotB.Day)
		}
		if slotA.Start != slotB.Start {
			return strings.Compare(slotA.Start, slotB.Start)
		}
		return strings.Compare(batches[a.Batch].Name, batches[b.Batch].Name)
	})

	fmt.Printf("%v (created %v)\n", schedule.Name, schedule.CreatedAt.Format(time.RFC3339))
	for _, assignment := range assignments {
		slot := slots[assignment.Timeslot]
		fmt.Printf("%-9v %v-%v  %v  %v (%v)  %v  room %v\n",
			days[slot.Day], slot.Start, slot.End,
			batches[assignment.Batch].Name,
			subjects[assignment.Subject].Code, subjects[assignment.Subject].Name,
			faculties[assignment.Faculty].Name,
			rooms[assignment.Room].Name,
		)
	}

	if !scheduler.Verify(schedule, catalog) {
		log.Fatal("verification failed")
	}

	fmt.Printf("%v assignments, all constraints hold\n", len(assignments))
}
