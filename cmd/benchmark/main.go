package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"timegrid/internal/csp"
	"timegrid/internal/model"
)

const budget = 30 * time.Second

var sizes = []int{2, 4, 6, 8}

type backend struct {
	name   string
	solver csp.Solver
}

func main() {
	backends := []backend{
		{"backtracking", csp.NewBacktrackingSolver()},
		{"gophersat", csp.NewGophersatSolver()},
	}

	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()
	writer.Write([]string{"batches", "solver", "result", "milliseconds"})

	for _, size := range sizes {
		catalog := syntheticCatalog(size)

		for _, entry := range backends {
			scheduler := model.NewScheduler(entry.solver, budget)

			started := time.Now()
			_, err := scheduler.Solve(catalog, fmt.Sprintf("bench-%v", size))
			elapsed := time.Since(started)

			writer.Write([]string{
				strconv.Itoa(size),
				entry.name,
				resultLabel(err),
				strconv.FormatInt(elapsed.Milliseconds(), 10),
			})
		}
	}
}

func resultLabel(err error) string {
	var infeasible *model.InfeasibleError
	switch {
	case err == nil:
		return "solved"
	case errors.As(err, &infeasible) && infeasible.Reason == model.TimedOut:
		return "timeout"
	case errors.As(err, &infeasible):
		return "unsatisfiable"
	default:
		return "error"
	}
}

// syntheticCatalog builds a feasible catalog scaled by batch count: a
// five-day grid of six one-hour slots with a 12:00-13:00 gap, one
// classroom per batch plus a smaller lab pool, and four three-a-week
// subjects per year of which one is a lab.
func syntheticCatalog(batches int) model.Catalog {
	catalog := model.Catalog{}

	starts := []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00"}
	ends := []string{"10:00", "11:00", "12:00", "14:00", "15:00", "16:00"}
	for day := range uint64(5) {
		for i := range starts {
			catalog.Timeslots = append(catalog.Timeslots, model.Timeslot{
				ID:    uint64(len(catalog.Timeslots)),
				Day:   day,
				Start: starts[i],
				End:   ends[i],
			})
		}
	}

	for i := range batches {
		catalog.Rooms = append(catalog.Rooms, model.Room{
			ID:       uint64(i),
			Name:     fmt.Sprintf("C-%d", 100+i),
			Capacity: 60,
			Type:     model.RoomClassroom,
		})
	}
	for i := range batches/2 + 1 {
		catalog.Rooms = append(catalog.Rooms, model.Room{
			ID:       uint64(batches + i),
			Name:     fmt.Sprintf("L-%d", 200+i),
			Capacity: 30,
			Type:     model.RoomLab,
		})
	}

	for i := range batches {
		year := uint64(i%4 + 1)
		catalog.Batches = append(catalog.Batches, model.Batch{
			ID:      uint64(i),
			Name:    fmt.Sprintf("CSE-Y%d-%c", year, rune('A'+i/4)),
			Program: "B.Tech CSE",
			Year:    year,
		})
	}

	for year := uint64(1); year <= 4; year++ {
		for j := range uint64(4) {
			id := (year-1)*4 + j
			catalog.Subjects = append(catalog.Subjects, model.Subject{
				ID:             id,
				Code:           fmt.Sprintf("CS%d0%d", year, j+1),
				Name:           fmt.Sprintf("Subject %d", id),
				Semesters:      []uint64{2 * year},
				ClassesPerWeek: 3,
				Lab:            j == 3,
			})
		}
	}

	for i, subject := range catalog.Subjects {
		catalog.Faculties = append(catalog.Faculties, model.Faculty{
			ID:             uint64(i),
			Name:           fmt.Sprintf("F%03d", i),
			MaxLoadPerWeek: 16,
		})
		catalog.Eligibilities = append(catalog.Eligibilities, model.Eligibility{
			Faculty: uint64(i),
			Subject: subject.ID,
		})
	}

	return catalog
}
