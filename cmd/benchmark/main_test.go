package main

import (
	"testing"
	"time"

	"timegrid/internal/csp"
	"timegrid/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSyntheticCatalog(t *testing.T) {
	catalog := syntheticCatalog(4)

	assert.Nil(t, catalog.Validate())

	scheduler := model.NewScheduler(csp.NewBacktrackingSolver(), 30*time.Second)
	schedule, err := scheduler.Solve(catalog, "bench")

	assert.Nil(t, err)
	assert.True(t, scheduler.Verify(schedule, catalog))
}

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "solved", resultLabel(nil))
	assert.Equal(t, "timeout", resultLabel(&model.InfeasibleError{Reason: model.TimedOut}))
	assert.Equal(t, "unsatisfiable", resultLabel(&model.InfeasibleError{Reason: model.NoSolutionFound}))
}
