package model

import "chronos/internal/cp"

// Days in a scheduling week.
const Days = 5

const DefaultPeriodsPerDay = 8

// Config carries the per-solve parameters. It is passed explicitly into each
// timetabler so that concurrent solves stay independent.
type Config struct {
	PeriodsPerDay uint64
	Solver        cp.Config
}

// Slots returns the number of slots of a scheduling week.
func (config Config) Slots() uint64 {
	return Days * config.PeriodsPerDay
}

// Timetabler turns a raw problem description into a timetable Result, or
// fails with a ValidationError before any variable is created. Every call is
// an independent, stateless computation over a freshly built variable arena.
type Timetabler interface {
	Build(input ModelInput) (Result, error)
}

func NewTimetabler(solver cp.Solver, config Config) Timetabler {
	if config.PeriodsPerDay == 0 {
		config.PeriodsPerDay = DefaultPeriodsPerDay
	}
	return &cpTimetabler{
		solver: solver,
		config: config,
	}
}

// BuildProblem validates the input and returns the solver instance without
// solving it, for offline inspection of the generated constraints.
func BuildProblem(input ModelInput, config Config) (cp.Problem, error) {
	if config.PeriodsPerDay == 0 {
		config.PeriodsPerDay = DefaultPeriodsPerDay
	}

	descriptor, err := Validate(input, config.Slots())
	if err != nil {
		return cp.Problem{}, err
	}

	return buildProblem(descriptor, config.PeriodsPerDay).problem, nil
}
