package model

import (
	"fmt"

	"chronos/internal/cp"
)

type cpTimetabler struct {
	//** Dependencies
	solver cp.Solver

	config Config
}

func (timetabler *cpTimetabler) Build(input ModelInput) (Result, error) {
	//** Validate and normalize the description (fails before any variable is created)
	descriptor, err := Validate(input, timetabler.config.Slots())
	if err != nil {
		return Result{}, err
	}

	//** Settle counting infeasibilities before any variable is created
	if capacityExceeded(descriptor, timetabler.config.Slots()) {
		return infeasibleResult(), nil
	}

	//** Build decision variables, hard constraints and the penalty objective
	output := buildProblem(descriptor, timetabler.config.PeriodsPerDay)

	//** Search for a minimal-penalty assignment within the configured budget
	solution, err := timetabler.solver.Solve(output.problem)
	if err != nil {
		return Result{}, fmt.Errorf("an error occurred during the search: %w", err)
	}

	//** Derive the timetable and its metrics from the final assignment
	return extract(solution, descriptor, output, timetabler.config.Slots())
}

// capacityExceeded reports whether some class or teacher needs more weekly
// periods than the week has slots. Such instances are unsatisfiable by
// counting alone, so the search is skipped entirely.
func capacityExceeded(descriptor Descriptor, slots uint64) bool {
	teacherLoad := make([]uint64, len(descriptor.Teachers))
	for _, row := range descriptor.Curriculum {
		classLoad := uint64(0)
		for _, subject := range row {
			classLoad += descriptor.Periods[subject]
			teacherLoad[descriptor.TeacherOf[subject]] += descriptor.Periods[subject]
		}
		if classLoad > slots {
			return true
		}
	}

	for _, load := range teacherLoad {
		if load > slots {
			return true
		}
	}
	return false
}
