package model

import (
	"fmt"
	"strconv"

	"chronos/internal/cp"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Result is the output contract handed to external renderers. Timetable maps
// a class name to a slot-index-as-string → subject list mapping; a slot's
// list is empty for a free period and a singleton otherwise.
type Result struct {
	Timetable          map[string]map[string][]string `json:"timetable,omitempty"`
	FreePeriods        map[string]uint64              `json:"free_periods,omitempty"`
	ConsecutiveRepeats uint64                         `json:"consecutive_repeats"`
	ObjectiveValue     int                            `json:"objective_value"`
	Status             string                         `json:"status"`
	Message            string                         `json:"message,omitempty"`
}

func infeasibleResult() Result {
	return Result{
		Status:  StatusFail,
		Message: "no feasible solution",
	}
}

// extract converts a solver solution into the Result. It recounts consecutive
// repeats observationally (by comparing the first subject of adjacent slots)
// and asserts that the recount matches the realized penalty variables.
func extract(solution cp.Solution, descriptor Descriptor, output buildOutput, slots uint64) (Result, error) {
	if solution.Status == cp.StatusInfeasible {
		return infeasibleResult(), nil
	}

	timetable := make(map[string]map[string][]string, len(descriptor.Classes))
	freePeriods := make(map[string]uint64, len(descriptor.Classes))

	for class, row := range descriptor.Curriculum {
		name := descriptor.Classes[class]

		perSlot := make(map[string][]string, slots)
		for slot := uint64(0); slot < slots; slot++ {
			perSlot[strconv.FormatUint(slot, 10)] = []string{}
		}

		// Only curriculum triples are consulted, so variables outside the
		// class's subject set can never leak into the timetable
		for _, subject := range row {
			for slot := uint64(0); slot < slots; slot++ {
				if solution.Assignment[output.indexer.Index(uint64(class), subject, slot)-1] {
					key := strconv.FormatUint(slot, 10)
					perSlot[key] = append(perSlot[key], descriptor.Subjects[subject])
				}
			}
		}
		timetable[name] = perSlot

		free := uint64(0)
		for slot := uint64(0); slot < slots; slot++ {
			if len(perSlot[strconv.FormatUint(slot, 10)]) == 0 {
				free++
			}
		}
		freePeriods[name] = free
	}

	repeats := recountConsecutiveRepeats(timetable, descriptor.Classes, slots)

	realized := uint64(0)
	for _, penalty := range output.consecutive {
		if solution.Assignment[penalty-1] {
			realized++
		}
	}
	if realized != repeats {
		return Result{}, fmt.Errorf("inconsistent assignment: %v realized consecutive-repeat penalties, recounted %v", realized, repeats)
	}

	return Result{
		Timetable:          timetable,
		FreePeriods:        freePeriods,
		ConsecutiveRepeats: repeats,
		ObjectiveValue:     solution.Objective,
		Status:             StatusSuccess,
	}, nil
}

// recountConsecutiveRepeats scans each class's adjacent slot pairs and
// compares the first subject occupying each slot. The adjacency rule matches
// the objective's: day boundaries are not special-cased.
func recountConsecutiveRepeats(timetable map[string]map[string][]string, classes []string, slots uint64) uint64 {
	repeats := uint64(0)
	for _, name := range classes {
		for slot := uint64(0); slot+1 < slots; slot++ {
			current := timetable[name][strconv.FormatUint(slot, 10)]
			next := timetable[name][strconv.FormatUint(slot+1, 10)]
			if len(current) > 0 && len(next) > 0 && current[0] == next[0] {
				repeats++
			}
		}
	}
	return repeats
}
