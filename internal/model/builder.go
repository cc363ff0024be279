package model

import (
	"slices"

	"chronos/internal/cp"

	"github.com/samber/lo"
)

// Objective weights of the soft constraints.
const (
	consecutiveWeight = 3 // same subject in two adjacent slots
	alignedWeight     = 1 // same subject on the same period across several days
)

// buildOutput ties the solver instance to the bookkeeping the extractor
// needs: the variable indexer and the consecutive-repeat penalty variables
// used for the consistency recount.
type buildOutput struct {
	problem     cp.Problem
	indexer     Indexer
	consecutive []int
}

// buildProblem converts a validated descriptor into decision variables, hard
// constraints and the weighted penalty objective. Decision variables live in
// a flat arena indexed by (class, subject, slot); penalty variables are
// allocated past the arena.
func buildProblem(descriptor Descriptor, periodsPerDay uint64) buildOutput {
	classes := uint64(len(descriptor.Classes))
	subjects := uint64(len(descriptor.Subjects))
	slots := Days * periodsPerDay

	indexer := NewIndexer(classes, subjects, slots)
	problem := cp.Problem{Variables: int(classes * subjects * slots)}

	//** Hard constraint: each (class, subject) pair fills exactly its required periods
	for class, row := range descriptor.Curriculum {
		for _, subject := range row {
			lits := make([]int, 0, slots)
			for slot := uint64(0); slot < slots; slot++ {
				lits = append(lits, int(indexer.Index(uint64(class), subject, slot)))
			}
			problem.Exactly = append(problem.Exactly, cp.Cardinality{
				Lits:  lits,
				Count: int(descriptor.Periods[subject]),
			})
		}
	}

	//** Hard constraint: a class studies at most one subject per slot
	for class, row := range descriptor.Curriculum {
		if len(row) < 2 {
			continue
		}
		for slot := uint64(0); slot < slots; slot++ {
			problem.AtMostOne = append(problem.AtMostOne, lo.Map(row, func(subject uint64, _ int) int {
				return int(indexer.Index(uint64(class), subject, slot))
			}))
		}
	}

	//** Hard constraint: a teacher teaches at most one class per slot
	// Explicit teacher → owned subjects index, built once
	owned := make([][]uint64, len(descriptor.Teachers))
	for subject, teacher := range descriptor.TeacherOf {
		owned[teacher] = append(owned[teacher], uint64(subject))
	}

	for teacher := range descriptor.Teachers {
		pairs := make([][2]uint64, 0)
		for class, row := range descriptor.Curriculum {
			for _, subject := range row {
				if slices.Contains(owned[teacher], subject) {
					pairs = append(pairs, [2]uint64{uint64(class), subject})
				}
			}
		}
		if len(pairs) < 2 {
			continue
		}

		for slot := uint64(0); slot < slots; slot++ {
			problem.AtMostOne = append(problem.AtMostOne, lo.Map(pairs, func(pair [2]uint64, _ int) int {
				return int(indexer.Index(pair[0], pair[1], slot))
			}))
		}
	}

	output := buildOutput{indexer: indexer}

	//** Soft constraint: consecutive repeats. Adjacency is on the raw slot
	// index, so the last period of a day and the first period of the next day
	// count as adjacent — deliberately preserved behavior.
	for class, row := range descriptor.Curriculum {
		for _, subject := range row {
			for slot := uint64(0); slot+1 < slots; slot++ {
				first := int(indexer.Index(uint64(class), subject, slot))
				second := int(indexer.Index(uint64(class), subject, slot+1))

				problem.Variables++
				penalty := problem.Variables

				// penalty ↔ first ∧ second
				problem.Clauses = append(problem.Clauses,
					[]int{-first, -second, penalty},
					[]int{first, -penalty},
					[]int{second, -penalty},
				)
				problem.Objective = append(problem.Objective, cp.Term{Lit: penalty, Weight: consecutiveWeight})
				output.consecutive = append(output.consecutive, penalty)
			}
		}
	}

	//** Soft constraint: same subject on the same period-of-day on more than one day
	for class, row := range descriptor.Curriculum {
		for _, subject := range row {
			for period := uint64(0); period < periodsPerDay; period++ {
				aligned := make([]int, 0, Days)
				for day := uint64(0); day < Days; day++ {
					aligned = append(aligned, int(indexer.Index(uint64(class), subject, day*periodsPerDay+period)))
				}

				problem.Variables++
				penalty := problem.Variables

				// penalty = 0 → at most one aligned slot is used: Σ¬x + (Days-1)·penalty ≥ Days-1
				negated := lo.Map(aligned, func(lit int, _ int) int { return -lit })
				problem.AtLeast = append(problem.AtLeast, cp.Linear{
					Lits:    append(negated, penalty),
					Weights: append(uniform(Days), Days-1),
					Bound:   Days - 1,
				})
				// penalty = 1 → at least two aligned slots are used: Σx + 2·¬penalty ≥ 2
				problem.AtLeast = append(problem.AtLeast, cp.Linear{
					Lits:    append(slices.Clone(aligned), -penalty),
					Weights: append(uniform(Days), 2),
					Bound:   2,
				})
				problem.Objective = append(problem.Objective, cp.Term{Lit: penalty, Weight: alignedWeight})
			}
		}
	}

	output.problem = problem
	return output
}

func uniform(n int) []int {
	weights := make([]int, n)
	for i := range weights {
		weights[i] = 1
	}
	return weights
}
