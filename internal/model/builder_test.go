package model

import (
	"strings"
	"testing"

	"chronos/internal/cp"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestBuildProblemAccounting(t *testing.T) {
	// Arrange: 2 classes × 2 subjects, one teacher per subject, 2 periods per day
	descriptor := Descriptor{
		Classes:    []string{"10A", "10B"},
		Subjects:   []string{"Math", "English"},
		Teachers:   []string{"T1", "T2"},
		Periods:    []uint64{3, 2},
		TeacherOf:  []uint64{0, 1},
		Curriculum: [][]uint64{{0, 1}, {0, 1}},
	}
	periodsPerDay := uint64(2)
	slots := Days * periodsPerDay // 10

	// Act
	output := buildProblem(descriptor, periodsPerDay)
	problem := output.problem

	// Assert: decision arena of 2*2*10, then one penalty variable per
	// adjacent slot pair (4 pairs × 9) and per period-of-day (4 pairs × 2)
	decisionVariables := 2 * 2 * int(slots)
	consecutivePenalties := 4 * int(slots-1)
	alignedPenalties := 4 * int(periodsPerDay)
	assert.Equal(t, decisionVariables+consecutivePenalties+alignedPenalties, problem.Variables)
	assert.Len(t, output.consecutive, consecutivePenalties)

	// One exact-count constraint per (class, subject) pair
	assert.Len(t, problem.Exactly, 4)
	assert.Equal(t, []int{3, 2, 3, 2}, lo.Map(problem.Exactly, func(cardinality cp.Cardinality, _ int) int {
		return cardinality.Count
	}))

	// Class exclusivity (2 classes × 10 slots) plus teacher exclusivity
	// (2 teachers × 10 slots, each owning one subject taught to both classes)
	assert.Len(t, problem.AtMostOne, 20+20)

	// Three linking clauses per consecutive penalty, two linear constraints
	// per aligned penalty
	assert.Len(t, problem.Clauses, 3*consecutivePenalties)
	assert.Len(t, problem.AtLeast, 2*alignedPenalties)

	// Weighted objective: 3 per consecutive repeat, 1 per aligned repeat
	assert.Len(t, problem.Objective, consecutivePenalties+alignedPenalties)
	weights := lo.CountValuesBy(problem.Objective, func(term cp.Term) int { return term.Weight })
	assert.Equal(t, consecutivePenalties, weights[3])
	assert.Equal(t, alignedPenalties, weights[1])

	// Penalty variables live past the decision arena
	for _, term := range problem.Objective {
		assert.Greater(t, term.Lit, decisionVariables)
	}
}

func TestBuildProblemSkipsDegenerateExclusivity(t *testing.T) {
	// Arrange: one class, one subject, one teacher — no exclusivity needed
	descriptor := Descriptor{
		Classes:    []string{"10A"},
		Subjects:   []string{"Math"},
		Teachers:   []string{"T1"},
		Periods:    []uint64{2},
		TeacherOf:  []uint64{0},
		Curriculum: [][]uint64{{0}},
	}

	// Act
	output := buildProblem(descriptor, 2)

	// Assert
	assert.Empty(t, output.problem.AtMostOne)
	assert.Len(t, output.problem.Exactly, 1)
}

func TestBuildProblemDump(t *testing.T) {
	// Arrange
	input := ModelInput{
		Classes:  []ClassInput{{Class: "Grade 10A", Subjects: []string{"Math"}}},
		Subjects: []SubjectInput{{Subject: "Math", Periods: 2}},
		Teachers: []TeacherInput{{Teacher: "T1", Subject: "Math"}},
	}

	// Act
	problem, err := BuildProblem(input, Config{PeriodsPerDay: 2})

	// Assert
	assert.Nil(t, err)
	opb := problem.ToOPB()
	assert.True(t, strings.HasPrefix(opb, "* #variable= "))
	assert.Contains(t, opb, "min:")
}
