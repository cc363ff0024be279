package cp

import (
	"errors"
	"slices"
	"time"

	"github.com/crillab/gophersat/solver"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultMaxDescents = 1 << 16
)

var errBudgetExhausted = errors.New("search budget exhausted before a first assignment was found")

// gophersatSolver minimizes the objective by linear descent: it solves the
// hard constraints once, then repeatedly re-solves with the objective bounded
// below the best known cost until the bound becomes unsatisfiable.
type gophersatSolver struct {
	config Config
}

func newGophersatSolver(config Config) *gophersatSolver {
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.MaxDescents <= 0 {
		config.MaxDescents = defaultMaxDescents
	}
	return &gophersatSolver{config: config}
}

func (gs *gophersatSolver) Solve(problem Problem) (Solution, error) {
	constrs := translate(problem)
	deadline := time.Now().Add(gs.config.Timeout)

	best, expired := solveOnce(constrs, problem.Variables, deadline)
	if expired {
		return Solution{}, errBudgetExhausted
	} else if best == nil {
		return Solution{Status: StatusInfeasible}, nil
	}
	cost := evaluate(problem.Objective, best)

	for descent := 0; descent < gs.config.MaxDescents; descent++ {
		if cost == 0 {
			return Solution{Status: StatusOptimal, Assignment: best, Objective: cost}, nil
		}

		bounded := append(slices.Clone(constrs), objectiveBound(problem.Objective, cost-1))
		model, expired := solveOnce(bounded, problem.Variables, deadline)
		if expired {
			return Solution{Status: StatusFeasible, Assignment: best, Objective: cost}, nil
		} else if model == nil { // No strictly better assignment exists
			return Solution{Status: StatusOptimal, Assignment: best, Objective: cost}, nil
		}

		best = model
		cost = evaluate(problem.Objective, best)
	}

	return Solution{Status: StatusFeasible, Assignment: best, Objective: cost}, nil
}

// solveOnce runs a single satisfiability check bounded by the deadline. It
// returns the assignment padded to the declared variable count, nil when the
// instance is unsatisfiable, or expired when the deadline cuts the search
// short. Gophersat's Solve cannot be interrupted, so an expired search is
// abandoned to its goroutine.
func solveOnce(constrs []solver.PBConstr, variables int, deadline time.Time) (assignment []bool, expired bool) {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return nil, true
	}

	pb := solver.ParsePBConstrs(constrs)
	s := solver.New(pb)

	statuses := make(chan solver.Status, 1)
	go func() { statuses <- s.Solve() }()

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case status := <-statuses:
		if status != solver.Sat {
			return nil, false
		}
	case <-timer.C:
		return nil, true
	}

	assignment = make([]bool, variables)
	copy(assignment, s.Model())
	return assignment, false
}

// translate lowers the declarative instance into gophersat constraints. The
// constructors take ownership of their slices and may negate literals in
// place, so every call gets its own copy.
func translate(problem Problem) []solver.PBConstr {
	constrs := make([]solver.PBConstr, 0, problem.Constraints())

	for _, clause := range problem.Clauses {
		constrs = append(constrs, solver.PropClause(slices.Clone(clause)...))
	}
	for _, cardinality := range problem.Exactly {
		constrs = append(constrs, solver.Eq(slices.Clone(cardinality.Lits), uniformWeights(len(cardinality.Lits)), cardinality.Count)...)
	}
	for _, lits := range problem.AtMostOne {
		constrs = append(constrs, solver.AtMost(slices.Clone(lits), 1))
	}
	for _, linear := range problem.AtLeast {
		constrs = append(constrs, solver.GtEq(slices.Clone(linear.Lits), slices.Clone(linear.Weights), linear.Bound))
	}

	return constrs
}

func objectiveBound(objective []Term, atMost int) solver.PBConstr {
	lits := make([]int, len(objective))
	weights := make([]int, len(objective))
	for i, term := range objective {
		lits[i] = term.Lit
		weights[i] = term.Weight
	}
	return solver.LtEq(lits, weights, atMost)
}

func evaluate(objective []Term, assignment []bool) int {
	cost := 0
	for _, term := range objective {
		if assignment[term.Lit-1] {
			cost += term.Weight
		}
	}
	return cost
}

func uniformWeights(n int) []int {
	weights := make([]int, n)
	for i := range weights {
		weights[i] = 1
	}
	return weights
}
