package cp

import "time"

// Status classifies the outcome of a solve.
type Status int

const (
	// StatusOptimal means the assignment satisfies every hard constraint and
	// the objective value is proven minimal.
	StatusOptimal Status = iota
	// StatusFeasible means the assignment satisfies every hard constraint but
	// the budget ran out before optimality could be proven.
	StatusFeasible
	// StatusInfeasible means no assignment satisfies the hard constraints.
	StatusInfeasible
)

func (status Status) String() string {
	switch status {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	}
	return "unknown"
}

// Solution carries the final assignment (indexed by variable-1, nil when
// infeasible) together with its classification and objective value.
type Solution struct {
	Status     Status
	Assignment []bool
	Objective  int
}

// Config bounds the effort of a single solve. It is passed explicitly into
// every solver so that independent solves never share ambient state.
type Config struct {
	// Timeout is the wall-clock budget. Every satisfiability check is cut
	// off at the deadline; expiring before a first assignment is found
	// fails the solve, expiring during a descent downgrades it to Feasible.
	Timeout time.Duration
	// MaxDescents caps the number of objective-improving re-solves.
	MaxDescents int
}

type Solver interface {
	Solve(problem Problem) (Solution, error)
}

func NewSolver(config Config) Solver {
	return newGophersatSolver(config)
}
