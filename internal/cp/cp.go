package cp

import (
	"fmt"
	"strings"
)

// Term is one weighted literal of the objective function.
type Term struct {
	Lit    int
	Weight int
}

// Cardinality states that exactly Count of the literals must be true.
type Cardinality struct {
	Lits  []int
	Count int
}

// Linear states that the weighted sum of the literals must reach Bound.
// A negative literal -v stands for the negation of variable v.
type Linear struct {
	Lits    []int
	Weights []int
	Bound   int
}

// Problem is a declarative boolean optimization instance. Variables are
// numbered from 1 so that literals can be used directly in clauses. The
// objective is minimized subject to every hard constraint holding exactly.
type Problem struct {
	Variables int
	Clauses   [][]int
	Exactly   []Cardinality
	AtMostOne [][]int
	AtLeast   []Linear
	Objective []Term
}

// Constraints returns the total number of hard constraints of the instance.
func (p Problem) Constraints() int {
	return len(p.Clauses) + len(p.Exactly) + len(p.AtMostOne) + len(p.AtLeast)
}

// ToOPB renders the instance in OPB text format, normalized to ">=" and "="
// constraints over positive variables (a negated literal ¬x becomes -1 x with
// an adjusted bound).
func (p Problem) ToOPB() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "* #variable= %d #constraint= %d\n", p.Variables, p.Constraints())

	if len(p.Objective) > 0 {
		builder.WriteString("min:")
		for _, term := range p.Objective {
			fmt.Fprintf(&builder, " +%d x%d", term.Weight, term.Lit)
		}
		builder.WriteString(" ;\n")
	}

	for _, clause := range p.Clauses {
		writeLinear(&builder, clause, nil, 1, ">=")
	}
	for _, cardinality := range p.Exactly {
		writeLinear(&builder, cardinality.Lits, nil, cardinality.Count, "=")
	}
	for _, lits := range p.AtMostOne {
		negated := make([]int, len(lits))
		for i, lit := range lits {
			negated[i] = -lit
		}
		writeLinear(&builder, negated, nil, len(lits)-1, ">=")
	}
	for _, linear := range p.AtLeast {
		writeLinear(&builder, linear.Lits, linear.Weights, linear.Bound, ">=")
	}

	return builder.String()
}

func writeLinear(builder *strings.Builder, lits, weights []int, bound int, relation string) {
	for i, lit := range lits {
		weight := 1
		if weights != nil {
			weight = weights[i]
		}
		if lit < 0 {
			// weight*(1 - x) = weight - weight*x
			fmt.Fprintf(builder, "%+d x%d ", -weight, -lit)
			bound -= weight
		} else {
			fmt.Fprintf(builder, "%+d x%d ", weight, lit)
		}
	}
	fmt.Fprintf(builder, "%s %d ;\n", relation, bound)
}
