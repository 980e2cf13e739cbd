// Package solver solves the binary selection programs behind squad
// optimization: pick exactly K items maximizing total value subject to
// a spend ceiling and a minimum quota of gated items.
//
// LP relaxations are solved with gonum's simplex; integrality is
// enforced by branch-and-bound over the binary variables. A tiny
// index-based penalty on the objective makes tie-breaking among equal
// optima deterministic (lower index wins).
package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ErrInfeasible reports that no selection satisfies the constraints.
// Callers treat it as a valid "no plan" outcome, not a failure.
var ErrInfeasible = errors.New("solver: no feasible selection")

const (
	integralityTol = 1e-6
	pruneTol       = 1e-9
	simplexTol     = 1e-10

	// Small enough that no accumulated penalty can cross the 0.1
	// quantization of the value scale.
	tieBreakEps = 1e-7
)

// Problem is a binary selection program over n items.
type Problem struct {
	Values   []float64 // objective coefficient per item (maximized)
	Costs    []float64 // spend per item if selected
	MaxCost  float64   // spend ceiling
	Exactly  int       // number of items to select
	Gated    []bool    // items counting toward the quota
	MinGated int       // minimum selected gated items (0 disables)
}

// Solution holds an optimal selection.
type Solution struct {
	Selected []int   // item indices, ascending
	Value    float64 // total of Values over Selected
}

type bnbState struct {
	p   Problem
	adj []float64 // Values with the deterministic tie-break penalty

	bestAdj float64
	best    *Solution
}

// Solve finds an optimal selection for p. It returns ErrInfeasible when
// the constraints cannot be met, and a descriptive error when the
// problem itself is malformed.
func Solve(p Problem) (*Solution, error) {
	n := len(p.Values)
	if len(p.Costs) != n || len(p.Gated) != n {
		return nil, fmt.Errorf("solver: mismatched problem vectors (%d values, %d costs, %d gates)", n, len(p.Costs), len(p.Gated))
	}
	if p.Exactly < 0 {
		return nil, fmt.Errorf("solver: negative selection count %d", p.Exactly)
	}
	if p.Exactly == 0 {
		if p.MinGated > 0 {
			return nil, ErrInfeasible
		}
		return &Solution{}, nil
	}
	if p.Exactly > n {
		return nil, ErrInfeasible
	}

	s := &bnbState{
		p:       p,
		adj:     make([]float64, n),
		bestAdj: math.Inf(-1),
	}
	for i, v := range p.Values {
		s.adj[i] = v - float64(i)*tieBreakEps
	}

	assign := make([]int8, n)
	for i := range assign {
		assign[i] = -1
	}
	if err := s.branch(assign); err != nil {
		return nil, err
	}
	if s.best == nil {
		return nil, ErrInfeasible
	}
	return s.best, nil
}

// branch solves the relaxation under the current partial assignment,
// records integral optima, and otherwise splits on the most fractional
// variable.
func (s *bnbState) branch(assign []int8) error {
	bound, x, free, err := s.relax(assign)
	if err != nil {
		if errors.Is(err, ErrInfeasible) {
			return nil // pruned
		}
		return err
	}
	if bound <= s.bestAdj+pruneTol {
		return nil
	}

	// Branch on the most fractional variable; it splits the region
	// fastest.
	branchAt := -1
	for j, xi := range x {
		if math.Abs(xi-math.Round(xi)) <= integralityTol {
			continue
		}
		if branchAt == -1 || math.Abs(xi-0.5) < math.Abs(x[branchAt]-0.5) {
			branchAt = j
		}
	}

	if branchAt == -1 {
		s.record(assign, x, free)
		return nil
	}

	// Fix-to-one first so good incumbents appear early.
	for _, value := range []int8{1, 0} {
		assign[free[branchAt]] = value
		if err := s.branch(assign); err != nil {
			return err
		}
	}
	assign[free[branchAt]] = -1
	return nil
}

// record registers an integral relaxation solution as the incumbent if
// it improves on the best known.
func (s *bnbState) record(assign []int8, x []float64, free []int) {
	selected := make([]int, 0, s.p.Exactly)
	adjTotal, total := 0.0, 0.0
	for i, a := range assign {
		if a == 1 {
			selected = append(selected, i)
		}
	}
	for j, xi := range x {
		if math.Round(xi) == 1 {
			selected = append(selected, free[j])
		}
	}
	sortInts(selected)
	for _, i := range selected {
		adjTotal += s.adj[i]
		total += s.p.Values[i]
	}
	if adjTotal > s.bestAdj {
		s.bestAdj = adjTotal
		s.best = &Solution{Selected: selected, Value: total}
	}
}

// relax solves the LP relaxation over the unassigned variables in
// standard form: upper bounds become explicit slack rows so every
// variable is simply nonnegative.
func (s *bnbState) relax(assign []int8) (bound float64, x []float64, free []int, err error) {
	need := s.p.Exactly
	budget := s.p.MaxCost
	quota := s.p.MinGated
	fixedAdj := 0.0

	for i, a := range assign {
		switch a {
		case -1:
			free = append(free, i)
		case 1:
			need--
			budget -= s.p.Costs[i]
			if s.p.Gated[i] {
				quota--
			}
			fixedAdj += s.adj[i]
		}
	}

	gatedFree := 0
	for _, i := range free {
		if s.p.Gated[i] {
			gatedFree++
		}
	}

	switch {
	case need < 0 || need > len(free) || budget < -pruneTol:
		return 0, nil, nil, ErrInfeasible
	case quota > need || quota > gatedFree:
		return 0, nil, nil, ErrInfeasible
	case need == 0:
		return fixedAdj, nil, free[:0], nil
	}

	n := len(free)
	useQuota := quota > 0

	// Columns: x (n), budget slack, quota surplus (optional), upper
	// bound slacks (n). Rows: count, budget, quota (optional), bounds.
	cols := n + 1 + n
	rows := 2 + n
	quotaRow := -1
	if useQuota {
		quotaRow = 2
		cols++
		rows++
	}

	c := make([]float64, cols)
	b := make([]float64, rows)
	a := mat.NewDense(rows, cols, nil)

	slackBase := n + 1
	if useQuota {
		slackBase = n + 2
	}

	for j, i := range free {
		c[j] = -s.adj[i] // simplex minimizes

		a.Set(0, j, 1)
		a.Set(1, j, s.p.Costs[i])
		if useQuota && s.p.Gated[i] {
			a.Set(quotaRow, j, 1)
		}

		boundRow := rows - n + j
		a.Set(boundRow, j, 1)
		a.Set(boundRow, slackBase+j, 1)
		b[boundRow] = 1
	}

	b[0] = float64(need)
	b[1] = budget
	a.Set(1, n, 1) // budget slack
	if useQuota {
		b[quotaRow] = float64(quota)
		a.Set(quotaRow, n+1, -1) // quota surplus
	}

	optF, optX, err := lp.Simplex(c, a, b, simplexTol, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return 0, nil, nil, ErrInfeasible
		}
		return 0, nil, nil, fmt.Errorf("solver: simplex failed: %w", err)
	}

	return fixedAdj - optF, optX[:n], free, nil
}

func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
