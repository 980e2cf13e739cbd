package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_PicksHighestValues(t *testing.T) {
	solution, err := Solve(Problem{
		Values:  []float64{10, 9, 8, 1},
		Costs:   []float64{5, 5, 5, 5},
		MaxCost: 100,
		Exactly: 2,
		Gated:   []bool{false, false, false, false},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, solution.Selected)
	assert.InDelta(t, 19.0, solution.Value, 1e-9)
}

func TestSolve_BudgetLimitsSelection(t *testing.T) {
	// Item 0 is the best value but too expensive to pair with anything.
	solution, err := Solve(Problem{
		Values:  []float64{10, 9, 8},
		Costs:   []float64{12, 5, 5},
		MaxCost: 10,
		Exactly: 2,
		Gated:   []bool{false, false, false},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, solution.Selected)
	assert.InDelta(t, 17.0, solution.Value, 1e-9)
}

func TestSolve_BudgetInfeasible(t *testing.T) {
	_, err := Solve(Problem{
		Values:  []float64{10, 9},
		Costs:   []float64{5, 5},
		MaxCost: 9,
		Exactly: 2,
		Gated:   []bool{false, false},
	})
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestSolve_GatedQuotaForcesLowerValue(t *testing.T) {
	// Without the quota the answer is {0, 1}; the quota forces one of
	// the gated items in, and item 3 is the better of the two.
	solution, err := Solve(Problem{
		Values:   []float64{10, 9, 1, 2},
		Costs:    []float64{5, 5, 5, 5},
		MaxCost:  100,
		Exactly:  2,
		Gated:    []bool{false, false, true, true},
		MinGated: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, solution.Selected)
	assert.InDelta(t, 12.0, solution.Value, 1e-9)
}

func TestSolve_QuotaExceedsGatedSupply(t *testing.T) {
	_, err := Solve(Problem{
		Values:   []float64{10, 9, 8},
		Costs:    []float64{5, 5, 5},
		MaxCost:  100,
		Exactly:  3,
		Gated:    []bool{true, true, false},
		MinGated: 3,
	})
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestSolve_QuotaExceedsSelectionCount(t *testing.T) {
	_, err := Solve(Problem{
		Values:   []float64{10, 9, 8},
		Costs:    []float64{5, 5, 5},
		MaxCost:  100,
		Exactly:  1,
		Gated:    []bool{true, true, true},
		MinGated: 2,
	})
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestSolve_ZeroSelection(t *testing.T) {
	solution, err := Solve(Problem{
		Values:  []float64{10},
		Costs:   []float64{5},
		MaxCost: 100,
		Gated:   []bool{false},
	})
	require.NoError(t, err)
	assert.Empty(t, solution.Selected)
	assert.Zero(t, solution.Value)

	_, err = Solve(Problem{
		Values:   []float64{10},
		Costs:    []float64{5},
		MaxCost:  100,
		Gated:    []bool{false},
		MinGated: 1,
	})
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestSolve_SelectionExceedsPool(t *testing.T) {
	_, err := Solve(Problem{
		Values:  []float64{10, 9},
		Costs:   []float64{5, 5},
		MaxCost: 100,
		Exactly: 3,
		Gated:   []bool{false, false},
	})
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestSolve_TiesBreakToLowerIndex(t *testing.T) {
	solution, err := Solve(Problem{
		Values:  []float64{5, 5, 5, 5},
		Costs:   []float64{5, 5, 5, 5},
		MaxCost: 100,
		Exactly: 2,
		Gated:   []bool{false, false, false, false},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, solution.Selected)
}

func TestSolve_MismatchedVectors(t *testing.T) {
	_, err := Solve(Problem{
		Values:  []float64{10, 9},
		Costs:   []float64{5},
		MaxCost: 100,
		Exactly: 1,
		Gated:   []bool{false, false},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInfeasible)
}

func TestSolve_NegativeSelectionCount(t *testing.T) {
	_, err := Solve(Problem{
		Values:  []float64{10},
		Costs:   []float64{5},
		MaxCost: 100,
		Exactly: -1,
		Gated:   []bool{false},
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInfeasible)
}

func TestSolve_SelectAll(t *testing.T) {
	solution, err := Solve(Problem{
		Values:  []float64{3, 2, 1},
		Costs:   []float64{5, 5, 5},
		MaxCost: 15,
		Exactly: 3,
		Gated:   []bool{false, false, false},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, solution.Selected)
	assert.InDelta(t, 6.0, solution.Value, 1e-9)
}
