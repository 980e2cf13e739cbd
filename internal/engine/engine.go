// Package engine is the auction decision core: squad needs analysis, a
// constrained squad optimizer, marginal-value bid recommendations, and
// competitive bid and price forecasting. Every operation is a pure
// computation over explicit snapshots of the auction; the engine holds
// no auction state of its own.
package engine

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cricbid/auction-engine/internal/auction"
	"github.com/cricbid/auction-engine/internal/catalog"
	"github.com/cricbid/auction-engine/internal/solver"
)

// Engine evaluates auction decisions for one team.
type Engine struct {
	weights Weights
	workers int
	log     *logrus.Logger
}

func New(weights Weights, workers int, log *logrus.Logger) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{weights: weights, workers: workers, log: log}
}

// OptimalPickSet selects exactly slotsToFill pool players maximizing
// total overall quality, subject to the remaining budget (each pick
// conservatively priced at the base price) and the minimum
// bowling-capable quota implied by the current roster.
//
// Infeasibility is a valid outcome and yields an empty list; only
// contract violations (negative budget or slot count) return an error.
func (e *Engine) OptimalPickSet(pool, roster []catalog.Player, budgetRemaining, slotsToFill int) ([]catalog.Player, error) {
	if budgetRemaining < 0 {
		return nil, fmt.Errorf("engine: negative budget %d", budgetRemaining)
	}
	if slotsToFill < 0 {
		return nil, fmt.Errorf("engine: negative slot count %d", slotsToFill)
	}
	if slotsToFill == 0 || len(pool) == 0 {
		return nil, nil
	}

	bowlersNeeded := 0
	if current := countBowlingCapable(roster); current < e.weights.MinBowlingCapable {
		bowlersNeeded = e.weights.MinBowlingCapable - current
	}

	problem := solver.Problem{
		Values:   make([]float64, len(pool)),
		Costs:    make([]float64, len(pool)),
		MaxCost:  float64(budgetRemaining),
		Exactly:  slotsToFill,
		Gated:    make([]bool, len(pool)),
		MinGated: bowlersNeeded,
	}
	for i, p := range pool {
		problem.Values[i] = p.Overall
		problem.Costs[i] = auction.BasePrice
		problem.Gated[i] = p.CanBowl()
	}

	solveID := uuid.New().String()[:8]
	solution, err := solver.Solve(problem)
	if err != nil {
		if err == solver.ErrInfeasible {
			e.log.WithFields(logrus.Fields{
				"solve_id":       solveID,
				"pool_size":      len(pool),
				"slots_to_fill":  slotsToFill,
				"bowlers_needed": bowlersNeeded,
			}).Debug("No feasible pick set")
			return nil, nil
		}
		// Solver runtime failures degrade to "no plan"; the caller
		// must keep functioning without a recommendation.
		e.log.WithField("solve_id", solveID).WithError(err).Warn("Solver failed, treating as infeasible")
		return nil, nil
	}

	picks := make([]catalog.Player, len(solution.Selected))
	for i, idx := range solution.Selected {
		picks[i] = pool[idx]
	}

	e.log.WithFields(logrus.Fields{
		"solve_id":      solveID,
		"pool_size":     len(pool),
		"slots_to_fill": slotsToFill,
		"total_quality": round1(solution.Value),
	}).Debug("Optimal pick set solved")
	return picks, nil
}

// Shared scoring helpers.

func countBowlingCapable(players []catalog.Player) int {
	n := 0
	for _, p := range players {
		if p.CanBowl() {
			n++
		}
	}
	return n
}

func countRole(players []catalog.Player, role catalog.Role) int {
	n := 0
	for _, p := range players {
		if p.Role == role {
			n++
		}
	}
	return n
}

func totalQuality(players []catalog.Player) float64 {
	total := 0.0
	for _, p := range players {
		total += p.Overall
	}
	return total
}

// valueScore is the composite worth of a candidate for ranking:
// weighted overall (boosted when the role is needed), a bowling
// contribution when the team is short on bowling, and a tier bonus.
func (e *Engine) valueScore(p catalog.Player, needs NeedsReport) float64 {
	w := e.weights

	needMult := 1.0
	if needs.NeedsRole(p.Role) {
		needMult = w.NeedMultiplier
	}

	bowlBonus := 0.0
	if needs.NeedsBowling && p.CanBowl() {
		bowlBonus = float64(p.Bowling) * w.BowlContribWeight
	}

	score := p.Overall*w.OverallWeight*needMult + bowlBonus*w.BowlBonusWeight + w.TierScore[p.Tier]*w.TierBonusWeight
	return round2(score)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clampInt(x, low, high int) int {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}
