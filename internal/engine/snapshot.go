package engine

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/cricbid/auction-engine/internal/auction"
	"github.com/cricbid/auction-engine/internal/catalog"
)

// TargetPlayer is a pool player scored for acquisition planning.
type TargetPlayer struct {
	Player                 catalog.Player   `json:"player"`
	ValueScore             float64          `json:"value_score"`
	EstimatedCost          int              `json:"estimated_cost"`
	Competition            CompetitionLevel `json:"competition"`
	AcquisitionProbability float64          `json:"acquisition_probability"`
	ExpectedValue          float64          `json:"expected_value"`
	InOptimal              bool             `json:"in_optimal"`
}

// PlannedSlot is one entry of the budget-allocation plan.
type PlannedSlot struct {
	Slot       int    `json:"slot"`
	Type       string `json:"type"` // "priority" or "value"
	TargetRole string `json:"target_role"`
	MaxBudget  int    `json:"max_budget"`
	Strategy   string `json:"strategy"`
}

// Snapshot is the full decision picture at one auction point: where
// the squad stands, the best it can mathematically become, and what is
// realistically achievable once competition is priced in.
type Snapshot struct {
	CurrentRoster    []catalog.Player `json:"current_roster"`
	CurrentQuality   float64          `json:"current_quality"`
	CurrentAverage   float64          `json:"current_average"`
	OptimalPicks     []catalog.Player `json:"optimal_picks"`
	BestQuality      float64          `json:"best_quality"`
	BestAverage      float64          `json:"best_average"`
	RealisticPicks   []TargetPlayer   `json:"realistic_picks"`
	RealisticQuality float64          `json:"realistic_quality"`
	RealisticAverage float64          `json:"realistic_average"`
	PriorityTargets  []TargetPlayer   `json:"priority_targets"`
	BudgetPlan       []PlannedSlot    `json:"budget_plan"`
	SlotsLeft        int              `json:"slots_left"`
	BudgetRemaining  int              `json:"budget_remaining"`
}

// BestTeamSnapshot orchestrates the optimizer, the ranking score and
// the competition model into current, optimal and realistic squad
// projections plus a budget-allocation plan. The realistic projection
// is a greedy pass over expected value (score discounted by the odds
// of actually winning the player), not a joint re-optimization.
func (e *Engine) BestTeamSnapshot(roster, pool []catalog.Player, budgetRemaining, slotsToFill int, competitors []CompetitorView) (*Snapshot, error) {
	if budgetRemaining < 0 {
		return nil, fmt.Errorf("engine: negative budget %d", budgetRemaining)
	}
	if slotsToFill < 0 {
		return nil, fmt.Errorf("engine: negative slot count %d", slotsToFill)
	}

	w := e.weights
	needs := e.NeedsReport(roster)

	snap := &Snapshot{
		CurrentRoster:   roster,
		CurrentQuality:  round1(totalQuality(roster)),
		SlotsLeft:       slotsToFill,
		BudgetRemaining: budgetRemaining,
	}
	if len(roster) > 0 {
		snap.CurrentAverage = round1(totalQuality(roster) / float64(len(roster)))
	}

	optimalPicks, err := e.OptimalPickSet(pool, roster, budgetRemaining, slotsToFill)
	if err != nil {
		return nil, err
	}
	snap.OptimalPicks = optimalPicks

	bestSquad := append(append([]catalog.Player{}, roster...), optimalPicks...)
	snap.BestQuality = round1(totalQuality(bestSquad))
	if len(bestSquad) > 0 {
		snap.BestAverage = round1(totalQuality(bestSquad) / float64(len(bestSquad)))
	}

	optimalIDs := make(map[int]bool, len(optimalPicks))
	for _, p := range optimalPicks {
		optimalIDs[p.ID] = true
	}

	// Score the pool with competition priced in. Each player's scoring
	// reads only the shared immutable snapshot and writes its own slot,
	// so the work fans out across the engine's worker pool.
	targets := make([]TargetPlayer, len(pool))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for worker := 0; worker < e.workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				p := pool[i]

				estimates := e.CompetitiveEstimate(p, competitors, pool)
				strong := 0
				for _, est := range estimates {
					if est.DesireScore > w.AcqDesireThreshold {
						strong++
					}
				}
				acqProb := math.Max(w.AcqProbFloor, 1.0-float64(strong)*w.AcqProbStep)

				prediction := e.PredictedPrice(p, competitors, pool)
				value := e.valueScore(p, needs)

				targets[i] = TargetPlayer{
					Player:                 p,
					ValueScore:             value,
					EstimatedCost:          prediction.PredictedPrice,
					Competition:            prediction.Level,
					AcquisitionProbability: round2(acqProb),
					ExpectedValue:          round2(value * acqProb),
					InOptimal:              optimalIDs[p.ID],
				}
			}
		}()
	}
	for i := range pool {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	sort.SliceStable(targets, func(i, j int) bool {
		if targets[i].ExpectedValue != targets[j].ExpectedValue {
			return targets[i].ExpectedValue > targets[j].ExpectedValue
		}
		return targets[i].Player.ID < targets[j].Player.ID
	})

	// Greedy realistic picks: take the best expected value whose
	// predicted price still leaves base price for every later slot.
	remaining := budgetRemaining
	slots := slotsToFill
	realisticSquad := append([]catalog.Player{}, roster...)
	for _, t := range targets {
		if slots <= 0 {
			break
		}
		if t.EstimatedCost <= remaining-(slots-1)*auction.BasePrice {
			snap.RealisticPicks = append(snap.RealisticPicks, t)
			realisticSquad = append(realisticSquad, t.Player)
			remaining -= t.EstimatedCost
			slots--
		}
	}
	snap.RealisticQuality = round1(totalQuality(realisticSquad))
	if len(realisticSquad) > 0 {
		snap.RealisticAverage = round1(totalQuality(realisticSquad) / float64(len(realisticSquad)))
	}

	if len(targets) > w.PriorityTargets {
		targets = targets[:w.PriorityTargets]
	}
	snap.PriorityTargets = targets

	snap.BudgetPlan = e.budgetPlan(needs, budgetRemaining, slotsToFill)
	return snap, nil
}

// budgetPlan reserves base-price amounts for filler slots and spreads
// the remainder across the roles the squad still needs.
func (e *Engine) budgetPlan(needs NeedsReport, budgetRemaining, slotsToFill int) []PlannedSlot {
	if slotsToFill <= 0 {
		return nil
	}

	var urgentRoles []string
	for _, role := range []catalog.Role{catalog.RoleBatsman, catalog.RoleBowler, catalog.RoleAllRounder} {
		if needs.NeedsRole(role) {
			urgentRoles = append(urgentRoles, string(role))
		}
	}
	if needs.BowlersNeeded > 0 {
		urgentRoles = append(urgentRoles, "Bowler/All-rounder (bowling)")
	}

	nPriority := len(urgentRoles)
	if nPriority > slotsToFill {
		nPriority = slotsToFill
	}
	nFiller := slotsToFill - nPriority

	fillerReserve := nFiller * auction.BasePrice
	priorityBudget := budgetRemaining - fillerReserve

	plan := make([]PlannedSlot, 0, slotsToFill)
	if nPriority > 0 {
		perPriority := priorityBudget / nPriority
		hardCap := auction.HardCap(budgetRemaining, slotsToFill)
		for i := 0; i < nPriority; i++ {
			plan = append(plan, PlannedSlot{
				Slot:       i + 1,
				Type:       "priority",
				TargetRole: urgentRoles[i],
				MaxBudget:  min(perPriority, hardCap),
				Strategy:   "Bid aggressively for top picks",
			})
		}
	}
	for i := 0; i < nFiller; i++ {
		plan = append(plan, PlannedSlot{
			Slot:       nPriority + i + 1,
			Type:       "value",
			TargetRole: "Best available",
			MaxBudget:  auction.BasePrice + e.weights.ValueSlotHeadroom,
			Strategy:   "Pick at or near base price",
		})
	}
	return plan
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
