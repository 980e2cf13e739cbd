package engine

import (
	"fmt"
	"sort"

	"github.com/cricbid/auction-engine/internal/auction"
	"github.com/cricbid/auction-engine/internal/catalog"
)

// CompetitorView is a read-only snapshot of one rival team's auction
// position, supplied by the auction-state collaborator.
type CompetitorView struct {
	Team            string           `json:"team"`
	Roster          []catalog.Player `json:"roster"`
	BudgetRemaining int              `json:"budget_remaining"`
	SlotsLeft       int              `json:"slots_left"`
}

// CompetitorEstimate scores one rival's appetite for a candidate.
type CompetitorEstimate struct {
	Team            string   `json:"team"`
	DesireScore     float64  `json:"desire_score"`
	EstimatedMaxBid int      `json:"estimated_max_bid"`
	Reasons         []string `json:"reasons"`
	BudgetRemaining int      `json:"budget_remaining"`
	SlotsLeft       int      `json:"slots_left"`
}

// CompetitiveEstimate forecasts which rivals will bid on the candidate
// and how high, ranked by desire. Desire is scored from the same needs
// vocabulary the optimizer uses, scaled by spending power, and each
// contributing factor is reported for explainability.
func (e *Engine) CompetitiveEstimate(candidate catalog.Player, competitors []CompetitorView, pool []catalog.Player) []CompetitorEstimate {
	w := e.weights
	estimates := make([]CompetitorEstimate, 0, len(competitors))

	for _, rival := range competitors {
		if rival.SlotsLeft <= 0 || rival.BudgetRemaining < auction.BasePrice {
			continue
		}

		needs := e.NeedsReport(rival.Roster)
		desire := 0.0
		var reasons []string

		if needs.NeedsRole(candidate.Role) {
			desire += w.DesireRoleNeed
			reasons = append(reasons, fmt.Sprintf("Needs a %s", candidate.Role))
		}
		if needs.BowlersNeeded > 0 && candidate.CanBowl() {
			desire += w.DesireBowlingNeed
			reasons = append(reasons, fmt.Sprintf("Needs bowling (%d more)", needs.BowlersNeeded))
		}
		switch candidate.Tier {
		case 1:
			desire += w.DesireTier1
			reasons = append(reasons, "Elite player (tier 1)")
		case 2:
			desire += w.DesireTier2
			reasons = append(reasons, "Strong player (tier 2)")
		}

		// Same-role options besides the candidate itself.
		sameRoleLeft := 0
		for _, p := range pool {
			if p.Role == candidate.Role && p.ID != candidate.ID {
				sameRoleLeft++
			}
		}
		if sameRoleLeft <= rival.SlotsLeft {
			desire += w.DesireScarcity
			reasons = append(reasons, fmt.Sprintf("Only %d other %s options left in the pool", sameRoleLeft, candidate.Role))
		}

		// Teams with deeper pockets bid more freely.
		budgetRatio := float64(rival.BudgetRemaining) / float64(auction.BudgetPerTeam)
		desire *= w.DesireBudgetFloor + budgetRatio

		if desire <= 0 {
			continue
		}

		hardCap := auction.HardCap(rival.BudgetRemaining, rival.SlotsLeft)
		bid := clampInt(int(auction.BasePrice+desire*w.DesireBidScale), auction.BasePrice, max(hardCap, auction.BasePrice))

		estimates = append(estimates, CompetitorEstimate{
			Team:            rival.Team,
			DesireScore:     round1(desire),
			EstimatedMaxBid: bid,
			Reasons:         reasons,
			BudgetRemaining: rival.BudgetRemaining,
			SlotsLeft:       rival.SlotsLeft,
		})
	}

	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].DesireScore > estimates[j].DesireScore
	})
	return estimates
}
