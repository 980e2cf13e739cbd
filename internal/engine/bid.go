package engine

import (
	"fmt"
	"math"

	"github.com/cricbid/auction-engine/internal/auction"
	"github.com/cricbid/auction-engine/internal/catalog"
)

// Verdict classifies a bid recommendation.
type Verdict string

const (
	VerdictMustBuy     Verdict = "must-buy"
	VerdictGoodBuy     Verdict = "good-buy"
	VerdictNeedBuy     Verdict = "need-based-buy"
	VerdictBowlingNeed Verdict = "bowling-need-buy"
	VerdictSkip        Verdict = "skip-base-only"
)

// Verdict thresholds on marginal value.
const (
	mustBuyMarginal = 3.0
	goodBuyMarginal = 1.0
)

// BidRecommendation is the engine's pricing advice for one candidate.
// Ephemeral: recomputed per query, never stored.
type BidRecommendation struct {
	Player          catalog.Player `json:"player"`
	RecommendedMax  int            `json:"recommended_max"`
	HardMax         int            `json:"hard_max"`
	MarginalValue   float64        `json:"marginal_value"`
	NeedPremium     float64        `json:"need_premium"`
	TierPremium     float64        `json:"tier_premium"`
	Verdict         Verdict        `json:"verdict"`
	VerdictDetail   string         `json:"verdict_detail"`
	BaselineQuality float64        `json:"baseline_quality"`
	BoostedQuality  float64        `json:"boosted_quality"`
}

// BidRecommendation prices one candidate by re-solving the squad
// optimizer with and without the candidate: the marginal value is the
// quality the candidate adds that the best alternative use of the same
// budget and slot cannot replicate. Need, scarcity and tier premiums
// are layered on top.
func (e *Engine) BidRecommendation(candidate catalog.Player, roster, pool []catalog.Player, budgetRemaining, slotsToFill int) (*BidRecommendation, error) {
	if budgetRemaining < 0 {
		return nil, fmt.Errorf("engine: negative budget %d", budgetRemaining)
	}
	if slotsToFill < 0 {
		return nil, fmt.Errorf("engine: negative slot count %d", slotsToFill)
	}
	if !containsPlayer(pool, candidate.ID) {
		return nil, fmt.Errorf("engine: candidate %q (id %d) is not in the pool", candidate.Name, candidate.ID)
	}

	w := e.weights
	needs := e.NeedsReport(roster)
	hardMax := auction.HardCap(budgetRemaining, slotsToFill)

	others := excludePlayer(pool, candidate.ID)

	// Baseline: the best squad money can buy without the candidate.
	baselinePicks, err := e.OptimalPickSet(others, roster, budgetRemaining, slotsToFill)
	if err != nil {
		return nil, err
	}
	baseline := totalQuality(baselinePicks)

	// Boosted: the candidate forced in, consuming one slot and one
	// base price, with the optimizer filling the rest.
	var boosted float64
	if slotsToFill > 0 {
		boostedRoster := append(append([]catalog.Player{}, roster...), candidate)
		switch {
		case slotsToFill == 1:
			boosted = candidate.Overall
		case budgetRemaining < auction.BasePrice:
			boosted = 0 // cannot even afford the candidate
		default:
			picks, err := e.OptimalPickSet(others, boostedRoster, budgetRemaining-auction.BasePrice, slotsToFill-1)
			if err != nil {
				return nil, err
			}
			if len(picks) == 0 {
				boosted = 0 // infeasible with the candidate locked in
			} else {
				boosted = candidate.Overall + totalQuality(picks)
			}
		}
	}

	marginal := math.Max(0, boosted-baseline)

	// Need-based premium.
	needPremium := 0.0
	if needs.BowlersNeeded > 0 && candidate.CanBowl() {
		available := countBowlingCapable(pool)
		scarcity := math.Max(0, float64(needs.BowlersNeeded-available+1))
		needPremium += scarcity*w.BowlScarcityStep + float64(candidate.Bowling)*w.BowlRatingWeight
	}
	if needs.NeedsRole(candidate.Role) {
		if countRole(pool, candidate.Role) <= slotsToFill {
			needPremium += w.ScarceRolePremium
		} else {
			needPremium += w.AbundantRolePremium
		}
	}

	tierPremium := w.TierPremium[candidate.Tier]

	raw := auction.BasePrice + marginal*w.MarginalScale + needPremium + tierPremium
	if raw > w.DiminishThreshold {
		raw = w.DiminishThreshold + (raw-w.DiminishThreshold)*w.DiminishFactor
	}
	recommended := clampInt(int(math.Round(raw)), auction.BasePrice, max(hardMax, auction.BasePrice))

	verdict, detail := e.classify(candidate, needs, marginal)

	return &BidRecommendation{
		Player:          candidate,
		RecommendedMax:  recommended,
		HardMax:         hardMax,
		MarginalValue:   round1(marginal),
		NeedPremium:     round1(needPremium),
		TierPremium:     tierPremium,
		Verdict:         verdict,
		VerdictDetail:   detail,
		BaselineQuality: round1(baseline),
		BoostedQuality:  round1(boosted),
	}, nil
}

// classify applies the verdict ladder; the first match wins.
func (e *Engine) classify(candidate catalog.Player, needs NeedsReport, marginal float64) (Verdict, string) {
	switch {
	case marginal >= mustBuyMarginal:
		return VerdictMustBuy, "This player significantly boosts the squad's overall quality."
	case marginal >= goodBuyMarginal:
		return VerdictGoodBuy, "Solid addition, worth bidding above base price."
	case needs.NeedsRole(candidate.Role):
		return VerdictNeedBuy, fmt.Sprintf("The squad needs a %s and this fills the gap.", candidate.Role)
	case candidate.CanBowl() && needs.BowlersNeeded > 0:
		return VerdictBowlingNeed, fmt.Sprintf("The squad needs %d more bowling options.", needs.BowlersNeeded)
	default:
		return VerdictSkip, "Limited marginal value. Only buy at base price if needed."
	}
}

func containsPlayer(players []catalog.Player, id int) bool {
	for _, p := range players {
		if p.ID == id {
			return true
		}
	}
	return false
}

func excludePlayer(players []catalog.Player, id int) []catalog.Player {
	out := make([]catalog.Player, 0, len(players))
	for _, p := range players {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
