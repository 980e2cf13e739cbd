package engine

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/cricbid/auction-engine/internal/catalog"
)

// ScoredCandidate is one entry of the priority-ordered shortlist.
type ScoredCandidate struct {
	Player         catalog.Player     `json:"player"`
	Score          float64            `json:"score"`
	InOptimal      bool               `json:"in_optimal"`
	Recommendation *BidRecommendation `json:"recommendation"`
}

// RankedRecommendations scores every pool player and attaches its bid
// recommendation, sorted by priority. Each recommendation costs two
// optimizer solves, so the full ranking is roughly 2N solves; the
// per-candidate work is independent and fans out across the engine's
// worker pool over the shared immutable snapshot.
func (e *Engine) RankedRecommendations(pool, roster []catalog.Player, budgetRemaining, slotsToFill int) ([]ScoredCandidate, error) {
	if budgetRemaining < 0 {
		return nil, fmt.Errorf("engine: negative budget %d", budgetRemaining)
	}
	if slotsToFill < 0 {
		return nil, fmt.Errorf("engine: negative slot count %d", slotsToFill)
	}
	if len(pool) == 0 || slotsToFill == 0 {
		return nil, nil
	}

	w := e.weights
	needs := e.NeedsReport(roster)

	optimalPicks, err := e.OptimalPickSet(pool, roster, budgetRemaining, slotsToFill)
	if err != nil {
		return nil, err
	}
	optimalIDs := make(map[int]bool, len(optimalPicks))
	for _, p := range optimalPicks {
		optimalIDs[p.ID] = true
	}

	ranked := make([]ScoredCandidate, len(pool))
	errs := make([]error, len(pool))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for worker := 0; worker < e.workers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				p := pool[i]

				score := e.valueScore(p, needs)
				if optimalIDs[p.ID] {
					score += w.OptimalSetBonus
				}
				if needs.BowlersNeeded > 0 && p.CanBowl() {
					score += float64(needs.BowlersNeeded) * w.BowlNeedPerMissing
				}
				if needs.NeedsRole(p.Role) {
					sameRole := countRole(pool, p.Role)
					score += math.Max(0, w.RoleScarcityBase-float64(sameRole)*w.RoleScarcityStep)
				}

				rec, err := e.BidRecommendation(p, roster, pool, budgetRemaining, slotsToFill)
				if err != nil {
					errs[i] = err
					continue
				}

				ranked[i] = ScoredCandidate{
					Player:         p,
					Score:          round2(score),
					InOptimal:      optimalIDs[p.ID],
					Recommendation: rec,
				}
			}
		}()
	}
	for i := range pool {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Player.ID < ranked[j].Player.ID
	})
	return ranked, nil
}
