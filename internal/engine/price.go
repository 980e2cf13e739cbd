package engine

import (
	"sort"

	"github.com/cricbid/auction-engine/internal/auction"
	"github.com/cricbid/auction-engine/internal/catalog"
)

// CompetitionLevel labels how contested a candidate is expected to be.
type CompetitionLevel string

const (
	CompetitionFierce   CompetitionLevel = "fierce"
	CompetitionModerate CompetitionLevel = "moderate"
	CompetitionLow      CompetitionLevel = "low"
)

// PricePrediction is the expected clearing price for a candidate.
type PricePrediction struct {
	PredictedPrice int                  `json:"predicted_price"`
	Level          CompetitionLevel     `json:"competition_level"`
	TopCompetitors []CompetitorEstimate `json:"top_competitors"`
	PriceLow       int                  `json:"price_low"`
	PriceHigh      int                  `json:"price_high"`
}

// PredictedPrice derives a clearing price from the competitive
// estimates. In an ascending auction the price clears at the
// second-highest willingness plus one increment, capped by the top
// bid; elite players then tend to exceed that naive prediction, which
// the tier multiplier accounts for.
func (e *Engine) PredictedPrice(candidate catalog.Player, competitors []CompetitorView, pool []catalog.Player) PricePrediction {
	w := e.weights
	estimates := e.CompetitiveEstimate(candidate, competitors, pool)

	if len(estimates) == 0 {
		return PricePrediction{
			PredictedPrice: auction.BasePrice,
			Level:          CompetitionLow,
			PriceLow:       auction.BasePrice,
			PriceHigh:      auction.BasePrice,
		}
	}

	bids := make([]int, len(estimates))
	for i, est := range estimates {
		bids[i] = est.EstimatedMaxBid
	}
	sort.Sort(sort.Reverse(sort.IntSlice(bids)))

	predicted := bids[0]
	if len(bids) >= 2 && bids[1]+auction.BidIncrement < predicted {
		predicted = bids[1] + auction.BidIncrement
	}

	multiplier, ok := w.TierMultiplier[candidate.Tier]
	if !ok {
		multiplier = 1.0
	}
	predicted = int(float64(predicted) * multiplier)
	if predicted < auction.BasePrice {
		predicted = auction.BasePrice
	}

	topDesire := estimates[0].DesireScore
	competing := 0
	for _, est := range estimates {
		if est.DesireScore > w.CompetingDesireFloor {
			competing++
		}
	}

	level := CompetitionLow
	switch {
	case competing >= w.FierceCompetitors || topDesire > w.FierceDesire:
		level = CompetitionFierce
	case competing >= w.ModerateCompetitors || topDesire > w.ModerateDesire:
		level = CompetitionModerate
	}

	low := max(auction.BasePrice, int(float64(predicted)*w.PriceRangeLow))
	high := int(float64(predicted) * w.PriceRangeHigh)
	if high > bids[0] {
		high = bids[0]
	}
	// The range always brackets the prediction, even when the tier
	// multiplier pushes it past the top observed bid.
	if low > predicted {
		low = predicted
	}
	if high < predicted {
		high = predicted
	}

	top := estimates
	if len(top) > 3 {
		top = top[:3]
	}

	return PricePrediction{
		PredictedPrice: predicted,
		Level:          level,
		TopCompetitors: top,
		PriceLow:       low,
		PriceHigh:      high,
	}
}
