package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictedPrice_NoCompetition(t *testing.T) {
	e := testEngine(t)
	pool := deepPool()

	prediction := e.PredictedPrice(pool[0], nil, pool)

	assert.Equal(t, 5, prediction.PredictedPrice)
	assert.Equal(t, CompetitionLow, prediction.Level)
	assert.Equal(t, 5, prediction.PriceLow)
	assert.Equal(t, 5, prediction.PriceHigh)
	assert.Empty(t, prediction.TopCompetitors)
}

func TestPredictedPrice_SecondPriceClearing(t *testing.T) {
	e := testEngine(t)
	pool := deepPool()

	rivals := []CompetitorView{
		{Team: "Vishal", Roster: nil, BudgetRemaining: 100, SlotsLeft: 9},             // bids up to 36
		{Team: "Saurav", Roster: settledRoster(), BudgetRemaining: 100, SlotsLeft: 9}, // bids up to 16
	}

	prediction := e.PredictedPrice(pool[0], rivals, pool)

	// Clears one increment past the second bid (17), lifted by the
	// tier 1 multiplier: int(17 * 1.4) = 23.
	assert.Equal(t, 23, prediction.PredictedPrice)
	assert.Equal(t, CompetitionFierce, prediction.Level, "a rival with desire above 8 makes it fierce")
	assert.Equal(t, 16, prediction.PriceLow)
	assert.Equal(t, 34, prediction.PriceHigh)
	require.Len(t, prediction.TopCompetitors, 2)
	assert.Equal(t, "Vishal", prediction.TopCompetitors[0].Team)
}

func TestPredictedPrice_RangeBracketsPrediction(t *testing.T) {
	e := testEngine(t)
	pool := deepPool()

	// A single moderate rival: the tier multiplier lifts the predicted
	// price past the only observed bid, and the range must follow it.
	rivals := []CompetitorView{
		{Team: "Saurav", Roster: settledRoster(), BudgetRemaining: 100, SlotsLeft: 9},
	}

	prediction := e.PredictedPrice(pool[0], rivals, pool)

	assert.Equal(t, 22, prediction.PredictedPrice) // int(16 * 1.4)
	assert.Equal(t, CompetitionLow, prediction.Level)
	assert.LessOrEqual(t, prediction.PriceLow, prediction.PredictedPrice)
	assert.GreaterOrEqual(t, prediction.PriceHigh, prediction.PredictedPrice)
	assert.Equal(t, 22, prediction.PriceHigh)
}

func TestPredictedPrice_TopCompetitorsTruncated(t *testing.T) {
	e := testEngine(t)
	pool := deepPool()

	rivals := []CompetitorView{
		{Team: "A", Roster: nil, BudgetRemaining: 100, SlotsLeft: 9},
		{Team: "B", Roster: nil, BudgetRemaining: 90, SlotsLeft: 9},
		{Team: "C", Roster: nil, BudgetRemaining: 80, SlotsLeft: 9},
		{Team: "D", Roster: nil, BudgetRemaining: 70, SlotsLeft: 9},
	}

	prediction := e.PredictedPrice(pool[0], rivals, pool)

	assert.Len(t, prediction.TopCompetitors, 3)
	assert.Equal(t, CompetitionFierce, prediction.Level)
}
