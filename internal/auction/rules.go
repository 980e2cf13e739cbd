package auction

// League auction rules. Every budget figure in the engine is in these
// currency units.
const (
	BudgetPerTeam = 100
	BasePrice     = 5
	BidIncrement  = 1
	SquadSize     = 11 // 2 pre-assigned + 9 auction picks
	AuctionSlots  = 9
)

// HardCap is the most a team can bid on the current pick while still
// being able to fill every remaining slot at the base price.
func HardCap(budgetRemaining, slotsLeft int) int {
	if slotsLeft <= 1 {
		return budgetRemaining
	}
	return budgetRemaining - (slotsLeft-1)*BasePrice
}
