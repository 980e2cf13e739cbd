package auction

import (
	"fmt"

	"github.com/cricbid/auction-engine/internal/catalog"
)

// Sale is one entry of the auction log: a pool player sold to a team
// at a price. The log order is the auction order.
type Sale struct {
	PlayerID int    `json:"player_id"`
	Team     string `json:"team"`
	Price    int    `json:"price"`
}

// TeamState is a read-only snapshot of one team's position in the
// auction, derived by folding the sale log.
type TeamState struct {
	Name        string           `json:"name"`
	Roster      []catalog.Player `json:"roster"`
	Spent       int              `json:"spent"`
	Remaining   int              `json:"remaining"`
	SlotsFilled int              `json:"slots_filled"`
}

// SlotsLeft returns the number of auction picks the team still has to
// make.
func (t TeamState) SlotsLeft() int {
	return AuctionSlots - t.SlotsFilled
}

// HardCap returns the team's maximum affordable bid on the next pick.
func (t TeamState) HardCap() int {
	return HardCap(t.Remaining, t.SlotsLeft())
}

// Fold replays a sale log over the catalog and produces per-team
// states plus the remaining auction pool. The log is validated as it
// is replayed; a sale that names an unknown player or team, sells a
// player twice, or breaches a team's budget or slot count is an error.
func Fold(players []catalog.Player, sales []Sale) (map[string]*TeamState, []catalog.Player, error) {
	byID := make(map[int]catalog.Player, len(players))
	teams := make(map[string]*TeamState)

	for _, p := range players {
		byID[p.ID] = p
	}
	for _, name := range catalog.Teams() {
		teams[name] = &TeamState{Name: name, Remaining: BudgetPerTeam}
	}

	// Pre-assigned players join their rosters before any bidding.
	for _, p := range players {
		if !p.PreAssigned() {
			continue
		}
		state, ok := teams[p.Team]
		if !ok {
			return nil, nil, fmt.Errorf("pre-assigned player %q names unknown team %q", p.Name, p.Team)
		}
		state.Roster = append(state.Roster, p)
	}

	sold := make(map[int]bool, len(sales))
	for i, sale := range sales {
		player, ok := byID[sale.PlayerID]
		if !ok {
			return nil, nil, fmt.Errorf("sale %d: unknown player id %d", i, sale.PlayerID)
		}
		if player.PreAssigned() {
			return nil, nil, fmt.Errorf("sale %d: %s is pre-assigned and cannot be auctioned", i, player.Name)
		}
		if sold[sale.PlayerID] {
			return nil, nil, fmt.Errorf("sale %d: %s already sold", i, player.Name)
		}
		state, ok := teams[sale.Team]
		if !ok {
			return nil, nil, fmt.Errorf("sale %d: unknown team %q", i, sale.Team)
		}
		if sale.Price < BasePrice {
			return nil, nil, fmt.Errorf("sale %d: price %d below base price %d", i, sale.Price, BasePrice)
		}
		if state.SlotsLeft() <= 0 {
			return nil, nil, fmt.Errorf("sale %d: team %s has no auction slots left", i, sale.Team)
		}
		if sale.Price > state.HardCap() {
			return nil, nil, fmt.Errorf("sale %d: price %d exceeds %s's affordable cap %d", i, sale.Price, sale.Team, state.HardCap())
		}

		sold[sale.PlayerID] = true
		state.Roster = append(state.Roster, player)
		state.Spent += sale.Price
		state.Remaining -= sale.Price
		state.SlotsFilled++
	}

	var pool []catalog.Player
	for _, p := range players {
		if !p.PreAssigned() && !sold[p.ID] {
			pool = append(pool, p)
		}
	}

	return teams, pool, nil
}
