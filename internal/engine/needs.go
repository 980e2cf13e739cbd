package engine

import "github.com/cricbid/auction-engine/internal/catalog"

// NeedsReport is a roster's structured deficiency report. Capability
// needs (bowling-capable quota) and role needs are kept separate so
// callers never compare a capability tag against a role name.
type NeedsReport struct {
	BowlingCapable int                   `json:"bowling_capable"`
	BowlersNeeded  int                   `json:"bowlers_needed"`
	RoleCounts     map[catalog.Role]int  `json:"role_counts"`
	RoleNeeds      map[catalog.Role]bool `json:"role_needs"`
	NeedsBowling   bool                  `json:"needs_bowling"`
}

// NeedsRole reports whether the roster is short on the given role.
func (r NeedsReport) NeedsRole(role catalog.Role) bool {
	return r.RoleNeeds[role]
}

// NeedsReport analyzes what a roster is missing. Pure and total: any
// roster, including an empty one, yields a valid report.
func (e *Engine) NeedsReport(roster []catalog.Player) NeedsReport {
	report := NeedsReport{
		RoleCounts: make(map[catalog.Role]int, 3),
		RoleNeeds:  make(map[catalog.Role]bool, 3),
	}

	for _, p := range roster {
		if p.CanBowl() {
			report.BowlingCapable++
		}
		report.RoleCounts[p.Role]++
	}

	if report.BowlingCapable < e.weights.MinBowlingCapable {
		report.BowlersNeeded = e.weights.MinBowlingCapable - report.BowlingCapable
		report.NeedsBowling = true
	}
	if report.RoleCounts[catalog.RoleBatsman] < e.weights.MinBatsmen {
		report.RoleNeeds[catalog.RoleBatsman] = true
	}
	if report.RoleCounts[catalog.RoleBowler] < e.weights.MinBowlers {
		report.RoleNeeds[catalog.RoleBowler] = true
	}
	if report.RoleCounts[catalog.RoleAllRounder] < e.weights.MinAllRounders {
		report.RoleNeeds[catalog.RoleAllRounder] = true
	}

	return report
}
