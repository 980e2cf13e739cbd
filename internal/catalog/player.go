package catalog

import "math"

// Role classifies a player by primary skill.
type Role string

const (
	RoleBatsman    Role = "Batsman"
	RoleBowler     Role = "Bowler"
	RoleAllRounder Role = "All-rounder"
)

// Tag marks pre-assigned marquee players. Tagged players belong to a
// team before the auction starts and are always tier 1.
type Tag string

const (
	TagCaptain     Tag = "Captain"
	TagViceCaptain Tag = "Vice-Captain"
)

// Rating thresholds for derived fields.
const (
	CanBowlThreshold = 4 // bowling rating at or above this counts toward the bowling quota

	tier1Threshold = 7.5
	tier2Threshold = 5.5
	tier3Threshold = 3.5
)

// Overall rating weights. The league's published rules describe a
// 40/35/25 split; the scoring that has always been applied is 40/40/20
// and every historical tier assignment depends on it, so 40/40/20 is
// kept as the single source of truth.
const (
	battingWeight  = 0.40
	bowlingWeight  = 0.40
	fieldingWeight = 0.20
)

// Player is an immutable catalog record. Role, Overall and Tier are
// derived from the three ratings via Recompute; identity never changes.
type Player struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Batting  int    `json:"batting"`
	Bowling  int    `json:"bowling"`
	Fielding int    `json:"fielding"`

	// Pre-assignment metadata (captains and vice-captains only)
	Tag        Tag    `json:"tag,omitempty"`
	Team       string `json:"team,omitempty"`
	ForcedRole Role   `json:"forced_role,omitempty"`

	// Derived fields
	Role    Role    `json:"role"`
	Overall float64 `json:"overall"`
	Tier    int     `json:"tier"`
}

// CanBowl reports whether the player counts toward the squad-level
// bowling quota.
func (p Player) CanBowl() bool {
	return p.Bowling >= CanBowlThreshold
}

// PreAssigned reports whether the player belongs to a team before the
// auction.
func (p Player) PreAssigned() bool {
	return p.Tag == TagCaptain || p.Tag == TagViceCaptain
}

// Recompute refreshes the derived Role, Overall and Tier from the
// ratings. It must be called after any rating edit.
func (p *Player) Recompute() {
	p.Role = classifyRole(*p)
	p.Overall = computeOverall(*p)
	p.Tier = classifyTier(*p)
}

func classifyRole(p Player) Role {
	if p.ForcedRole != "" {
		return p.ForcedRole
	}
	switch {
	case p.Batting >= 4 && p.Bowling >= 4:
		return RoleAllRounder
	case p.Bowling >= 4:
		return RoleBowler
	default:
		return RoleBatsman
	}
}

func computeOverall(p Player) float64 {
	raw := float64(p.Batting)*battingWeight + float64(p.Bowling)*bowlingWeight + float64(p.Fielding)*fieldingWeight
	return math.Round(raw*10) / 10
}

func classifyTier(p Player) int {
	if p.PreAssigned() {
		return 1
	}
	overall := computeOverall(p)
	switch {
	case overall >= tier1Threshold:
		return 1
	case overall >= tier2Threshold:
		return 2
	case overall >= tier3Threshold:
		return 3
	default:
		return 4
	}
}
