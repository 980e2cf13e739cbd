package engine

// Weights collects every hand-tuned constant in the engine's scoring
// formulas. They are the tuning knobs of the advice quality and are
// kept in one place so they can be tested and adjusted independently.
type Weights struct {
	// Squad composition targets
	MinBowlingCapable int
	MinBatsmen        int
	MinBowlers        int
	MinAllRounders    int

	// Bid recommendation
	MarginalScale       float64         // multiplier on marginal value in the raw bid
	DiminishThreshold   float64         // raw bids above this are discounted
	DiminishFactor      float64         // discount applied past the threshold
	BowlScarcityStep    float64         // premium per missing bowling option
	BowlRatingWeight    float64         // premium per point of bowling rating
	ScarceRolePremium   float64         // role premium when pool count <= slots left
	AbundantRolePremium float64         // role premium otherwise
	TierPremium         map[int]float64 // flat premium by tier

	// Candidate ranking
	OverallWeight      float64         // share of overall rating in the value score
	NeedMultiplier     float64         // boost when the candidate's role is needed
	BowlContribWeight  float64         // bowling rating weight inside the bowling bonus
	BowlBonusWeight    float64         // share of the bowling bonus in the value score
	TierBonusWeight    float64         // share of the tier score in the value score
	TierScore          map[int]float64 // ranking score by tier
	OptimalSetBonus    float64         // bonus for appearing in the optimizer's pick set
	BowlNeedPerMissing float64         // ranking bonus per missing bowling option
	RoleScarcityBase   float64         // base of the role scarcity bonus
	RoleScarcityStep   float64         // decay per same-role player still in the pool

	// Competitor desire
	DesireRoleNeed    float64 // competitor needs the candidate's role
	DesireBowlingNeed float64 // competitor is short on bowling and candidate can bowl
	DesireTier1       float64 // elite player attraction
	DesireTier2       float64 // strong player attraction
	DesireScarcity    float64 // few same-role players left for that competitor
	DesireBudgetFloor float64 // minimum spending-power scale
	DesireBidScale    float64 // currency units per desire point

	// Price prediction
	TierMultiplier       map[int]float64 // clearing price multiplier by tier
	FierceCompetitors    int
	FierceDesire         float64
	ModerateCompetitors  int
	ModerateDesire       float64
	CompetingDesireFloor float64 // desire above this counts as real competition
	PriceRangeLow        float64 // lower bound share of the predicted price
	PriceRangeHigh       float64 // upper bound share of the predicted price

	// Snapshot heuristics
	AcqProbFloor       float64 // minimum acquisition probability
	AcqProbStep        float64 // probability lost per strongly interested competitor
	AcqDesireThreshold float64 // desire above this marks a strong competitor
	PriorityTargets    int     // length of the priority target list
	ValueSlotHeadroom  int     // budget above base price for filler slots
}

// DefaultWeights returns the tuned production values.
func DefaultWeights() Weights {
	return Weights{
		MinBowlingCapable: 6,
		MinBatsmen:        3,
		MinBowlers:        2,
		MinAllRounders:    2,

		MarginalScale:       1.5,
		DiminishThreshold:   30,
		DiminishFactor:      0.5,
		BowlScarcityStep:    3,
		BowlRatingWeight:    0.5,
		ScarceRolePremium:   5,
		AbundantRolePremium: 2,
		TierPremium:         map[int]float64{1: 8, 2: 4, 3: 1, 4: 0},

		OverallWeight:      0.4,
		NeedMultiplier:     1.5,
		BowlContribWeight:  0.3,
		BowlBonusWeight:    0.2,
		TierBonusWeight:    0.1,
		TierScore:          map[int]float64{1: 2.0, 2: 1.0, 3: 0.3, 4: 0},
		OptimalSetBonus:    5.0,
		BowlNeedPerMissing: 2.0,
		RoleScarcityBase:   3.0,
		RoleScarcityStep:   0.3,

		DesireRoleNeed:    3.0,
		DesireBowlingNeed: 2.5,
		DesireTier1:       3.0,
		DesireTier2:       1.5,
		DesireScarcity:    2.0,
		DesireBudgetFloor: 0.5,
		DesireBidScale:    2.5,

		TierMultiplier:       map[int]float64{1: 1.4, 2: 1.2, 3: 1.0, 4: 0.9},
		FierceCompetitors:    3,
		FierceDesire:         8,
		ModerateCompetitors:  2,
		ModerateDesire:       5,
		CompetingDesireFloor: 2,
		PriceRangeLow:        0.7,
		PriceRangeHigh:       1.5,

		AcqProbFloor:       0.1,
		AcqProbStep:        0.25,
		AcqDesireThreshold: 3,
		PriorityTargets:    10,
		ValueSlotHeadroom:  3,
	}
}
