package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cricbid/auction-engine/internal/auction"
	"github.com/cricbid/auction-engine/internal/catalog"
	"github.com/cricbid/auction-engine/internal/engine"
	"github.com/cricbid/auction-engine/pkg/cache"
)

// AdviceHandler serves the decision-support endpoints. Every request
// folds the current auction log into an immutable snapshot and hands
// it to the engine; expensive answers are cached per log version.
type AdviceHandler struct {
	manager *auction.Manager
	engine  *engine.Engine
	cache   *cache.ResponseCache // nil disables caching
	logger  *logrus.Logger
}

func NewAdviceHandler(manager *auction.Manager, eng *engine.Engine, responseCache *cache.ResponseCache, logger *logrus.Logger) *AdviceHandler {
	return &AdviceHandler{
		manager: manager,
		engine:  eng,
		cache:   responseCache,
		logger:  logger,
	}
}

// teamContext resolves a team's position from the folded log.
func (h *AdviceHandler) teamContext(c *gin.Context) (*auction.Snapshot, *auction.TeamState, bool) {
	snap, err := h.manager.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	team := c.Param("team")
	state, ok := snap.Teams[team]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown team: " + team})
		return nil, nil, false
	}
	return snap, state, true
}

// competitorViews builds read-only rival snapshots for every team
// except the given one.
func competitorViews(snap *auction.Snapshot, team string) []engine.CompetitorView {
	views := make([]engine.CompetitorView, 0, len(snap.Teams))
	for _, name := range catalog.Teams() {
		if name == team {
			continue
		}
		state := snap.Teams[name]
		views = append(views, engine.CompetitorView{
			Team:            name,
			Roster:          state.Roster,
			BudgetRemaining: state.Remaining,
			SlotsLeft:       state.SlotsLeft(),
		})
	}
	return views
}

// GetNeeds returns the deficiency report for a team's current roster.
func (h *AdviceHandler) GetNeeds(c *gin.Context) {
	_, state, ok := h.teamContext(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.engine.NeedsReport(state.Roster))
}

// GetOptimalPicks returns the mathematically optimal set of remaining
// picks for a team. An empty set means no feasible plan exists.
func (h *AdviceHandler) GetOptimalPicks(c *gin.Context) {
	snap, state, ok := h.teamContext(c)
	if !ok {
		return
	}

	picks, err := h.engine.OptimalPickSet(snap.Pool, state.Roster, state.Remaining, state.SlotsLeft())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total := 0.0
	for _, p := range picks {
		total += p.Overall
	}
	c.JSON(http.StatusOK, gin.H{
		"picks":         picks,
		"total_quality": total,
		"feasible":      len(picks) > 0,
	})
}

// GetBidRecommendation prices one candidate for a team.
func (h *AdviceHandler) GetBidRecommendation(c *gin.Context) {
	snap, state, ok := h.teamContext(c)
	if !ok {
		return
	}

	candidate, ok := h.poolCandidate(c, snap)
	if !ok {
		return
	}

	rec, err := h.engine.BidRecommendation(candidate, state.Roster, snap.Pool, state.Remaining, state.SlotsLeft())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetRecommendations returns the ranked shortlist over the whole pool.
func (h *AdviceHandler) GetRecommendations(c *gin.Context) {
	snap, state, ok := h.teamContext(c)
	if !ok {
		return
	}

	requestID := uuid.New().String()[:8]
	log := h.logger.WithFields(logrus.Fields{
		"request_id":      requestID,
		"team":            state.Name,
		"pool_size":       len(snap.Pool),
		"auction_version": snap.Version,
	})

	var cached []engine.ScoredCandidate
	key := ""
	if h.cache != nil {
		key = h.cache.Key(snap.Version, "recommendations", state.Name)
		if err := h.cache.Get(c.Request.Context(), key, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	log.Debug("Ranking pool candidates")
	ranked, err := h.engine.RankedRecommendations(snap.Pool, state.Roster, state.Remaining, state.SlotsLeft())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.cache != nil {
		h.cache.Set(c.Request.Context(), key, ranked)
	}
	c.JSON(http.StatusOK, ranked)
}

// GetCompetition returns per-rival desire and bid estimates for a
// candidate, from the given team's point of view.
func (h *AdviceHandler) GetCompetition(c *gin.Context) {
	snap, state, ok := h.teamContext(c)
	if !ok {
		return
	}
	candidate, ok := h.poolCandidate(c, snap)
	if !ok {
		return
	}

	estimates := h.engine.CompetitiveEstimate(candidate, competitorViews(snap, state.Name), snap.Pool)
	c.JSON(http.StatusOK, estimates)
}

// GetPricePrediction returns the expected clearing price for a
// candidate.
func (h *AdviceHandler) GetPricePrediction(c *gin.Context) {
	snap, state, ok := h.teamContext(c)
	if !ok {
		return
	}
	candidate, ok := h.poolCandidate(c, snap)
	if !ok {
		return
	}

	prediction := h.engine.PredictedPrice(candidate, competitorViews(snap, state.Name), snap.Pool)
	c.JSON(http.StatusOK, prediction)
}

// GetSnapshot returns current, optimal and realistic squad projections
// plus the budget plan for a team.
func (h *AdviceHandler) GetSnapshot(c *gin.Context) {
	snap, state, ok := h.teamContext(c)
	if !ok {
		return
	}

	var cached engine.Snapshot
	key := ""
	if h.cache != nil {
		key = h.cache.Key(snap.Version, "snapshot", state.Name)
		if err := h.cache.Get(c.Request.Context(), key, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	result, err := h.engine.BestTeamSnapshot(state.Roster, snap.Pool, state.Remaining, state.SlotsLeft(), competitorViews(snap, state.Name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.cache != nil {
		h.cache.Set(c.Request.Context(), key, result)
	}
	c.JSON(http.StatusOK, result)
}

// poolCandidate resolves the :id path parameter to a player still in
// the auction pool.
func (h *AdviceHandler) poolCandidate(c *gin.Context, snap *auction.Snapshot) (catalog.Player, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player id"})
		return catalog.Player{}, false
	}
	for _, p := range snap.Pool {
		if p.ID == id {
			return p, true
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "player not in auction pool"})
	return catalog.Player{}, false
}
