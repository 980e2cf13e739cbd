package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cricbid/auction-engine/internal/auction"
	"github.com/cricbid/auction-engine/internal/catalog"
	"github.com/cricbid/auction-engine/internal/engine"
)

func setupRouter(t *testing.T) (*gin.Engine, *auction.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	manager := auction.NewManager(catalog.Seed(), log)
	eng := engine.New(engine.DefaultWeights(), 2, log)

	advice := NewAdviceHandler(manager, eng, nil, log)
	auctionHandler := NewAuctionHandler(manager, nil, log)
	catalogHandler := NewCatalogHandler(manager, nil, log)

	router := gin.New()
	api := router.Group("/api/v1")
	{
		api.GET("/state", auctionHandler.GetState)
		api.POST("/sales", auctionHandler.RecordSale)
		api.DELETE("/sales/last", auctionHandler.UndoLastSale)
		api.PUT("/players/:id/ratings", catalogHandler.UpdateRatings)
		api.GET("/teams/:team/needs", advice.GetNeeds)
		api.GET("/teams/:team/optimal-picks", advice.GetOptimalPicks)
		api.GET("/teams/:team/players/:id/bid", advice.GetBidRecommendation)
		api.GET("/teams/:team/players/:id/competition", advice.GetCompetition)
		api.GET("/teams/:team/players/:id/price", advice.GetPricePrediction)
	}
	return router, manager
}

func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetState(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/state", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Version uint64           `json:"version"`
		Pool    []catalog.Player `json:"pool"`
		Teams   map[string]any   `json:"teams"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Version)
	assert.Len(t, resp.Pool, 36)
	assert.Len(t, resp.Teams, 4)
}

func TestSaleLifecycle(t *testing.T) {
	router, manager := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/sales", auction.Sale{PlayerID: 3, Team: "Abhijeet", Price: 20})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint64(1), manager.Version())

	// A sale the rules reject does not advance the log.
	w = doRequest(router, http.MethodPost, "/api/v1/sales", auction.Sale{PlayerID: 3, Team: "Saurav", Price: 20})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, uint64(1), manager.Version())

	w = doRequest(router, http.MethodDelete, "/api/v1/sales/last", nil)
	require.Equal(t, http.StatusOK, w.Code)

	snap, err := manager.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Pool, 36)
}

func TestRecordSale_MalformedPayload(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUndoEmptyLog(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodDelete, "/api/v1/sales/last", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetNeeds(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/teams/Abhijeet/needs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var report engine.NeedsReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 2, report.BowlingCapable, "captain and vice-captain both bowl")
	assert.Equal(t, 4, report.BowlersNeeded)
}

func TestGetNeeds_UnknownTeam(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/teams/Nobody/needs", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOptimalPicks(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/teams/Vishal/optimal-picks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Picks    []catalog.Player `json:"picks"`
		Feasible bool             `json:"feasible"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Feasible)
	assert.Len(t, resp.Picks, 9)
}

func TestGetBidRecommendation(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/teams/Saurav/players/28/bid", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rec engine.BidRecommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, 28, rec.Player.ID)
	assert.GreaterOrEqual(t, rec.RecommendedMax, auction.BasePrice)
	assert.LessOrEqual(t, rec.RecommendedMax, rec.HardMax)
}

func TestGetBidRecommendation_PlayerNotInPool(t *testing.T) {
	router, _ := setupRouter(t)

	// Player 37 is a captain and never enters the pool.
	w := doRequest(router, http.MethodGet, "/api/v1/teams/Saurav/players/37/bid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/teams/Saurav/players/abc/bid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRatings(t *testing.T) {
	router, manager := setupRouter(t)

	w := doRequest(router, http.MethodPut, "/api/v1/players/2/ratings", RatingsUpdate{Batting: 4, Bowling: 9, Fielding: 4})
	require.Equal(t, http.StatusOK, w.Code)

	var player catalog.Player
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &player))
	assert.Equal(t, catalog.RoleAllRounder, player.Role)
	assert.InDelta(t, 6.0, player.Overall, 1e-9)
	assert.Equal(t, uint64(1), manager.Version())

	// Advice built after the edit sees the new ratings.
	w = doRequest(router, http.MethodGet, "/api/v1/state", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Pool []catalog.Player `json:"pool"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, p := range resp.Pool {
		if p.ID == 2 {
			assert.Equal(t, 9, p.Bowling)
		}
	}
}

func TestUpdateRatings_Invalid(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodPut, "/api/v1/players/2/ratings", RatingsUpdate{Batting: 11, Bowling: 0, Fielding: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPut, "/api/v1/players/999/ratings", RatingsUpdate{Batting: 5, Bowling: 5, Fielding: 5})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodPut, "/api/v1/players/abc/ratings", RatingsUpdate{Batting: 5, Bowling: 5, Fielding: 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCompetitionAndPrice(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/teams/Saurav/players/28/competition", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var estimates []engine.CompetitorEstimate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &estimates))
	for _, est := range estimates {
		assert.NotEqual(t, "Saurav", est.Team, "the asking team is not its own rival")
	}

	w = doRequest(router, http.MethodGet, "/api/v1/teams/Saurav/players/28/price", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var prediction engine.PricePrediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prediction))
	assert.GreaterOrEqual(t, prediction.PredictedPrice, auction.BasePrice)
	assert.LessOrEqual(t, prediction.PriceLow, prediction.PredictedPrice)
	assert.GreaterOrEqual(t, prediction.PriceHigh, prediction.PredictedPrice)
}
