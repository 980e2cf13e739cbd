package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cricbid/auction-engine/internal/auction"
	"github.com/cricbid/auction-engine/internal/catalog"
)

// CatalogHandler serves the player catalog endpoints. Identity fields
// never change over the API; only ratings are editable.
type CatalogHandler struct {
	manager *auction.Manager
	store   *catalog.Store // nil without a database
	logger  *logrus.Logger
}

func NewCatalogHandler(manager *auction.Manager, store *catalog.Store, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{manager: manager, store: store, logger: logger}
}

// RatingsUpdate is the payload of a player rating edit.
type RatingsUpdate struct {
	Batting  int `json:"batting"`
	Bowling  int `json:"bowling"`
	Fielding int `json:"fielding"`
}

// UpdateRatings edits a player's three ratings; the derived role,
// overall and tier follow. The edit lands in the live catalog and,
// when a database backs it, is persisted there too.
func (h *CatalogHandler) UpdateRatings(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid player id"})
		return
	}

	var req RatingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ratings payload: " + err.Error()})
		return
	}
	for _, rating := range []int{req.Batting, req.Bowling, req.Fielding} {
		if rating < 0 || rating > 10 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ratings must be between 0 and 10"})
			return
		}
	}

	player, err := h.manager.UpdateRatings(id, req.Batting, req.Bowling, req.Fielding)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if h.store != nil {
		if _, err := h.store.UpdateRatings(id, req.Batting, req.Bowling, req.Fielding); err != nil {
			// The live catalog is already updated; losing persistence
			// is not worth failing the request.
			h.logger.WithError(err).WithField("player_id", id).Error("Failed to persist rating update")
		}
	}

	c.JSON(http.StatusOK, player)
}
