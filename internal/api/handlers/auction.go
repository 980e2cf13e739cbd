package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cricbid/auction-engine/internal/auction"
	"github.com/cricbid/auction-engine/internal/websocket"
)

// AuctionHandler serves the auction-state endpoints: the folded state,
// sale recording and undo. State changes are pushed to connected
// dashboards through the hub.
type AuctionHandler struct {
	manager *auction.Manager
	hub     *websocket.Hub
	logger  *logrus.Logger
}

func NewAuctionHandler(manager *auction.Manager, hub *websocket.Hub, logger *logrus.Logger) *AuctionHandler {
	return &AuctionHandler{manager: manager, hub: hub, logger: logger}
}

// GetState returns the folded auction state: team positions, the
// remaining pool and the sale log.
func (h *AuctionHandler) GetState(c *gin.Context) {
	snap, err := h.manager.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"version": snap.Version,
		"teams":   snap.Teams,
		"pool":    snap.Pool,
		"sales":   snap.Sales,
	})
}

// RecordSale appends a validated sale to the auction log.
func (h *AuctionHandler) RecordSale(c *gin.Context) {
	var sale auction.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale payload: " + err.Error()})
		return
	}

	if err := h.manager.RecordSale(sale); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	version := h.manager.Version()
	if h.hub != nil {
		h.hub.BroadcastEvent(websocket.AuctionEvent{
			Type:     "sale",
			PlayerID: sale.PlayerID,
			Team:     sale.Team,
			Price:    sale.Price,
			Version:  version,
		})
	}
	c.JSON(http.StatusCreated, gin.H{"version": version})
}

// UndoLastSale removes the most recent sale from the log.
func (h *AuctionHandler) UndoLastSale(c *gin.Context) {
	sale, err := h.manager.UndoLast()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	version := h.manager.Version()
	if h.hub != nil {
		h.hub.BroadcastEvent(websocket.AuctionEvent{
			Type:     "undo",
			PlayerID: sale.PlayerID,
			Version:  version,
		})
	}
	c.JSON(http.StatusOK, gin.H{"undone": sale, "version": version})
}
