package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	redis  *redis.Client // nil when caching is disabled
	logger *logrus.Logger
}

func NewHealthHandler(redisClient *redis.Client, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{redis: redisClient, logger: logger}
}

// GetHealth returns the basic health status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	response := HealthStatus{
		Status:    "ok",
		Service:   "auction-engine",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	// Redis only backs the response cache, so a failure degrades
	// rather than breaks the service.
	if h.redis != nil {
		if err := h.redis.Ping(c.Request.Context()).Err(); err != nil {
			response.Status = "degraded"
			response.Checks["redis"] = "failed: " + err.Error()
		} else {
			response.Checks["redis"] = "ok"
		}
	} else {
		response.Checks["redis"] = "not_configured"
	}

	statusCode := http.StatusOK
	if response.Status == "degraded" {
		statusCode = http.StatusPartialContent
	}
	c.JSON(statusCode, response)
}

// GetReady returns the readiness status. The engine is pure
// computation, so the service is ready as soon as it is serving.
func (h *HealthHandler) GetReady(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status:    "ready",
		Service:   "auction-engine",
		Timestamp: time.Now(),
	})
}
