package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/cricbid/auction-engine/internal/api/handlers"
	"github.com/cricbid/auction-engine/internal/auction"
	"github.com/cricbid/auction-engine/internal/catalog"
	"github.com/cricbid/auction-engine/internal/engine"
	"github.com/cricbid/auction-engine/internal/websocket"
	"github.com/cricbid/auction-engine/pkg/cache"
	"github.com/cricbid/auction-engine/pkg/config"
	"github.com/cricbid/auction-engine/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	structuredLogger := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithService("auction-engine").WithFields(logrus.Fields{
		"environment":    cfg.Env,
		"port":           cfg.Port,
		"solver_workers": cfg.SolverWorkers,
	}).Info("Starting auction engine")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the player catalog: from Postgres when configured, from
	// the embedded league seed otherwise.
	players := catalog.Seed()
	var store *catalog.Store
	if cfg.DatabaseURL != "" {
		var err error
		store, err = catalog.NewStore(cfg.DatabaseURL, cfg.IsDevelopment(), structuredLogger)
		if err != nil {
			logger.WithService("auction-engine").Fatalf("Failed to open catalog store: %v", err)
		}
		players, err = store.Load()
		if err != nil {
			logger.WithService("auction-engine").Fatalf("Failed to load catalog: %v", err)
		}
	}

	// Optional redis-backed response cache.
	var redisClient *redis.Client
	var responseCache *cache.ResponseCache
	if cfg.CacheEnabled {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.WithService("auction-engine").Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.WithService("auction-engine").Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		responseCache = cache.NewResponseCache(redisClient, time.Duration(cfg.CacheTTL)*time.Second, structuredLogger)
	}

	manager := auction.NewManager(players, structuredLogger)
	eng := engine.New(engine.DefaultWeights(), cfg.SolverWorkers, structuredLogger)

	wsHub := websocket.NewHub(structuredLogger)
	go wsHub.Run()

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(corsMiddleware(cfg.CorsOrigins))

	adviceHandler := handlers.NewAdviceHandler(manager, eng, responseCache, structuredLogger)
	auctionHandler := handlers.NewAuctionHandler(manager, wsHub, structuredLogger)
	catalogHandler := handlers.NewCatalogHandler(manager, store, structuredLogger)
	healthHandler := handlers.NewHealthHandler(redisClient, structuredLogger)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/state", auctionHandler.GetState)
		apiV1.POST("/sales", auctionHandler.RecordSale)
		apiV1.DELETE("/sales/last", auctionHandler.UndoLastSale)
		apiV1.PUT("/players/:id/ratings", catalogHandler.UpdateRatings)

		apiV1.GET("/teams/:team/needs", adviceHandler.GetNeeds)
		apiV1.GET("/teams/:team/optimal-picks", adviceHandler.GetOptimalPicks)
		apiV1.GET("/teams/:team/recommendations", adviceHandler.GetRecommendations)
		apiV1.GET("/teams/:team/snapshot", adviceHandler.GetSnapshot)
		apiV1.GET("/teams/:team/players/:id/bid", adviceHandler.GetBidRecommendation)
		apiV1.GET("/teams/:team/players/:id/competition", adviceHandler.GetCompetition)
		apiV1.GET("/teams/:team/players/:id/price", adviceHandler.GetPricePrediction)
	}

	router.GET("/ws/auction", wsHub.HandleWebSocket)
	router.GET("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.WithService("auction-engine").WithField("port", cfg.Port).Info("Auction engine started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithService("auction-engine").Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.WithService("auction-engine").Info("Shutting down auction engine...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithService("auction-engine").Fatalf("Auction engine forced to shutdown: %v", err)
	}

	logger.WithService("auction-engine").Info("Auction engine stopped")
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
