package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/internal/mw"
	"hotel-reservation-backend/internal/reservation"
)

const (
	defaultCacheTTL = time.Minute
	defaultDraftTTL = 15 * time.Minute
)

// NewRouter creates and configures a new Gin router.
func NewRouter(engine *reservation.Engine, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()
	r.Use(mw.RequestID(), cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	cacheTTL := orDefault(cfg.CacheTTL, defaultCacheTTL)
	draftTTL := orDefault(cfg.DraftTTL, defaultDraftTTL)

	drafts := cache.New(draftTTL, 2*draftTTL)
	handler := NewHandler(engine, drafts, draftTTL)

	limit := rate.Limit(cfg.RateLimitPerSec)
	if cfg.RateLimitPerSec <= 0 {
		limit = rate.Inf
	}
	rateLimiter := mw.RateLimiter(limit, cfg.RateLimitBurst)

	// Listings are cached until the next successful write.
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(rateLimiter, mw.Invalidate(cacheStore))
	{
		api.GET("/categories", caching, handler.ListCategories)

		api.GET("/rooms", caching, handler.ListRooms)
		api.GET("/rooms/available", caching, handler.ListAvailableRooms)
		api.GET("/rooms/:id", caching, handler.GetRoom)
		api.POST("/rooms", handler.CreateRoom)
		api.PUT("/rooms/:id", handler.UpdateRoom)
		api.DELETE("/rooms/:id", handler.DeleteRoom)

		api.POST("/bookings/preview", handler.PreviewBooking)
		api.POST("/bookings", handler.ConfirmBooking)
		api.DELETE("/bookings/:roomId", handler.CancelBooking)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, mw.RequestIDHeader)
	cfg.ExposeHeaders = []string{mw.RequestIDHeader}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
