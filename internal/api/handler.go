package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"hotel-reservation-backend/internal/reservation"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	engine   *reservation.Engine
	drafts   *cache.Cache
	draftTTL time.Duration
}

// NewHandler creates a new API handler. Previewed drafts are parked in drafts
// for draftTTL or until they are confirmed.
func NewHandler(engine *reservation.Engine, drafts *cache.Cache, draftTTL time.Duration) *Handler {
	return &Handler{
		engine:   engine,
		drafts:   drafts,
		draftTTL: draftTTL,
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// respondError maps engine errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case reservation.IsInvalidInput(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, reservation.ErrRoomNotFound), errors.Is(err, reservation.ErrCategoryNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, reservation.ErrStaleDraft), errors.Is(err, reservation.ErrBookingConflict):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
