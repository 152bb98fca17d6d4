package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/internal/factory"
	"hotel-reservation-backend/internal/parse"
	"hotel-reservation-backend/internal/reservation"
)

type createRoomRequest struct {
	Number string `json:"number" binding:"required"`
	Type   string `json:"type"`
}

type updateRoomRequest struct {
	ID         int64  `json:"id" binding:"required"`
	Number     string `json:"number" binding:"required"`
	CategoryID int64  `json:"categoryId" binding:"required"`
	Status     string `json:"status" binding:"required"`
}

// ListRooms handles GET /api/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.engine.GetAllRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRoomsResponse(rooms))
}

// ListAvailableRooms handles GET /api/rooms/available?date=yyyy-MM-dd.
// Without a date the current day is used.
func (h *Handler) ListAvailableRooms(c *gin.Context) {
	date := parse.Today(time.Now())
	if raw := c.Query("date"); raw != "" {
		parsed, err := parse.Date(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected yyyy-MM-dd"})
			return
		}
		date = parsed
	}

	rooms, err := h.engine.GetAvailableRooms(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRoomsResponse(rooms))
}

// GetRoom handles GET /api/rooms/:id.
func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	room, err := h.engine.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRoomResponse(*room))
}

// CreateRoom handles POST /api/rooms. The type defaults to the standard tier.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Type == "" {
		req.Type = string(factory.Standard)
	}

	room, err := h.engine.AddRoomViaFactory(c.Request.Context(), req.Type, req.Number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newRoomResponse(*room))
}

// UpdateRoom handles PUT /api/rooms/:id.
func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id in body does not match path"})
		return
	}

	room, err := h.engine.UpdateRoom(c.Request.Context(), reservation.RoomUpdate{
		ID:         id,
		Number:     req.Number,
		CategoryID: req.CategoryID,
		Status:     req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRoomResponse(*room))
}

// DeleteRoom handles DELETE /api/rooms/:id.
func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.engine.GetRoom(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.engine.DeleteRoom(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
