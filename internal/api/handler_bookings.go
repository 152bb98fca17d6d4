package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hotel-reservation-backend/internal/availability"
	"hotel-reservation-backend/internal/parse"
	"hotel-reservation-backend/internal/reservation"
)

type bookingRequest struct {
	RoomID     int64  `json:"roomId"`
	ClientName string `json:"clientName"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

type confirmBookingRequest struct {
	Token string `json:"token"`
	bookingRequest
}

type parkedDraft struct {
	draft     reservation.Draft
	expiresAt time.Time
}

func (r bookingRequest) dateRange() (availability.Range, error) {
	from, err := parse.Date(r.StartDate)
	if err != nil {
		return availability.Range{}, err
	}
	to, err := parse.Date(r.EndDate)
	if err != nil {
		return availability.Range{}, err
	}
	return availability.Range{From: from, To: to}, nil
}

// preview runs a preview for req and writes the error response itself when it
// fails or is rejected.
func (h *Handler) preview(c *gin.Context, req bookingRequest) (*reservation.Draft, bool) {
	if req.RoomID <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "roomId is required"})
		return nil, false
	}
	rng, err := req.dateRange()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected yyyy-MM-dd"})
		return nil, false
	}

	result, err := h.engine.Preview(c.Request.Context(), req.RoomID, rng, req.ClientName)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if result.Rejected() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "booking not possible", "reason": result.Rejection})
		return nil, false
	}
	return result.Draft, true
}

// PreviewBooking handles POST /api/bookings/preview. The priced draft is kept
// under its token so it can be confirmed later.
func (h *Handler) PreviewBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	draft, ok := h.preview(c, req)
	if !ok {
		return
	}

	parked := parkedDraft{draft: *draft, expiresAt: time.Now().Add(h.draftTTL)}
	h.drafts.Set(draft.Token.String(), parked, h.draftTTL)
	c.JSON(http.StatusOK, newDraftResponse(draft, parked.expiresAt))
}

// ConfirmBooking handles POST /api/bookings. A token confirms a previewed
// draft; without one the booking fields are previewed and confirmed at once.
func (h *Handler) ConfirmBooking(c *gin.Context) {
	var req confirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	var draft reservation.Draft
	if req.Token != "" {
		token, err := uuid.Parse(req.Token)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token"})
			return
		}
		cached, found := h.drafts.Get(token.String())
		if !found {
			c.JSON(http.StatusGone, gin.H{"error": "booking draft expired or unknown, preview again"})
			return
		}
		h.drafts.Delete(token.String())
		draft = cached.(parkedDraft).draft
	} else {
		previewed, ok := h.preview(c, req.bookingRequest)
		if !ok {
			return
		}
		draft = *previewed
	}

	booking, err := h.engine.Confirm(c.Request.Context(), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBookingResponse(*booking))
}

// CancelBooking handles DELETE /api/bookings/:roomId.
func (h *Handler) CancelBooking(c *gin.Context) {
	roomID, ok := pathID(c, "roomId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.engine.GetRoom(ctx, roomID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.engine.Cancel(ctx, roomID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
