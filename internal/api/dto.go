package api

import (
	"time"

	"hotel-reservation-backend/internal/model"
	"hotel-reservation-backend/internal/parse"
	"hotel-reservation-backend/internal/reservation"
)

type categoryResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}

type bookingResponse struct {
	ID         int64   `json:"id"`
	RoomID     int64   `json:"roomId"`
	ClientName string  `json:"clientName"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TotalPrice float64 `json:"totalPrice"`
}

type roomResponse struct {
	ID                int64             `json:"id"`
	Number            string            `json:"number"`
	CategoryID        int64             `json:"categoryId"`
	CategoryName      string            `json:"categoryName"`
	CategoryBasePrice float64           `json:"categoryBasePrice"`
	Status            model.RoomStatus  `json:"status"`
	Bookings          []bookingResponse `json:"bookings,omitempty"`
}

type draftResponse struct {
	Token        string    `json:"token"`
	RoomID       int64     `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	CategoryName string    `json:"categoryName"`
	ClientName   string    `json:"clientName"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Nights       int       `json:"nights"`
	TotalPrice   float64   `json:"totalPrice"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func newCategoryResponse(c model.RoomCategory) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, BasePrice: c.BasePrice.InexactFloat64()}
}

func newBookingResponse(b model.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		RoomID:     b.RoomID,
		ClientName: b.ClientName,
		StartDate:  parse.FormatDate(b.StartDate),
		EndDate:    parse.FormatDate(b.EndDate),
		TotalPrice: b.TotalPrice.InexactFloat64(),
	}
}

func newRoomResponse(r model.Room) roomResponse {
	resp := roomResponse{
		ID:                r.ID,
		Number:            r.Number,
		CategoryID:        r.CategoryID,
		CategoryName:      r.Category.Name,
		CategoryBasePrice: r.Category.BasePrice.InexactFloat64(),
		Status:            r.Status,
	}
	for _, b := range r.Bookings {
		resp.Bookings = append(resp.Bookings, newBookingResponse(b))
	}
	return resp
}

func newRoomsResponse(rooms []model.Room) []roomResponse {
	resp := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, newRoomResponse(r))
	}
	return resp
}

func newDraftResponse(d *reservation.Draft, expiresAt time.Time) draftResponse {
	return draftResponse{
		Token:        d.Token.String(),
		RoomID:       d.RoomID,
		RoomNumber:   d.RoomNumber,
		CategoryName: d.CategoryName,
		ClientName:   d.ClientName,
		StartDate:    parse.FormatDate(d.Range.From),
		EndDate:      parse.FormatDate(d.Range.To),
		Nights:       d.Nights,
		TotalPrice:   d.Total.InexactFloat64(),
		ExpiresAt:    expiresAt,
	}
}
