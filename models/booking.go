package models

import "time"

// BookingStatus tracks where a booking is in the payment flow.
type BookingStatus string

const (
	StatusPendingPayment  BookingStatus = "pending_payment"
	StatusAwaitingPayment BookingStatus = "awaiting_payment"
)

// RoomAvailability maps a room type name to the number of free units.
type RoomAvailability map[string]int

// Booking represents a guest's reservation attempt held in process memory.
type Booking struct {
	ID        string        `json:"-"`
	GuestName string        `json:"guest_name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	RoomType  string        `json:"room_type"`
	StartDate string        `json:"start_date"` // not parsed or validated
	EndDate   string        `json:"end_date"`
	Guests    int           `json:"guests"`
	Pets      bool          `json:"pets"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"` // UTC
}
