package bookingRepo

import (
	"context"
	"errors"
	"sync"

	"github.com/liamintemann/sierra-backend/models"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository stores booking records keyed by booking ID.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus reports whether a booking with the given ID existed.
	UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (bool, error)
	Count(ctx context.Context) (int, error)
}

// memoryBookingRepo keeps bookings in a process-local map. The mutex only
// protects the map itself; callers get no atomicity across calls.
type memoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]*models.Booking
}

// NewMemoryBookingRepo returns an empty in-memory BookingRepository.
func NewMemoryBookingRepo() BookingRepository {
	return &memoryBookingRepo{
		bookings: make(map[string]*models.Booking),
	}
}
