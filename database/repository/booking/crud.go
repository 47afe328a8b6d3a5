package bookingRepo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/liamintemann/sierra-backend/models"
)

// Create inserts a new booking and returns its ID.
func (r *memoryBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	r.bookings[booking.ID] = &booking
	r.mu.Unlock()
	return booking.ID, nil
}

// GetByID returns a copy of the booking with the given ID.
func (r *memoryBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	b, ok := r.bookings[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (r *memoryBookingRepo) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return false, nil
	}
	b.Status = status
	return true, nil
}

func (r *memoryBookingRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings), nil
}
