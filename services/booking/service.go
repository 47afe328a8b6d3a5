package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/liamintemann/sierra-backend/metrics"
	"github.com/liamintemann/sierra-backend/models"

	"go.uber.org/zap"
)

// CheckAvailability returns the whole inventory. Dates, guest count and pets
// are accepted but do not filter the result.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (models.RoomAvailability, error) {
	rooms, err := s.Inventory.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("CheckAvailability: failed to read inventory: %w", err)
	}
	return rooms, nil
}

// CreateBooking stores a new pending_payment booking. The room type is not
// checked against the inventory and nothing is reserved.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (string, error) {
	b := models.Booking{
		GuestName: deref(req.GuestName),
		Email:     deref(req.Email),
		Phone:     deref(req.Phone),
		RoomType:  deref(req.RoomType),
		StartDate: deref(req.StartDate),
		EndDate:   deref(req.EndDate),
		Pets:      req.PetsOrDefault(),
		Status:    models.StatusPendingPayment,
		CreatedAt: time.Now().UTC(),
	}
	if req.Guests != nil {
		b.Guests = *req.Guests
	}

	id, err := s.Bookings.Create(ctx, b)
	if err != nil {
		return "", fmt.Errorf("CreateBooking: failed to store booking: %w", err)
	}
	metrics.BookingsCreated.Inc()
	s.Logger.Info("booking created",
		zap.String("bookingID", id),
		zap.String("roomType", b.RoomType),
		zap.String("startDate", b.StartDate),
		zap.String("endDate", b.EndDate),
	)
	return id, nil
}

// CreatePaymentLink returns a checkout URL for the booking and marks the
// booking awaiting_payment. Unknown booking IDs still get a URL.
func (s *DefaultBookingService) CreatePaymentLink(ctx context.Context, req models.PaymentLinkRequest) (string, error) {
	bookingID := deref(req.BookingID)
	var amount float64
	if req.Amount != nil {
		amount = *req.Amount
	}

	url, err := s.Payments.CheckoutURL(ctx, bookingID, amount, req.CurrencyOrDefault())
	if err != nil {
		return "", fmt.Errorf("CreatePaymentLink: %w", err)
	}

	known, err := s.Bookings.UpdateStatus(ctx, bookingID, models.StatusAwaitingPayment)
	if err != nil {
		return "", fmt.Errorf("CreatePaymentLink: failed to update booking status: %w", err)
	}
	metrics.PaymentLinksCreated.WithLabelValues(fmt.Sprint(known)).Inc()
	if !known {
		s.Logger.Debug("payment link issued for unknown booking", zap.String("bookingID", bookingID))
	}
	return url, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
