package booking

import (
	"context"

	bookingRepo "github.com/liamintemann/sierra-backend/database/repository/booking"
	inventoryRepo "github.com/liamintemann/sierra-backend/database/repository/inventory"
	"github.com/liamintemann/sierra-backend/models"

	"go.uber.org/zap"
)

// BookingService implements the availability, booking and payment tools.
type BookingService interface {
	CheckAvailability(ctx context.Context, req models.AvailabilityRequest) (models.RoomAvailability, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (string, error)
	CreatePaymentLink(ctx context.Context, req models.PaymentLinkRequest) (string, error)
}

// DefaultBookingService implements BookingService on top of the repositories.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Inventory inventoryRepo.InventoryRepository
	Payments  PaymentLinker
	Logger    *zap.Logger
}

func NewDefaultBookingService(
	bookings bookingRepo.BookingRepository,
	inventory inventoryRepo.InventoryRepository,
	payments PaymentLinker,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:  bookings,
		Inventory: inventory,
		Payments:  payments,
		Logger:    logger,
	}
}
