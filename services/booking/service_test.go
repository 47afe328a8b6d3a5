package booking

import (
	"context"
	"strings"
	"testing"

	bookingRepo "github.com/liamintemann/sierra-backend/database/repository/booking"
	inventoryRepo "github.com/liamintemann/sierra-backend/database/repository/inventory"
	"github.com/liamintemann/sierra-backend/models"

	"go.uber.org/zap"
)

const testCheckoutBase = "https://checkout.stripe.com/pay/"

func newTestService() (*DefaultBookingService, bookingRepo.BookingRepository) {
	logger := zap.NewNop()
	bookings := bookingRepo.NewMemoryBookingRepo()
	svc := NewDefaultBookingService(
		bookings,
		inventoryRepo.NewMemoryInventoryRepo(inventoryRepo.DefaultRooms()),
		NewStubCheckoutLinker(testCheckoutBase, logger),
		logger,
	)
	return svc, bookings
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func deluxeKingRequest() models.BookingRequest {
	return models.BookingRequest{
		GuestName: strPtr("Jane Doe"),
		Email:     strPtr("jane@example.com"),
		Phone:     strPtr("+15551234567"),
		RoomType:  strPtr("Deluxe King"),
		StartDate: strPtr("2025-01-10"),
		EndDate:   strPtr("2025-01-12"),
		Guests:    intPtr(2),
	}
}

func TestCheckAvailabilityIgnoresInputs(t *testing.T) {
	svc, bookings := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.AvailabilityRequest
	}{
		{"normal range", models.AvailabilityRequest{StartDate: strPtr("2025-01-10"), EndDate: strPtr("2025-01-12"), Guests: intPtr(2)}},
		{"reversed range", models.AvailabilityRequest{StartDate: strPtr("2025-02-01"), EndDate: strPtr("2025-01-01"), Guests: intPtr(1)}},
		{"garbage dates", models.AvailabilityRequest{StartDate: strPtr("tomorrow-ish"), EndDate: strPtr(""), Guests: intPtr(-3), Pets: boolPtr(true)}},
		{"huge party", models.AvailabilityRequest{StartDate: strPtr("9999-99-99"), EndDate: strPtr("0000-00-00"), Guests: intPtr(500)}},
	}
	want := inventoryRepo.DefaultRooms()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CheckAvailability(ctx, tt.req)
			if err != nil {
				t.Fatalf("CheckAvailability() error = %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("len(rooms) = %v, want %v", len(got), len(want))
			}
			for name, count := range want {
				if got[name] != count {
					t.Errorf("rooms[%q] = %v, want %v", name, got[name], count)
				}
			}
		})
	}

	if n, _ := bookings.Count(ctx); n != 0 {
		t.Errorf("bookings after availability checks = %v, want 0", n)
	}
}

func TestCreateBookingStoresPendingRecord(t *testing.T) {
	svc, bookings := newTestService()
	ctx := context.Background()

	req := deluxeKingRequest()
	id, err := svc.CreateBooking(ctx, req)
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	b, err := bookings.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if b.Status != models.StatusPendingPayment {
		t.Errorf("Status = %v, want %v", b.Status, models.StatusPendingPayment)
	}
	if b.GuestName != "Jane Doe" {
		t.Errorf("GuestName = %v, want %v", b.GuestName, "Jane Doe")
	}
	if b.Guests != 2 {
		t.Errorf("Guests = %v, want %v", b.Guests, 2)
	}
	if b.Pets {
		t.Errorf("Pets = %v, want %v", b.Pets, false)
	}
	if b.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestCreateBookingAcceptsUnknownRoomType(t *testing.T) {
	svc, bookings := newTestService()
	ctx := context.Background()

	req := deluxeKingRequest()
	req.RoomType = strPtr("Penthouse Suite")
	req.Guests = intPtr(40)
	if _, err := svc.CreateBooking(ctx, req); err != nil {
		t.Fatalf("CreateBooking(sold out) error = %v", err)
	}
	req.RoomType = strPtr("Broom Closet")
	if _, err := svc.CreateBooking(ctx, req); err != nil {
		t.Fatalf("CreateBooking(unknown room) error = %v", err)
	}

	if n, _ := bookings.Count(ctx); n != 2 {
		t.Errorf("Count() = %v, want %v", n, 2)
	}
	rooms, _ := svc.CheckAvailability(ctx, models.AvailabilityRequest{})
	if rooms["Deluxe King"] != 5 || rooms["Penthouse Suite"] != 0 {
		t.Errorf("inventory changed after bookings: %v", rooms)
	}
}

func TestCreateBookingIDsAreUnique(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id, err := svc.CreateBooking(ctx, deluxeKingRequest())
		if err != nil {
			t.Fatalf("CreateBooking() error = %v", err)
		}
		if seen[id] {
			t.Fatalf("CreateBooking() returned duplicate ID %v", id)
		}
		seen[id] = true
	}
}

func TestCreatePaymentLinkKnownBooking(t *testing.T) {
	svc, bookings := newTestService()
	ctx := context.Background()

	id, _ := svc.CreateBooking(ctx, deluxeKingRequest())
	url, err := svc.CreatePaymentLink(ctx, models.PaymentLinkRequest{
		BookingID: strPtr(id),
		Amount:    floatPtr(250.00),
	})
	if err != nil {
		t.Fatalf("CreatePaymentLink() error = %v", err)
	}
	if url != testCheckoutBase+id {
		t.Errorf("url = %v, want %v", url, testCheckoutBase+id)
	}

	b, _ := bookings.GetByID(ctx, id)
	if b.Status != models.StatusAwaitingPayment {
		t.Errorf("Status = %v, want %v", b.Status, models.StatusAwaitingPayment)
	}
}

func TestCreatePaymentLinkUnknownBooking(t *testing.T) {
	svc, bookings := newTestService()
	ctx := context.Background()
	svc.CreateBooking(ctx, deluxeKingRequest())

	url, err := svc.CreatePaymentLink(ctx, models.PaymentLinkRequest{
		BookingID: strPtr("never-issued"),
		Amount:    floatPtr(10),
		Currency:  models.OptionalString{Value: "EUR", Set: true},
	})
	if err != nil {
		t.Fatalf("CreatePaymentLink() error = %v", err)
	}
	if !strings.HasSuffix(url, "never-issued") {
		t.Errorf("url = %v, want suffix %v", url, "never-issued")
	}
	if n, _ := bookings.Count(ctx); n != 1 {
		t.Errorf("Count() = %v, want %v", n, 1)
	}
}
