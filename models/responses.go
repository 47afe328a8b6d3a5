package models

type AvailabilityResponse struct {
	AvailableRooms RoomAvailability `json:"available_rooms"`
}

type BookingResponse struct {
	BookingID string `json:"booking_id"`
}

type PaymentLinkResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

type SMSResponse struct {
	Status string `json:"status"`
}

// WeatherReport is a point-in-time reading for a coordinate.
type WeatherReport struct {
	TempF   float64 `json:"temp_f"`
	Summary string  `json:"summary"`
	Source  string  `json:"source"`
}
