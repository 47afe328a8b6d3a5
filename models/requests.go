package models

import (
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/liamintemann/sierra-backend/utils"
)

// Required fields are pointers so that zero values ("", 0, false) still
// count as present for the "required" rule.

const DefaultCurrency = "USD"

type AvailabilityRequest struct {
	StartDate *string `json:"start_date" binding:"required"`
	EndDate   *string `json:"end_date" binding:"required"`
	Guests    *int    `json:"guests" binding:"required"`
	Pets      *bool   `json:"pets"`
}

// PetsOrDefault returns the pets flag, false when omitted or null.
func (r AvailabilityRequest) PetsOrDefault() bool {
	return r.Pets != nil && *r.Pets
}

type BookingRequest struct {
	GuestName *string `json:"guest_name" binding:"required"`
	Email     *string `json:"email" binding:"required"`
	Phone     *string `json:"phone" binding:"required"`
	RoomType  *string `json:"room_type" binding:"required"`
	StartDate *string `json:"start_date" binding:"required"`
	EndDate   *string `json:"end_date" binding:"required"`
	Guests    *int    `json:"guests" binding:"required"`
	Pets      *bool   `json:"pets"`
}

func (r BookingRequest) PetsOrDefault() bool {
	return r.Pets != nil && *r.Pets
}

type PaymentLinkRequest struct {
	BookingID *string        `json:"booking_id" binding:"required"`
	Amount    *float64       `json:"amount" binding:"required"`
	Currency  OptionalString `json:"currency"`
}

// CurrencyOrDefault returns the requested currency or USD when omitted.
func (r PaymentLinkRequest) CurrencyOrDefault() string {
	if !r.Currency.Set {
		return DefaultCurrency
	}
	return r.Currency.Value
}

// OptionalString is a string field that may be omitted but not sent as null.
type OptionalString struct {
	Value string
	Set   bool
}

func (s *OptionalString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return &json.UnmarshalTypeError{Value: "null", Type: reflect.TypeOf("")}
	}
	if err := json.Unmarshal(data, &s.Value); err != nil {
		return err
	}
	s.Set = true
	return nil
}

type SMSRequest struct {
	Phone   *string `json:"phone" binding:"required"`
	Message *string `json:"message" binding:"required"`
}

// WeatherQuery keeps lat and lon as raw strings: form binding would turn an
// empty value into 0. Coordinates parses them.
type WeatherQuery struct {
	Lat *string `form:"lat" binding:"required"`
	Lon *string `form:"lon" binding:"required"`
}

// Coordinates parses lat and lon as floats. Range is not checked.
func (q WeatherQuery) Coordinates() (lat, lon float64, err error) {
	if lat, err = parseCoordinate("lat", q.Lat); err != nil {
		return 0, 0, err
	}
	if lon, err = parseCoordinate("lon", q.Lon); err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

func parseCoordinate(name string, raw *string) (float64, error) {
	if raw == nil {
		return 0, &utils.ParamError{Param: name, Err: &strconv.NumError{Func: "ParseFloat", Num: "", Err: strconv.ErrSyntax}}
	}
	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return 0, &utils.ParamError{Param: name, Err: err}
	}
	return v, nil
}
