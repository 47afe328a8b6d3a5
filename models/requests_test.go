package models

import (
	"encoding/json"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestWeatherQueryCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon *string
		wantErr  bool
		wantLat  float64
		wantLon  float64
	}{
		{"valid", strPtr("39.19"), strPtr("-106.82"), false, 39.19, -106.82},
		{"out of range still parses", strPtr("-1000"), strPtr("1e6"), false, -1000, 1e6},
		{"empty lat", strPtr(""), strPtr("1"), true, 0, 0},
		{"empty lon", strPtr("1"), strPtr(""), true, 0, 0},
		{"text", strPtr("north"), strPtr("1"), true, 0, 0},
		{"missing", nil, strPtr("1"), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, err := WeatherQuery{Lat: tt.lat, Lon: tt.lon}.Coordinates()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Coordinates() error = %v, wantErr %v", err, tt.wantErr)
			}
			if lat != tt.wantLat || lon != tt.wantLon {
				t.Errorf("Coordinates() = %v, %v, want %v, %v", lat, lon, tt.wantLat, tt.wantLon)
			}
		})
	}
}

func TestPaymentLinkRequestCurrency(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"omitted", `{"booking_id":"b","amount":1}`, DefaultCurrency, false},
		{"explicit", `{"booking_id":"b","amount":1,"currency":"EUR"}`, "EUR", false},
		{"empty string", `{"booking_id":"b","amount":1,"currency":""}`, "", false},
		{"null", `{"booking_id":"b","amount":1,"currency":null}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req PaymentLinkRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := req.CurrencyOrDefault(); got != tt.want {
				t.Errorf("CurrencyOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}
