package weather

import (
	"context"

	"github.com/liamintemann/sierra-backend/models"
)

// WeatherProvider looks up current conditions for a coordinate.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (models.WeatherReport, error)
}

// StaticProvider answers every lookup with the same demo reading.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Current(ctx context.Context, lat, lon float64) (models.WeatherReport, error) {
	return models.WeatherReport{
		TempF:   32.0,
		Summary: "Snow showers",
		Source:  "demo",
	}, nil
}
