package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the settings routes need.
type HandlerBundle struct {
	APIKeyHeader      string
	APIKey            string
	MaxRequestsPerMin int
	MetricsEnabled    bool

	// Tool endpoints
	GetAvailability   gin.HandlerFunc
	CreateBooking     gin.HandlerFunc
	CreatePaymentLink gin.HandlerFunc
	SendText          gin.HandlerFunc
	GetWeather        gin.HandlerFunc
}
