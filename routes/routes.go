package routes

import (
	"net/http"
	"time"

	"github.com/liamintemann/sierra-backend/handlers"
	"github.com/liamintemann/sierra-backend/middleware"
	"github.com/liamintemann/sierra-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterToolRoutes registers the assistant tool endpoints behind the shared-secret check.
func RegisterToolRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	tools := r.Group("/")
	{
		tools.Use(middleware.APIKeyMiddleware(hb.APIKeyHeader, hb.APIKey))
		tools.POST("/get_availability", hb.GetAvailability)
		tools.POST("/create_booking", hb.CreateBooking)
		tools.POST("/create_payment_link", hb.CreatePaymentLink)
		tools.POST("/send_text", hb.SendText)
		tools.GET("/get_weather", hb.GetWeather)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Sierra Agent Tools"})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	utils.RegisterFieldNames()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", hb.APIKeyHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(hb.MaxRequestsPerMin))
	if hb.MetricsEnabled {
		r.Use(middleware.MetricsMiddleware())
		RegisterMetricsRoute(r)
	}

	RegisterHealthRoute(r)
	RegisterToolRoutes(r, hb)
}
