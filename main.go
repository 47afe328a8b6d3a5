// File: sierra/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/liamintemann/sierra-backend/config"
	bookingRepo "github.com/liamintemann/sierra-backend/database/repository/booking"
	inventoryRepo "github.com/liamintemann/sierra-backend/database/repository/inventory"
	"github.com/liamintemann/sierra-backend/handlers"
	"github.com/liamintemann/sierra-backend/routes"
	"github.com/liamintemann/sierra-backend/services/booking"
	"github.com/liamintemann/sierra-backend/services/notification"
	"github.com/liamintemann/sierra-backend/services/weather"
	"github.com/liamintemann/sierra-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.AppConfig.APIKey == config.DefaultAPIKey {
		logger.Warn("main: SIERRA_API_KEY is unset, using the insecure demo secret")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookings := bookingRepo.NewMemoryBookingRepo()
	inventory := inventoryRepo.NewMemoryInventoryRepo(inventoryRepo.DefaultRooms())

	// services.
	paymentLinker := booking.NewStubCheckoutLinker(config.AppConfig.CheckoutBaseURL, logger)
	bookingService := booking.NewDefaultBookingService(bookings, inventory, paymentLinker, logger)
	textSender := notification.NewLogTextSender(config.AppConfig.TwilioFromNumber, logger)
	weatherProvider := weather.NewStaticProvider()

	toolsHandler := handlers.NewToolsHandler(bookingService, textSender, weatherProvider, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		APIKeyHeader:      config.AppConfig.APIKeyHeader,
		APIKey:            config.AppConfig.APIKey,
		MaxRequestsPerMin: config.AppConfig.MaxRequestsPerMin,
		MetricsEnabled:    config.AppConfig.MetricsEnabled,

		GetAvailability:   toolsHandler.GetAvailability,
		CreateBooking:     toolsHandler.CreateBooking,
		CreatePaymentLink: toolsHandler.CreatePaymentLink,
		SendText:          toolsHandler.SendText,
		GetWeather:        toolsHandler.GetWeather,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Starting Sierra Agent Tools", zap.String("addr", srv.Addr), zap.String("env", config.GetEnv()))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
