package handlers

import (
	"net/http"

	"github.com/liamintemann/sierra-backend/models"
	"github.com/liamintemann/sierra-backend/services/booking"
	"github.com/liamintemann/sierra-backend/services/notification"
	"github.com/liamintemann/sierra-backend/services/weather"
	"github.com/liamintemann/sierra-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ToolsHandler serves the booking assistant's tool endpoints.
type ToolsHandler struct {
	BookingService booking.BookingService
	TextSender     notification.TextSender
	Weather        weather.WeatherProvider
	logger         *zap.Logger
}

func NewToolsHandler(
	bookingSvc booking.BookingService,
	textSender notification.TextSender,
	weatherProvider weather.WeatherProvider,
	logger *zap.Logger,
) *ToolsHandler {
	return &ToolsHandler{
		BookingService: bookingSvc,
		TextSender:     textSender,
		Weather:        weatherProvider,
		logger:         logger,
	}
}

func (h *ToolsHandler) GetAvailability(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, "body", err)
		return
	}

	rooms, err := h.BookingService.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("GetAvailability: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to read availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.AvailabilityResponse{AvailableRooms: rooms})
}

func (h *ToolsHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, "body", err)
		return
	}

	id, err := h.BookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("CreateBooking: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.BookingResponse{BookingID: id})
}

func (h *ToolsHandler) CreatePaymentLink(c *gin.Context) {
	var req models.PaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, "body", err)
		return
	}

	url, err := h.BookingService.CreatePaymentLink(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("CreatePaymentLink: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment link", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.PaymentLinkResponse{CheckoutURL: url})
}

// SendText always acknowledges with "sent"; the sender is a stub.
func (h *ToolsHandler) SendText(c *gin.Context) {
	var req models.SMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, "body", err)
		return
	}

	if err := h.TextSender.SendText(c.Request.Context(), *req.Phone, *req.Message); err != nil {
		h.logger.Error("SendText: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send text", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.SMSResponse{Status: "sent"})
}

func (h *ToolsHandler) GetWeather(c *gin.Context) {
	var q models.WeatherQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.ValidationError(c, "query", err)
		return
	}

	lat, lon, err := q.Coordinates()
	if err != nil {
		utils.ValidationError(c, "query", err)
		return
	}

	report, err := h.Weather.Current(c.Request.Context(), lat, lon)
	if err != nil {
		h.logger.Error("GetWeather: failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch weather", err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}
