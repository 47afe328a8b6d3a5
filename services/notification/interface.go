package notification

import (
	"context"

	"github.com/liamintemann/sierra-backend/metrics"

	"go.uber.org/zap"
)

// TextSender delivers an SMS to a phone number.
type TextSender interface {
	SendText(ctx context.Context, phone, message string) error
}

// LogTextSender stands in for the Twilio Messages API. It records the
// message on the logger and reports success without sending anything.
type LogTextSender struct {
	From   string
	logger *zap.Logger
}

func NewLogTextSender(from string, logger *zap.Logger) *LogTextSender {
	return &LogTextSender{
		From:   from,
		logger: logger,
	}
}

func (s *LogTextSender) SendText(ctx context.Context, phone, message string) error {
	s.logger.Info("Sending SMS",
		zap.String("from", s.From),
		zap.String("to", phone),
		zap.String("message", message),
	)
	metrics.TextsSent.Inc()
	return nil
}
