package booking

import (
	"context"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// PaymentLinker produces a hosted checkout URL for a booking.
type PaymentLinker interface {
	CheckoutURL(ctx context.Context, bookingID string, amount float64, currency string) (string, error)
}

// StubCheckoutLinker describes the Stripe Checkout session it would create
// but never calls Stripe. The URL is BaseURL followed by the booking ID.
type StubCheckoutLinker struct {
	BaseURL string
	logger  *zap.Logger
}

func NewStubCheckoutLinker(baseURL string, logger *zap.Logger) *StubCheckoutLinker {
	return &StubCheckoutLinker{
		BaseURL: baseURL,
		logger:  logger,
	}
}

func (l *StubCheckoutLinker) CheckoutURL(ctx context.Context, bookingID string, amount float64, currency string) (string, error) {
	params := checkoutSessionParams(bookingID, amount, currency)
	l.logger.Debug("checkout session (not submitted)",
		zap.String("bookingID", bookingID),
		zap.String("currency", stripe.StringValue(params.LineItems[0].PriceData.Currency)),
		zap.Int64("unitAmount", stripe.Int64Value(params.LineItems[0].PriceData.UnitAmount)),
	)
	return l.BaseURL + bookingID, nil
}

// checkoutSessionParams builds the one-line-item payment session for a booking.
func checkoutSessionParams(bookingID string, amount float64, currency string) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(bookingID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(currency)),
					UnitAmount: stripe.Int64(toMinorUnits(amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Hotel booking " + bookingID),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("booking_id", bookingID)
	return params
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
