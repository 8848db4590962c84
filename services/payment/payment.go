package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"readycleans/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

const DefaultCurrency = "usd"

var ErrInvalidAmount = errors.New("invalid payment amount")

// --- Interfaces ---
type PaymentHandler interface {
	CreateIntent(ctx context.Context, req models.PaymentIntentRequest, idempotencyKey string) (*models.PaymentIntentResponse, error)
}

// IntentCreator creates a payment intent at the provider.
type IntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// --- PaymentHandler Implementation ---
type StripePaymentHandler struct {
	logger *zap.Logger
	create IntentCreator
}

// NewPaymentHandler uses the package-level stripe.Key set at startup.
func NewPaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return NewPaymentHandlerWithCreator(logger, paymentintent.New)
}

func NewPaymentHandlerWithCreator(logger *zap.Logger, create IntentCreator) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger, create: create}
}

// --- CreateIntent Entry Point ---
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, req models.PaymentIntentRequest, idempotencyKey string) (*models.PaymentIntentResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	pi, err := h.create(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	h.logger.Info("Payment intent created",
		zap.String("intent", pi.ID),
		zap.Int64("amount", req.Amount),
		zap.String("currency", currency),
	)
	return &models.PaymentIntentResponse{ClientSecret: pi.ClientSecret}, nil
}

// --- Validator ---
func validateRequest(req models.PaymentIntentRequest) error {
	if req.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
