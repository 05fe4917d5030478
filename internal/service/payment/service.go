package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/shutter-academy/academy-api/internal/platform/logger"
	"github.com/shutter-academy/academy-api/internal/platform/stripe"
)

var (
	// ErrInvalidPrice indicates the price was absent, zero or negative.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidPrice = errors.New("price must be a positive amount")

	// ErrProviderFailure indicates the payment provider rejected or failed the request.
	// API layer should map this to HTTP 502 Bad Gateway.
	ErrProviderFailure = errors.New("payment provider request failed")
)

var minorUnitsPerMajor = decimal.NewFromInt(100)

// IntentProvider creates payment intents with an external provider.
type IntentProvider interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*stripe.PaymentIntent, error)
}

// Service is the bridge between a class price and the payment provider.
type Service struct {
	provider IntentProvider
	currency string
	logger   *slog.Logger
}

// NewService creates a payment Service charging in currency.
func NewService(provider IntentProvider, currency string, logger *slog.Logger) (*Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("payment provider cannot be nil")
	}
	if currency == "" {
		return nil, fmt.Errorf("currency cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider: provider,
		currency: currency,
		logger:   logger.With(slog.String("component", "payment_service")),
	}, nil
}

// ToMinorUnits converts a major-unit price to an integer amount of minor
// units, rounding half away from zero.
func ToMinorUnits(price decimal.Decimal) (int64, error) {
	amount := price.Mul(minorUnitsPerMajor).Round(0)
	if !amount.IsPositive() {
		return 0, ErrInvalidPrice
	}
	return amount.IntPart(), nil
}

// CreateIntent requests a card payment intent for price and returns the
// intent's client secret.
func (s *Service) CreateIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	amount, err := ToMinorUnits(price)
	if err != nil {
		return "", err
	}

	intent, err := s.provider.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		log.ErrorContext(ctx, "payment intent request failed",
			slog.Int64("amount", amount),
			slog.String("currency", s.currency),
			slog.Any("error", err))
		return "", fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}

	log.InfoContext(ctx, "payment intent created",
		slog.String("intent_id", intent.ID),
		slog.Int64("amount", amount))
	return intent.ClientSecret, nil
}
