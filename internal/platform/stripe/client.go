package stripe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shutter-academy/academy-api/internal/config"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
)

// ErrMissingSecretKey is returned when no Stripe secret key is configured.
var ErrMissingSecretKey = errors.New("stripe secret key is not configured")

// PaymentIntent is the subset of a Stripe payment intent the API exposes.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// Provider creates card payment intents through a dedicated Stripe client.
// It never touches the package-level stripe.Key.
type Provider struct {
	api    *client.API
	logger *slog.Logger
}

// NewProvider builds a Provider using Stripe's default backends.
func NewProvider(cfg config.PaymentConfig, logger *slog.Logger) (*Provider, error) {
	return NewProviderWithBackends(cfg, nil, logger)
}

// NewProviderWithBackends builds a Provider against explicit backends.
// A nil backends value selects Stripe's defaults.
func NewProviderWithBackends(
	cfg config.PaymentConfig,
	backends *stripe.Backends,
	logger *slog.Logger,
) (*Provider, error) {
	if cfg.SecretKey == "" {
		return nil, ErrMissingSecretKey
	}
	if logger == nil {
		logger = slog.Default()
	}

	api := &client.API{}
	api.Init(cfg.SecretKey, backends)

	return &Provider{
		api:    api,
		logger: logger.With(slog.String("component", "stripe")),
	}, nil
}

// CreatePaymentIntent requests a card-only payment intent for amount,
// expressed in the currency's smallest unit.
func (p *Provider) CreatePaymentIntent(
	ctx context.Context,
	amount int64,
	currency string,
) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			p.logger.WarnContext(ctx, "stripe rejected payment intent",
				slog.String("type", string(stripeErr.Type)),
				slog.String("code", string(stripeErr.Code)),
				slog.Int("http_status", stripeErr.HTTPStatusCode))
		}
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	p.logger.DebugContext(ctx, "payment intent created",
		slog.String("intent_id", pi.ID),
		slog.Int64("amount", pi.Amount))

	return &PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
