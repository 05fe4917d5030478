package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/shutter-academy/academy-api/internal/platform/stripe"
)

// MockIntentProvider implements payment.IntentProvider for testing.
// It records every requested amount.
type MockIntentProvider struct {
	CreatePaymentIntentFn func(ctx context.Context, amount int64, currency string) (*stripe.PaymentIntent, error)

	Err error

	mu         sync.Mutex
	Amounts    []int64
	Currencies []string
}

// CreatePaymentIntent implements the payment.IntentProvider interface
func (m *MockIntentProvider) CreatePaymentIntent(
	ctx context.Context,
	amount int64,
	currency string,
) (*stripe.PaymentIntent, error) {
	m.mu.Lock()
	m.Amounts = append(m.Amounts, amount)
	m.Currencies = append(m.Currencies, currency)
	n := len(m.Amounts)
	m.mu.Unlock()

	if m.CreatePaymentIntentFn != nil {
		return m.CreatePaymentIntentFn(ctx, amount, currency)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	id := fmt.Sprintf("pi_mock%d", n)
	return &stripe.PaymentIntent{
		ID:           id,
		ClientSecret: fmt.Sprintf("%s_secret_%d", id, amount),
		Amount:       amount,
		Currency:     currency,
	}, nil
}

// Calls returns the amounts requested so far.
func (m *MockIntentProvider) Calls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int64(nil), m.Amounts...)
}
