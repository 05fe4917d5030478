// Package stripe adapts the Stripe API client to the payment intent
// provider used by the payment service.
package stripe
