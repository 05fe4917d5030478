// Package payment converts a class price into a minor-unit amount and asks
// the payment provider for a card payment intent.
package payment
