package store

import (
	"context"

	"github.com/shutter-academy/academy-api/internal/domain"
)

// PaymentStore defines the interface for the append-only payment ledger.
type PaymentStore interface {
	Create(ctx context.Context, payment *domain.Payment) (*InsertResult, error)

	// ListByStudent returns the student's payments, most recent first.
	ListByStudent(ctx context.Context, email string) ([]domain.Payment, error)
}
