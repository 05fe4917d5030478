package store

import (
	"context"

	"github.com/shutter-academy/academy-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelectedClassStore defines the interface for cart persistence.
type SelectedClassStore interface {
	Create(ctx context.Context, selection *domain.SelectedClass) (*InsertResult, error)

	// ListByStudent returns the cart of the student with email.
	ListByStudent(ctx context.Context, email string) ([]domain.SelectedClass, error)

	// GetByID returns ErrSelectedClassNotFound if absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SelectedClass, error)

	// Delete removes exactly the document with id.
	// Returns ErrSelectedClassNotFound if nothing was deleted.
	Delete(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}
