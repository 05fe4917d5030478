package store

import (
	"context"

	"github.com/shutter-academy/academy-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassFilter narrows a class listing. Zero fields do not filter.
type ClassFilter struct {
	Status          domain.ClassStatus
	InstructorEmail string
}

// ClassStore defines the interface for class persistence.
type ClassStore interface {
	// Create inserts class as given.
	Create(ctx context.Context, class *domain.Class) (*InsertResult, error)

	// GetByID retrieves a class. Returns ErrClassNotFound if absent.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Class, error)

	// List returns the classes matching filter.
	List(ctx context.Context, filter ClassFilter) ([]domain.Class, error)

	// Enroll atomically takes one seat: availableSeats-1, totalEnrolled+1,
	// only while availableSeats > 0.
	// Returns ErrNoSeatsAvailable when the class is full and
	// ErrClassNotFound when it does not exist.
	Enroll(ctx context.Context, id primitive.ObjectID) (*UpdateResult, error)

	// SetStatus replaces the status. Returns ErrClassNotFound if absent.
	SetStatus(ctx context.Context, id primitive.ObjectID, status domain.ClassStatus) (*UpdateResult, error)

	// UpsertFeedback sets the feedback field, creating the document if
	// no class has id.
	UpsertFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (*UpdateResult, error)

	// Update applies the non-nil fields of patch.
	// Returns ErrClassNotFound if absent.
	Update(ctx context.Context, id primitive.ObjectID, patch domain.ClassPatch) (*UpdateResult, error)
}
