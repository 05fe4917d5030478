package store

import (
	"context"

	"github.com/shutter-academy/academy-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Upsert writes profile onto the user identified by email, creating the
	// user when absent. New users without an explicit role become students.
	Upsert(ctx context.Context, email string, profile domain.UserProfile) (*UpdateResult, error)

	// ListByRole returns every user holding role.
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}
