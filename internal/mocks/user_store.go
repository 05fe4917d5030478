package mocks

import (
	"context"
	"sync"

	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserStore implements store.UserStore for testing.
// Without overrides it behaves like an in-memory collection keyed by email.
type MockUserStore struct {
	UpsertFn     func(ctx context.Context, email string, profile domain.UserProfile) (*store.UpdateResult, error)
	ListByRoleFn func(ctx context.Context, role domain.Role) ([]domain.User, error)

	mu    sync.Mutex
	Users map[string]*domain.User
	Err   error
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore(users ...domain.User) *MockUserStore {
	m := &MockUserStore{Users: make(map[string]*domain.User)}
	for i := range users {
		u := users[i]
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		m.Users[u.Email] = &u
	}
	return m
}

// Upsert implements the store.UserStore interface
func (m *MockUserStore) Upsert(
	ctx context.Context,
	email string,
	profile domain.UserProfile,
) (*store.UpdateResult, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, email, profile)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Users == nil {
		m.Users = make(map[string]*domain.User)
	}

	user, exists := m.Users[email]
	res := &store.UpdateResult{Acknowledged: true}
	if exists {
		res.MatchedCount = 1
		res.ModifiedCount = 1
	} else {
		id := primitive.NewObjectID()
		user = &domain.User{ID: id, Email: email, Role: domain.RoleStudent}
		m.Users[email] = user
		res.UpsertedCount = 1
		res.UpsertedID = &id
	}
	if profile.Name != "" {
		user.Name = profile.Name
	}
	if profile.PhotoURL != "" {
		user.PhotoURL = profile.PhotoURL
	}
	if profile.Role != nil {
		user.Role = *profile.Role
	}
	return res, nil
}

// ListByRole implements the store.UserStore interface
func (m *MockUserStore) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if m.ListByRoleFn != nil {
		return m.ListByRoleFn(ctx, role)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	users := []domain.User{}
	for _, u := range m.Users {
		if u.Role == role {
			users = append(users, *u)
		}
	}
	return users, nil
}
