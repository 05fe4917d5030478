package mocks

import (
	"context"
	"sync"

	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockSelectedClassStore implements store.SelectedClassStore for testing
type MockSelectedClassStore struct {
	CreateFn        func(ctx context.Context, selection *domain.SelectedClass) (*store.InsertResult, error)
	ListByStudentFn func(ctx context.Context, email string) ([]domain.SelectedClass, error)
	GetByIDFn       func(ctx context.Context, id primitive.ObjectID) (*domain.SelectedClass, error)
	DeleteFn        func(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error)

	mu         sync.Mutex
	Selections map[primitive.ObjectID]*domain.SelectedClass
	Err        error
}

var _ store.SelectedClassStore = (*MockSelectedClassStore)(nil)

// NewMockSelectedClassStore creates a mock seeded with selections.
func NewMockSelectedClassStore(selections ...domain.SelectedClass) *MockSelectedClassStore {
	m := &MockSelectedClassStore{Selections: make(map[primitive.ObjectID]*domain.SelectedClass)}
	for i := range selections {
		s := selections[i]
		if s.ID.IsZero() {
			s.ID = primitive.NewObjectID()
		}
		m.Selections[s.ID] = &s
	}
	return m
}

// Len reports how many selections are stored.
func (m *MockSelectedClassStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Selections)
}

// Create implements the store.SelectedClassStore interface
func (m *MockSelectedClassStore) Create(
	ctx context.Context,
	selection *domain.SelectedClass,
) (*store.InsertResult, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, selection)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Selections == nil {
		m.Selections = make(map[primitive.ObjectID]*domain.SelectedClass)
	}
	selection.ID = primitive.NewObjectID()
	cp := *selection
	m.Selections[selection.ID] = &cp
	return &store.InsertResult{Acknowledged: true, InsertedID: selection.ID}, nil
}

// ListByStudent implements the store.SelectedClassStore interface
func (m *MockSelectedClassStore) ListByStudent(ctx context.Context, email string) ([]domain.SelectedClass, error) {
	if m.ListByStudentFn != nil {
		return m.ListByStudentFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.SelectedClass{}
	for _, s := range m.Selections {
		if s.StudentInfo.Email == email {
			out = append(out, *s)
		}
	}
	return out, nil
}

// GetByID implements the store.SelectedClassStore interface
func (m *MockSelectedClassStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SelectedClass, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.Selections[id]
	if !ok {
		return nil, store.ErrSelectedClassNotFound
	}
	cp := *s
	return &cp, nil
}

// Delete implements the store.SelectedClassStore interface
func (m *MockSelectedClassStore) Delete(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Selections[id]; !ok {
		return nil, store.ErrSelectedClassNotFound
	}
	delete(m.Selections, id)
	return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}
