package mocks

import (
	"context"
	"sync"

	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockClassStore implements store.ClassStore for testing.
// The default Enroll checks and decrements seats under one lock, matching
// the conditional update the real store issues.
type MockClassStore struct {
	CreateFn         func(ctx context.Context, class *domain.Class) (*store.InsertResult, error)
	GetByIDFn        func(ctx context.Context, id primitive.ObjectID) (*domain.Class, error)
	ListFn           func(ctx context.Context, filter store.ClassFilter) ([]domain.Class, error)
	EnrollFn         func(ctx context.Context, id primitive.ObjectID) (*store.UpdateResult, error)
	SetStatusFn      func(ctx context.Context, id primitive.ObjectID, status domain.ClassStatus) (*store.UpdateResult, error)
	UpsertFeedbackFn func(ctx context.Context, id primitive.ObjectID, feedback string) (*store.UpdateResult, error)
	UpdateFn         func(ctx context.Context, id primitive.ObjectID, patch domain.ClassPatch) (*store.UpdateResult, error)

	mu      sync.Mutex
	Classes map[primitive.ObjectID]*domain.Class
	Err     error
}

var _ store.ClassStore = (*MockClassStore)(nil)

// NewMockClassStore creates a mock seeded with classes.
func NewMockClassStore(classes ...domain.Class) *MockClassStore {
	m := &MockClassStore{Classes: make(map[primitive.ObjectID]*domain.Class)}
	for i := range classes {
		c := classes[i]
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		m.Classes[c.ID] = &c
	}
	return m
}

// Get returns a copy of the stored class, for assertions.
func (m *MockClassStore) Get(id primitive.ObjectID) (domain.Class, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Classes[id]
	if !ok {
		return domain.Class{}, false
	}
	return *c, true
}

// Create implements the store.ClassStore interface
func (m *MockClassStore) Create(ctx context.Context, class *domain.Class) (*store.InsertResult, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, class)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Classes == nil {
		m.Classes = make(map[primitive.ObjectID]*domain.Class)
	}
	class.ID = primitive.NewObjectID()
	cp := *class
	m.Classes[class.ID] = &cp
	return &store.InsertResult{Acknowledged: true, InsertedID: class.ID}, nil
}

// GetByID implements the store.ClassStore interface
func (m *MockClassStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Class, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.Get(id)
	if !ok {
		return nil, store.ErrClassNotFound
	}
	return &c, nil
}

// List implements the store.ClassStore interface
func (m *MockClassStore) List(ctx context.Context, filter store.ClassFilter) ([]domain.Class, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	classes := []domain.Class{}
	for _, c := range m.Classes {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.InstructorEmail != "" && c.InstructorEmail != filter.InstructorEmail {
			continue
		}
		classes = append(classes, *c)
	}
	return classes, nil
}

// Enroll implements the store.ClassStore interface
func (m *MockClassStore) Enroll(ctx context.Context, id primitive.ObjectID) (*store.UpdateResult, error) {
	if m.EnrollFn != nil {
		return m.EnrollFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Classes[id]
	if !ok {
		return nil, store.ErrClassNotFound
	}
	if c.AvailableSeats <= 0 {
		return nil, store.ErrNoSeatsAvailable
	}
	c.AvailableSeats--
	c.TotalEnrolled++
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

// SetStatus implements the store.ClassStore interface
func (m *MockClassStore) SetStatus(
	ctx context.Context,
	id primitive.ObjectID,
	status domain.ClassStatus,
) (*store.UpdateResult, error) {
	if m.SetStatusFn != nil {
		return m.SetStatusFn(ctx, id, status)
	}
	return m.mutate(id, func(c *domain.Class) { c.Status = status })
}

// UpsertFeedback implements the store.ClassStore interface
func (m *MockClassStore) UpsertFeedback(
	ctx context.Context,
	id primitive.ObjectID,
	feedback string,
) (*store.UpdateResult, error) {
	if m.UpsertFeedbackFn != nil {
		return m.UpsertFeedbackFn(ctx, id, feedback)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Classes == nil {
		m.Classes = make(map[primitive.ObjectID]*domain.Class)
	}
	if c, ok := m.Classes[id]; ok {
		c.Feedback = feedback
		return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	m.Classes[id] = &domain.Class{ID: id, Feedback: feedback}
	upserted := id
	return &store.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &upserted}, nil
}

// Update implements the store.ClassStore interface
func (m *MockClassStore) Update(
	ctx context.Context,
	id primitive.ObjectID,
	patch domain.ClassPatch,
) (*store.UpdateResult, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	if patch.Empty() {
		return nil, store.ErrInvalidEntity
	}
	return m.mutate(id, func(c *domain.Class) {
		if patch.ClassName != nil {
			c.ClassName = *patch.ClassName
		}
		if patch.ClassImage != nil {
			c.ClassImage = *patch.ClassImage
		}
		if patch.Price != nil {
			c.Price = *patch.Price
		}
		if patch.AvailableSeats != nil {
			c.AvailableSeats = *patch.AvailableSeats
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.Feedback != nil {
			c.Feedback = *patch.Feedback
		}
	})
}

func (m *MockClassStore) mutate(id primitive.ObjectID, apply func(*domain.Class)) (*store.UpdateResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.Classes[id]
	if !ok {
		return nil, store.ErrClassNotFound
	}
	apply(c)
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}
