package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPaymentStore implements store.PaymentStore for testing
type MockPaymentStore struct {
	CreateFn        func(ctx context.Context, payment *domain.Payment) (*store.InsertResult, error)
	ListByStudentFn func(ctx context.Context, email string) ([]domain.Payment, error)

	mu       sync.Mutex
	Payments []domain.Payment
	Err      error
}

var _ store.PaymentStore = (*MockPaymentStore)(nil)

// Len reports how many payments are recorded.
func (m *MockPaymentStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Payments)
}

// Create implements the store.PaymentStore interface
func (m *MockPaymentStore) Create(ctx context.Context, payment *domain.Payment) (*store.InsertResult, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, payment)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}
	payment.ID = primitive.NewObjectID()
	m.Payments = append(m.Payments, *payment)
	return &store.InsertResult{Acknowledged: true, InsertedID: payment.ID}, nil
}

// ListByStudent implements the store.PaymentStore interface
func (m *MockPaymentStore) ListByStudent(ctx context.Context, email string) ([]domain.Payment, error) {
	if m.ListByStudentFn != nil {
		return m.ListByStudentFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Payment{}
	for _, p := range m.Payments {
		if p.StudentInfo.Email == email {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
