package mongodb

import (
	"context"
	"log/slog"
	"time"

	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentStore implements store.PaymentStore on the payments collection.
type PaymentStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
	now    func() time.Time
}

// Ensure PaymentStore implements store.PaymentStore interface
var _ store.PaymentStore = (*PaymentStore)(nil)

// NewPaymentStore creates a PaymentStore backed by coll.
func NewPaymentStore(coll *mongo.Collection, logger *slog.Logger) *PaymentStore {
	return &PaymentStore{
		coll:   coll,
		logger: logger.With(slog.String("store", "payments")),
		now:    time.Now,
	}
}

// Create implements store.PaymentStore.Create.
// A zero Date is stamped with the current time.
func (s *PaymentStore) Create(ctx context.Context, payment *domain.Payment) (*store.InsertResult, error) {
	if payment.Date.IsZero() {
		payment.Date = s.now().UTC()
	}

	res, err := s.coll.InsertOne(ctx, payment)
	if err != nil {
		return nil, store.NewStoreError("payment", "insert", "failed to insert payment", MapError(err))
	}
	id, err := insertedID(res)
	if err != nil {
		return nil, store.NewStoreError("payment", "insert", "bad inserted id", err)
	}
	payment.ID = id

	s.logger.InfoContext(ctx, "payment recorded",
		slog.String("payment_id", id.Hex()),
		slog.String("class_id", payment.ClassID.Hex()))
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// ListByStudent implements store.PaymentStore.ListByStudent
func (s *PaymentStore) ListByStudent(ctx context.Context, email string) ([]domain.Payment, error) {
	cursor, err := s.coll.Find(
		ctx,
		bson.D{{Key: "studentInfo.email", Value: email}},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
	)
	if err != nil {
		return nil, store.NewStoreError("payment", "list", "failed to query payments", MapError(err))
	}

	payments := []domain.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, store.NewStoreError("payment", "list", "failed to decode payments", MapError(err))
	}
	return payments, nil
}
