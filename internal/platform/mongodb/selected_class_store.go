package mongodb

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SelectedClassStore implements store.SelectedClassStore on the
// selectedClasses collection.
type SelectedClassStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// Ensure SelectedClassStore implements store.SelectedClassStore interface
var _ store.SelectedClassStore = (*SelectedClassStore)(nil)

// NewSelectedClassStore creates a SelectedClassStore backed by coll.
func NewSelectedClassStore(coll *mongo.Collection, logger *slog.Logger) *SelectedClassStore {
	return &SelectedClassStore{
		coll:   coll,
		logger: logger.With(slog.String("store", "selected_classes")),
	}
}

// Create implements store.SelectedClassStore.Create
func (s *SelectedClassStore) Create(
	ctx context.Context,
	selection *domain.SelectedClass,
) (*store.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, selection)
	if err != nil {
		return nil, store.NewStoreError("selected class", "insert", "failed to insert selection", MapError(err))
	}
	id, err := insertedID(res)
	if err != nil {
		return nil, store.NewStoreError("selected class", "insert", "bad inserted id", err)
	}
	selection.ID = id
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// ListByStudent implements store.SelectedClassStore.ListByStudent
func (s *SelectedClassStore) ListByStudent(ctx context.Context, email string) ([]domain.SelectedClass, error) {
	cursor, err := s.coll.Find(ctx, bson.D{{Key: "studentInfo.email", Value: email}})
	if err != nil {
		return nil, store.NewStoreError("selected class", "list", "failed to query selections", MapError(err))
	}

	selections := []domain.SelectedClass{}
	if err := cursor.All(ctx, &selections); err != nil {
		return nil, store.NewStoreError("selected class", "list", "failed to decode selections", MapError(err))
	}
	return selections, nil
}

// GetByID implements store.SelectedClassStore.GetByID
func (s *SelectedClassStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.SelectedClass, error) {
	var selection domain.SelectedClass
	if err := s.coll.FindOne(ctx, byID(id)).Decode(&selection); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrSelectedClassNotFound
		}
		return nil, store.NewStoreError("selected class", "get", "failed to find selection", MapError(err))
	}
	return &selection, nil
}

// Delete implements store.SelectedClassStore.Delete
func (s *SelectedClassStore) Delete(ctx context.Context, id primitive.ObjectID) (*store.DeleteResult, error) {
	res, err := s.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return nil, store.NewStoreError("selected class", "delete", "failed to delete selection", MapError(err))
	}
	if res.DeletedCount == 0 {
		return nil, store.ErrSelectedClassNotFound
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
