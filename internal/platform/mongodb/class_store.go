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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClassStore implements store.ClassStore on the classes collection.
type ClassStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// Ensure ClassStore implements store.ClassStore interface
var _ store.ClassStore = (*ClassStore)(nil)

// NewClassStore creates a ClassStore backed by coll.
func NewClassStore(coll *mongo.Collection, logger *slog.Logger) *ClassStore {
	return &ClassStore{
		coll:   coll,
		logger: logger.With(slog.String("store", "classes")),
	}
}

func byID(id primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// Create implements store.ClassStore.Create
func (s *ClassStore) Create(ctx context.Context, class *domain.Class) (*store.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, class)
	if err != nil {
		return nil, store.NewStoreError("class", "insert", "failed to insert class", MapError(err))
	}
	id, err := insertedID(res)
	if err != nil {
		return nil, store.NewStoreError("class", "insert", "bad inserted id", err)
	}
	class.ID = id
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// GetByID implements store.ClassStore.GetByID
func (s *ClassStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Class, error) {
	var class domain.Class
	if err := s.coll.FindOne(ctx, byID(id)).Decode(&class); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrClassNotFound
		}
		return nil, store.NewStoreError("class", "get", "failed to find class", MapError(err))
	}
	return &class, nil
}

// List implements store.ClassStore.List
func (s *ClassStore) List(ctx context.Context, filter store.ClassFilter) ([]domain.Class, error) {
	query := bson.D{}
	if filter.Status != "" {
		query = append(query, bson.E{Key: "status", Value: bson.D{{Key: "$eq", Value: filter.Status}}})
	}
	if filter.InstructorEmail != "" {
		query = append(query, bson.E{Key: "instructorEmail", Value: filter.InstructorEmail})
	}

	cursor, err := s.coll.Find(ctx, query)
	if err != nil {
		return nil, store.NewStoreError("class", "list", "failed to query classes", MapError(err))
	}

	classes := []domain.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, store.NewStoreError("class", "list", "failed to decode classes", MapError(err))
	}
	return classes, nil
}

// Enroll implements store.ClassStore.Enroll.
// The seat precondition is part of the update filter, so concurrent
// enrollments cannot push availableSeats below zero.
func (s *ClassStore) Enroll(ctx context.Context, id primitive.ObjectID) (*store.UpdateResult, error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "availableSeats", Value: bson.D{{Key: "$gt", Value: 0}}},
	}
	update := bson.D{{Key: "$inc", Value: bson.D{
		{Key: "availableSeats", Value: -1},
		{Key: "totalEnrolled", Value: 1},
	}}}

	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, store.NewStoreError("class", "enroll", "failed to update seats", MapError(err))
	}

	if res.MatchedCount == 0 {
		class, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "enrollment rejected, class is full",
			slog.String("class_id", id.Hex()),
			slog.Int("available_seats", class.AvailableSeats))
		return nil, store.ErrNoSeatsAvailable
	}

	return toUpdateResult(res), nil
}

// SetStatus implements store.ClassStore.SetStatus
func (s *ClassStore) SetStatus(
	ctx context.Context,
	id primitive.ObjectID,
	status domain.ClassStatus,
) (*store.UpdateResult, error) {
	return s.updateExisting(ctx, id, bson.D{{Key: "status", Value: status}}, "set status")
}

// UpsertFeedback implements store.ClassStore.UpsertFeedback
func (s *ClassStore) UpsertFeedback(
	ctx context.Context,
	id primitive.ObjectID,
	feedback string,
) (*store.UpdateResult, error) {
	res, err := s.coll.UpdateOne(
		ctx,
		byID(id),
		bson.D{{Key: "$set", Value: bson.D{{Key: "feedback", Value: feedback}}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, store.NewStoreError("class", "feedback", "failed to upsert feedback", MapError(err))
	}
	return toUpdateResult(res), nil
}

// Update implements store.ClassStore.Update
func (s *ClassStore) Update(
	ctx context.Context,
	id primitive.ObjectID,
	patch domain.ClassPatch,
) (*store.UpdateResult, error) {
	if patch.Empty() {
		return nil, store.NewStoreError("class", "update", "empty patch", store.ErrInvalidEntity)
	}

	set := bson.D{}
	if patch.ClassName != nil {
		set = append(set, bson.E{Key: "className", Value: *patch.ClassName})
	}
	if patch.ClassImage != nil {
		set = append(set, bson.E{Key: "classImage", Value: *patch.ClassImage})
	}
	if patch.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *patch.Price})
	}
	if patch.AvailableSeats != nil {
		set = append(set, bson.E{Key: "availableSeats", Value: *patch.AvailableSeats})
	}
	if patch.Status != nil {
		set = append(set, bson.E{Key: "status", Value: *patch.Status})
	}
	if patch.Feedback != nil {
		set = append(set, bson.E{Key: "feedback", Value: *patch.Feedback})
	}

	return s.updateExisting(ctx, id, set, "update")
}

func (s *ClassStore) updateExisting(
	ctx context.Context,
	id primitive.ObjectID,
	set bson.D,
	operation string,
) (*store.UpdateResult, error) {
	res, err := s.coll.UpdateOne(ctx, byID(id), bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return nil, store.NewStoreError("class", operation, "failed to update class", MapError(err))
	}
	if res.MatchedCount == 0 {
		return nil, store.ErrClassNotFound
	}
	return toUpdateResult(res), nil
}
