package mongodb

import (
	"context"
	"log/slog"

	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserStore implements store.UserStore on the users collection.
type UserStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore backed by coll.
func NewUserStore(coll *mongo.Collection, logger *slog.Logger) *UserStore {
	return &UserStore{
		coll:   coll,
		logger: logger.With(slog.String("store", "users")),
	}
}

// Upsert implements store.UserStore.Upsert
func (s *UserStore) Upsert(
	ctx context.Context,
	email string,
	profile domain.UserProfile,
) (*store.UpdateResult, error) {
	set := bson.D{}
	if profile.Name != "" {
		set = append(set, bson.E{Key: "name", Value: profile.Name})
	}
	if profile.PhotoURL != "" {
		set = append(set, bson.E{Key: "photoURL", Value: profile.PhotoURL})
	}

	update := bson.D{}
	if profile.Role != nil {
		set = append(set, bson.E{Key: "role", Value: *profile.Role})
	} else {
		update = append(update, bson.E{
			Key:   "$setOnInsert",
			Value: bson.D{{Key: "role", Value: domain.RoleStudent}},
		})
	}
	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: set})
	}

	res, err := s.coll.UpdateOne(
		ctx,
		bson.D{{Key: "email", Value: email}},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, store.ErrEmailExists
		}
		return nil, store.NewStoreError("user", "upsert", "failed to upsert user", MapError(err))
	}

	s.logger.DebugContext(ctx, "user upserted",
		slog.Int64("matched", res.MatchedCount),
		slog.Int64("upserted", res.UpsertedCount))
	return toUpdateResult(res), nil
}

// ListByRole implements store.UserStore.ListByRole
func (s *UserStore) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	cursor, err := s.coll.Find(ctx, bson.D{{Key: "role", Value: bson.D{{Key: "$eq", Value: role}}}})
	if err != nil {
		return nil, store.NewStoreError("user", "list", "failed to query users", MapError(err))
	}

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, store.NewStoreError("user", "list", "failed to decode users", MapError(err))
	}
	return users, nil
}
