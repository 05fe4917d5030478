package mongodb

import (
	"context"
	"testing"

	"github.com/shutter-academy/academy-api/internal/domain"
	"github.com/shutter-academy/academy-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserStore_Upsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("explicit role is set", func(mt *mtest.T) {
		s := NewUserStore(mt.Coll, discardLogger())
		mt.AddMockResponses(updateResponse(1, 1))

		role := domain.RoleInstructor
		res, err := s.Upsert(context.Background(), "a@x.com", domain.UserProfile{Name: "Ana", Role: &role})

		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.True(mt, started.Command.Lookup("updates", "0", "upsert").Boolean())
		assert.Equal(mt, "a@x.com", started.Command.Lookup("updates", "0", "q", "email").StringValue())
		assert.Equal(mt, "instructor", started.Command.Lookup("updates", "0", "u", "$set", "role").StringValue())
		_, err = started.Command.LookupErr("updates", "0", "u", "$setOnInsert")
		assert.Error(mt, err, "role must not appear in both $set and $setOnInsert")
	})

	mt.Run("missing role defaults on insert only", func(mt *mtest.T) {
		s := NewUserStore(mt.Coll, discardLogger())
		mt.AddMockResponses(updateResponse(1, 0))

		_, err := s.Upsert(context.Background(), "b@x.com", domain.UserProfile{Name: "Ben"})
		require.NoError(mt, err)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "student", started.Command.Lookup("updates", "0", "u", "$setOnInsert", "role").StringValue())
		_, err = started.Command.LookupErr("updates", "0", "u", "$set", "role")
		assert.Error(mt, err)
	})

	mt.Run("duplicate key maps to email exists", func(mt *mtest.T) {
		s := NewUserStore(mt.Coll, discardLogger())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		_, err := s.Upsert(context.Background(), "a@x.com", domain.UserProfile{})

		assert.ErrorIs(mt, err, store.ErrEmailExists)
	})
}

func TestUserStore_ListByRole(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("instructors", func(mt *mtest.T) {
		s := NewUserStore(mt.Coll, discardLogger())
		mt.AddMockResponses(cursorResponse(mt,
			bson.D{{Key: "email", Value: "i1@x.com"}, {Key: "role", Value: "instructor"}},
			bson.D{{Key: "email", Value: "i2@x.com"}, {Key: "role", Value: "instructor"}},
		))

		users, err := s.ListByRole(context.Background(), domain.RoleInstructor)

		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "i1@x.com", users[0].Email)
	})

	mt.Run("command error", func(mt *mtest.T) {
		s := NewUserStore(mt.Coll, discardLogger())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 13, Name: "Unauthorized", Message: "not authorized",
		}))

		_, err := s.ListByRole(context.Background(), domain.RoleInstructor)

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "list operation on user failed")
	})
}
