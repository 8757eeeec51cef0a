package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

func TestNotificationMongo_ListByRecipient(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unread only", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "erp.notifications", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
			mtest.CreateCursorResponse(0, "erp.notifications", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "n-1"},
				{Key: "recipient_id", Value: "TSA-001"},
				{Key: "type", Value: model.NotificationTypeInquiry},
				{Key: "message", Value: "New inquiry from Acme"},
				{Key: "read", Value: false},
				{Key: "created_at", Value: time.Now().UTC()},
			}),
		)

		res, err := NewNotificationMongo(mt.DB).ListByRecipient(context.Background(), "TSA-001", true, repository.PageQuery{Limit: 10})

		require.NoError(mt, err)
		assert.Equal(mt, 1, res.Total)
		assert.False(mt, res.Items[0].Read)
	})
}

func TestNotificationMongo_MarkRead(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("marked", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		err := NewNotificationMongo(mt.DB).MarkRead(context.Background(), "n-1", "TSA-001")

		assert.NoError(mt, err)
	})

	mt.Run("someone else's", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := NewNotificationMongo(mt.DB).MarkRead(context.Background(), "n-1", "TSA-999")

		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestNotificationMongo_MarkAllRead(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("counts modified", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 4}, {Key: "nModified", Value: 4}})

		n, err := NewNotificationMongo(mt.DB).MarkAllRead(context.Background(), "TSA-001")

		require.NoError(mt, err)
		assert.Equal(mt, int64(4), n)
	})
}

func TestNotificationMongo_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})
		assert.NoError(mt, NewNotificationMongo(mt.DB).Delete(context.Background(), "n-1", "TSA-001"))
	})

	mt.Run("missing", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})
		err := NewNotificationMongo(mt.DB).Delete(context.Background(), "n-2", "TSA-001")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}
