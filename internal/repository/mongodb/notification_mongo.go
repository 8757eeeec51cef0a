package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// NotificationMongo is a MongoDB implementation of repository.NotificationRepository.
// Every mutation is scoped to the recipient so users only touch their own notifications.
type NotificationMongo struct {
	coll *mongo.Collection
}

// NewNotificationMongo creates a NotificationMongo on the notifications collection of db.
func NewNotificationMongo(db *mongo.Database) *NotificationMongo {
	return &NotificationMongo{coll: db.Collection(notificationsCollection)}
}

var _ repository.NotificationRepository = (*NotificationMongo)(nil)

func (r *NotificationMongo) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return nil, mapErr(err)
	}
	return n, nil
}

func (r *NotificationMongo) ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool, pq repository.PageQuery) (*repository.PageResult[model.Notification], error) {
	filter := bson.M{"recipient_id": recipientID}
	if unreadOnly {
		filter["read"] = false
	}
	return findPage[model.Notification](ctx, r.coll, filter, newestFirst, pq)
}

func (r *NotificationMongo) MarkRead(ctx context.Context, id, recipientID string) error {
	filter := bson.M{"_id": id, "recipient_id": recipientID}
	return updateOne(ctx, r.coll, filter, bson.M{"$set": bson.M{"read": true}})
}

func (r *NotificationMongo) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"recipient_id": recipientID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *NotificationMongo) Delete(ctx context.Context, id, recipientID string) error {
	return deleteByID(ctx, r.coll, bson.M{"_id": id, "recipient_id": recipientID})
}
