package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// EmailMongo is a MongoDB implementation of repository.EmailRepository.
type EmailMongo struct {
	coll *mongo.Collection
}

// NewEmailMongo creates an EmailMongo on the emails collection of db.
func NewEmailMongo(db *mongo.Database) *EmailMongo {
	return &EmailMongo{coll: db.Collection(emailsCollection)}
}

var _ repository.EmailRepository = (*EmailMongo)(nil)

func (r *EmailMongo) Create(ctx context.Context, e *model.Email) (*model.Email, error) {
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return nil, mapErr(err)
	}
	return e, nil
}

func (r *EmailMongo) List(ctx context.Context, sentBy string, pq repository.PageQuery) (*repository.PageResult[model.Email], error) {
	filter := bson.M{}
	setIf(filter, "sent_by", sentBy)
	sort := bson.D{{Key: "sent_at", Value: -1}, {Key: "_id", Value: -1}}
	return findPage[model.Email](ctx, r.coll, filter, sort, pq)
}
