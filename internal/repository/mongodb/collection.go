// Package mongodb implements the document-store repositories.
package mongodb

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"erpapi/internal/repository"
)

// Collection names.
const (
	usersCollection         = "users"
	inquiriesCollection     = "inquiries"
	notificationsCollection = "notifications"
	tutorialsCollection     = "tutorials"
	emailsCollection        = "emails"
	assetsCollection        = "assets"
	productsCollection      = "products"
)

var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

// mapErr translates driver errors into repository errors.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	default:
		return err
	}
}

// byID is the filter addressing a single document.
func byID(id string) bson.M {
	return bson.M{"_id": id}
}

// setIf adds key=v to filter when v is not empty.
func setIf(filter bson.M, key, v string) {
	if v != "" {
		filter[key] = v
	}
}

// contains builds a case-insensitive substring match.
func contains(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// findPage counts the matching documents and fetches one page of them.
func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, pq repository.PageQuery) (*repository.PageResult[T], error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(sort).SetSkip(int64(pq.Offset))
	if pq.Limit > 0 {
		opts.SetLimit(int64(pq.Limit))
	}
	items, err := findAll[T](ctx, coll, filter, opts)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[T]{Items: items, Total: int(total)}, nil
}

// findAll decodes every matching document. It never returns a nil slice.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// findOne decodes the single document matching filter.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

// replace overwrites the document with the same _id and returns the stored version.
func replace[T any](ctx context.Context, coll *mongo.Collection, id string, doc *T) (*T, error) {
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var out T
	if err := coll.FindOneAndReplace(ctx, byID(id), doc, opts).Decode(&out); err != nil {
		return nil, mapErr(err)
	}
	return &out, nil
}

// deleteByID removes one document, returning ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, coll *mongo.Collection, filter bson.M) error {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// updateOne applies update to the single document matching filter.
func updateOne(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M) error {
	res, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
