package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// AssetMongo is a MongoDB implementation of repository.AssetRepository.
type AssetMongo struct {
	coll *mongo.Collection
}

// NewAssetMongo creates an AssetMongo on the assets collection of db.
func NewAssetMongo(db *mongo.Database) *AssetMongo {
	return &AssetMongo{coll: db.Collection(assetsCollection)}
}

var _ repository.AssetRepository = (*AssetMongo)(nil)

func (r *AssetMongo) Create(ctx context.Context, a *model.Asset) (*model.Asset, error) {
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return nil, mapErr(err)
	}
	return a, nil
}

func (r *AssetMongo) FindByID(ctx context.Context, id string) (*model.Asset, error) {
	return findOne[model.Asset](ctx, r.coll, byID(id))
}

func (r *AssetMongo) List(ctx context.Context, f repository.AssetFilter, pq repository.PageQuery) (*repository.PageResult[model.Asset], error) {
	filter := bson.M{}
	setIf(filter, "status", f.Status)
	setIf(filter, "assigned_to", f.AssignedTo)
	setIf(filter, "department", f.Department)
	sort := bson.D{{Key: "asset_tag", Value: 1}}
	return findPage[model.Asset](ctx, r.coll, filter, sort, pq)
}

func (r *AssetMongo) Update(ctx context.Context, a *model.Asset) (*model.Asset, error) {
	return replace(ctx, r.coll, a.ID, a)
}

func (r *AssetMongo) SetImageKey(ctx context.Context, id, key string) error {
	return updateOne(ctx, r.coll, byID(id), bson.M{"$set": bson.M{"image_key": key, "updated_at": time.Now().UTC()}})
}

func (r *AssetMongo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, byID(id))
}
