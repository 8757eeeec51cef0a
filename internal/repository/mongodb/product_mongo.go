package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// ProductMongo is a MongoDB implementation of repository.ProductRepository.
type ProductMongo struct {
	coll *mongo.Collection
}

// NewProductMongo creates a ProductMongo on the products collection of db.
func NewProductMongo(db *mongo.Database) *ProductMongo {
	return &ProductMongo{coll: db.Collection(productsCollection)}
}

var _ repository.ProductRepository = (*ProductMongo)(nil)

var byName = bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}

func productFilter(f repository.ProductFilter) bson.M {
	filter := bson.M{}
	setIf(filter, "category", f.Category)
	if f.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": contains(f.Search)},
			bson.M{"sku": contains(f.Search)},
		}
	}
	return filter
}

func (r *ProductMongo) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (r *ProductMongo) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return findOne[model.Product](ctx, r.coll, byID(id))
}

func (r *ProductMongo) List(ctx context.Context, f repository.ProductFilter, pq repository.PageQuery) (*repository.PageResult[model.Product], error) {
	return findPage[model.Product](ctx, r.coll, productFilter(f), byName, pq)
}

func (r *ProductMongo) ListAll(ctx context.Context, f repository.ProductFilter) ([]model.Product, error) {
	return findAll[model.Product](ctx, r.coll, productFilter(f), options.Find().SetSort(byName))
}

// ListLowStock returns products at or below their reorder level.
func (r *ProductMongo) ListLowStock(ctx context.Context) ([]model.Product, error) {
	filter := bson.M{"$expr": bson.M{"$lte": bson.A{"$quantity", "$reorder_level"}}}
	sort := bson.D{{Key: "quantity", Value: 1}, {Key: "name", Value: 1}}
	return findAll[model.Product](ctx, r.coll, filter, options.Find().SetSort(sort))
}

func (r *ProductMongo) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	return replace(ctx, r.coll, p.ID, p)
}

// AdjustQuantity applies delta with a single guarded $inc.
func (r *ProductMongo) AdjustQuantity(ctx context.Context, id string, delta int) (*model.Product, error) {
	filter := byID(id)
	if delta < 0 {
		filter["quantity"] = bson.M{"$gte": -delta}
	}
	update := bson.M{
		"$inc": bson.M{"quantity": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out model.Product
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out)
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	// Nothing matched: either the product is missing or the guard failed.
	if _, err := r.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, repository.ErrConstraint
}

func (r *ProductMongo) SetImageKey(ctx context.Context, id, key string) error {
	return updateOne(ctx, r.coll, byID(id), bson.M{"$set": bson.M{"image_key": key, "updated_at": time.Now().UTC()}})
}

func (r *ProductMongo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, byID(id))
}
