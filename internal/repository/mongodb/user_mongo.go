package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// UserMongo is a MongoDB implementation of repository.UserRepository.
type UserMongo struct {
	coll *mongo.Collection
}

// NewUserMongo creates a UserMongo on the users collection of db.
func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{coll: db.Collection(usersCollection)}
}

var _ repository.UserRepository = (*UserMongo)(nil)

// Create inserts u. Duplicate email or reference id yields repository.ErrDuplicate.
func (r *UserMongo) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return nil, mapErr(err)
	}
	return u, nil
}

func (r *UserMongo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, byID(id))
}

func (r *UserMongo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.M{"email": email})
}

func (r *UserMongo) FindByReferenceID(ctx context.Context, referenceID string) (*model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.M{"reference_id": referenceID})
}

// List returns users sorted by last then first name.
func (r *UserMongo) List(ctx context.Context, f repository.UserFilter, pq repository.PageQuery) (*repository.PageResult[model.User], error) {
	filter := bson.M{}
	setIf(filter, "role", f.Role)
	setIf(filter, "tsm", f.TSM)
	setIf(filter, "manager", f.Manager)
	setIf(filter, "status", f.Status)
	sort := bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}, {Key: "_id", Value: 1}}
	return findPage[model.User](ctx, r.coll, filter, sort, pq)
}

func (r *UserMongo) Update(ctx context.Context, u *model.User) (*model.User, error) {
	return replace(ctx, r.coll, u.ID, u)
}
