package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// TutorialMongo is a MongoDB implementation of repository.TutorialRepository.
type TutorialMongo struct {
	coll *mongo.Collection
}

// NewTutorialMongo creates a TutorialMongo on the tutorials collection of db.
func NewTutorialMongo(db *mongo.Database) *TutorialMongo {
	return &TutorialMongo{coll: db.Collection(tutorialsCollection)}
}

var _ repository.TutorialRepository = (*TutorialMongo)(nil)

func (r *TutorialMongo) Create(ctx context.Context, t *model.Tutorial) (*model.Tutorial, error) {
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return nil, mapErr(err)
	}
	return t, nil
}

func (r *TutorialMongo) FindByID(ctx context.Context, id string) (*model.Tutorial, error) {
	return findOne[model.Tutorial](ctx, r.coll, byID(id))
}

func (r *TutorialMongo) List(ctx context.Context, category string, pq repository.PageQuery) (*repository.PageResult[model.Tutorial], error) {
	filter := bson.M{}
	setIf(filter, "category", category)
	return findPage[model.Tutorial](ctx, r.coll, filter, newestFirst, pq)
}

func (r *TutorialMongo) Update(ctx context.Context, t *model.Tutorial) (*model.Tutorial, error) {
	return replace(ctx, r.coll, t.ID, t)
}

func (r *TutorialMongo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, byID(id))
}
