package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// InquiryMongo is a MongoDB implementation of repository.InquiryRepository.
type InquiryMongo struct {
	coll *mongo.Collection
}

// NewInquiryMongo creates an InquiryMongo on the inquiries collection of db.
func NewInquiryMongo(db *mongo.Database) *InquiryMongo {
	return &InquiryMongo{coll: db.Collection(inquiriesCollection)}
}

var _ repository.InquiryRepository = (*InquiryMongo)(nil)

func (r *InquiryMongo) Create(ctx context.Context, i *model.Inquiry) (*model.Inquiry, error) {
	if _, err := r.coll.InsertOne(ctx, i); err != nil {
		return nil, mapErr(err)
	}
	return i, nil
}

func (r *InquiryMongo) FindByID(ctx context.Context, id string) (*model.Inquiry, error) {
	return findOne[model.Inquiry](ctx, r.coll, byID(id))
}

func (r *InquiryMongo) List(ctx context.Context, f repository.InquiryFilter, pq repository.PageQuery) (*repository.PageResult[model.Inquiry], error) {
	filter := bson.M{}
	setIf(filter, "status", f.Status)
	setIf(filter, "assigned_agent", f.AssignedAgent)
	setIf(filter, "csr_agent", f.CSRAgent)
	return findPage[model.Inquiry](ctx, r.coll, filter, newestFirst, pq)
}

func (r *InquiryMongo) Update(ctx context.Context, i *model.Inquiry) (*model.Inquiry, error) {
	return replace(ctx, r.coll, i.ID, i)
}

func (r *InquiryMongo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, byID(id))
}
