package repository

import (
	"context"

	"erpapi/internal/model"
)

// InquiryFilter narrows inquiry listings. Empty fields are ignored.
type InquiryFilter struct {
	Status        string
	AssignedAgent string
	CSRAgent      string
}

// InquiryRepository defines data access for CSR tickets.
type InquiryRepository interface {
	Create(ctx context.Context, i *model.Inquiry) (*model.Inquiry, error)
	FindByID(ctx context.Context, id string) (*model.Inquiry, error)
	List(ctx context.Context, f InquiryFilter, pq PageQuery) (*PageResult[model.Inquiry], error)
	Update(ctx context.Context, i *model.Inquiry) (*model.Inquiry, error)
	Delete(ctx context.Context, id string) error
}
