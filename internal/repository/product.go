package repository

import (
	"context"

	"erpapi/internal/model"
)

// ProductFilter narrows product listings. Search matches name or SKU.
type ProductFilter struct {
	Category string
	Search   string
}

// ProductRepository defines data access for warehouse products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, f ProductFilter, pq PageQuery) (*PageResult[model.Product], error)
	ListAll(ctx context.Context, f ProductFilter) ([]model.Product, error)
	ListLowStock(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) (*model.Product, error)
	// AdjustQuantity adds delta to the quantity unless the result would be
	// negative, in which case it returns ErrConstraint.
	AdjustQuantity(ctx context.Context, id string, delta int) (*model.Product, error)
	SetImageKey(ctx context.Context, id, key string) error
	Delete(ctx context.Context, id string) error
}
