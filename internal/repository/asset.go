package repository

import (
	"context"

	"erpapi/internal/model"
)

// AssetFilter narrows asset listings. Empty fields are ignored.
type AssetFilter struct {
	Status     string
	AssignedTo string
	Department string
}

// AssetRepository defines data access for IT assets.
type AssetRepository interface {
	Create(ctx context.Context, a *model.Asset) (*model.Asset, error)
	FindByID(ctx context.Context, id string) (*model.Asset, error)
	List(ctx context.Context, f AssetFilter, pq PageQuery) (*PageResult[model.Asset], error)
	Update(ctx context.Context, a *model.Asset) (*model.Asset, error)
	SetImageKey(ctx context.Context, id, key string) error
	Delete(ctx context.Context, id string) error
}
