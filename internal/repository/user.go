package repository

import (
	"context"

	"erpapi/internal/model"
)

// UserFilter narrows user listings. Empty fields are ignored.
type UserFilter struct {
	Role    string
	TSM     string
	Manager string
	Status  string
}

// UserRepository defines data access for users.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByReferenceID(ctx context.Context, referenceID string) (*model.User, error)
	List(ctx context.Context, f UserFilter, pq PageQuery) (*PageResult[model.User], error)
	Update(ctx context.Context, u *model.User) (*model.User, error)
}
