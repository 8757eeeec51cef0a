package repository

import (
	"context"

	"erpapi/internal/model"
)

// TutorialRepository defines data access for tutorials.
type TutorialRepository interface {
	Create(ctx context.Context, t *model.Tutorial) (*model.Tutorial, error)
	FindByID(ctx context.Context, id string) (*model.Tutorial, error)
	List(ctx context.Context, category string, pq PageQuery) (*PageResult[model.Tutorial], error)
	Update(ctx context.Context, t *model.Tutorial) (*model.Tutorial, error)
	Delete(ctx context.Context, id string) error
}
