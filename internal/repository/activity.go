package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"erpapi/internal/model"
)

// ActivityFilter narrows activity listings and summaries. Zero values are ignored.
type ActivityFilter struct {
	ReferenceID string
	TSM         string
	Manager     string
	Status      string
	From        time.Time
	To          time.Time
}

// ActivityRepository defines data access for activities and their progress entries.
type ActivityRepository interface {
	Create(ctx context.Context, a *model.Activity) (*model.Activity, error)
	FindByID(ctx context.Context, id string) (*model.Activity, error)
	List(ctx context.Context, f ActivityFilter, pq PageQuery) (*PageResult[model.Activity], error)
	Update(ctx context.Context, a *model.Activity) (*model.Activity, error)
	// Delete removes an activity and, by cascade, its progress entries.
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, f ActivityFilter) ([]model.ActivityStatusSummary, error)

	// AddProgress inserts p, sets the parent activity status to p.Status and
	// adds the deltas to its amounts, all in one transaction. It returns the
	// updated activity.
	AddProgress(ctx context.Context, p *model.Progress, quotationDelta, salesOrderDelta decimal.Decimal) (*model.Activity, error)
	ListProgress(ctx context.Context, activityID string) ([]model.Progress, error)
}
