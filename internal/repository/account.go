package repository

import (
	"context"

	"erpapi/internal/model"
)

// AccountFilter narrows account listings. Empty fields are ignored.
// When Status is empty, removed accounts are excluded.
type AccountFilter struct {
	ReferenceID string
	TSM         string
	Manager     string
	Status      string
	Search      string
}

// AccountTransfer reassigns accounts to a new owner chain.
type AccountTransfer struct {
	AccountIDs  []string
	ReferenceID string
	TSM         string
	Manager     string
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, a *model.Account) (*model.Account, error)
	FindByID(ctx context.Context, id string) (*model.Account, error)
	List(ctx context.Context, f AccountFilter, pq PageQuery) (*PageResult[model.Account], error)
	// ListAll returns every account matching f, for exports.
	ListAll(ctx context.Context, f AccountFilter) ([]model.Account, error)
	// Update overwrites the mutable columns and returns the stored row.
	Update(ctx context.Context, a *model.Account) (*model.Account, error)
	// SetStatus changes only the status column.
	SetStatus(ctx context.Context, id, status string) error
	// Transfer reassigns all accounts in one transaction and returns the
	// number of rows changed. Any unknown id rolls the whole batch back.
	Transfer(ctx context.Context, t AccountTransfer) (int, error)
}
