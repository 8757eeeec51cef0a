package repository

import (
	"context"

	"erpapi/internal/model"
)

// EmailRepository stores the log of sent e-mails.
type EmailRepository interface {
	Create(ctx context.Context, e *model.Email) (*model.Email, error)
	List(ctx context.Context, sentBy string, pq PageQuery) (*PageResult[model.Email], error)
}
