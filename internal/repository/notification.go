package repository

import (
	"context"

	"erpapi/internal/model"
)

// NotificationRepository defines data access for user notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool, pq PageQuery) (*PageResult[model.Notification], error)
	// MarkRead flags one notification of recipientID as read.
	MarkRead(ctx context.Context, id, recipientID string) error
	// MarkAllRead flags every unread notification of recipientID and returns how many changed.
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
	Delete(ctx context.Context, id, recipientID string) error
}
