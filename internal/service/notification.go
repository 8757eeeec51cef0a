package service

import (
	"context"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// NotificationService defines the inbox use cases of the current user.
// Every call is scoped to recipientID.
type NotificationService interface {
	List(ctx context.Context, recipientID string, unreadOnly bool, limit, offset int) (*ListResult[model.Notification], error)
	MarkRead(ctx context.Context, id, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
	Delete(ctx context.Context, id, recipientID string) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, recipientID string, unreadOnly bool, limit, offset int) (*ListResult[model.Notification], error) {
	if recipientID == "" {
		return nil, ErrForbidden
	}
	pq := pageQuery(limit, offset)
	res, err := s.repo.ListByRecipient(ctx, recipientID, unreadOnly, pq)
	if err != nil {
		return nil, err
	}
	return toListResult(res, pq), nil
}

func (s *notificationService) MarkRead(ctx context.Context, id, recipientID string) error {
	if id == "" {
		return ErrIDRequired
	}
	return mapRepoErr(s.repo.MarkRead(ctx, id, recipientID))
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	if recipientID == "" {
		return 0, ErrForbidden
	}
	return s.repo.MarkAllRead(ctx, recipientID)
}

func (s *notificationService) Delete(ctx context.Context, id, recipientID string) error {
	if id == "" {
		return ErrIDRequired
	}
	return mapRepoErr(s.repo.Delete(ctx, id, recipientID))
}
