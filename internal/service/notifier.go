package service

import (
	"context"
	"log/slog"

	"erpapi/internal/events"
	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// notifier stores a notification and publishes its event. Failures are
// logged and never reach the caller.
type notifier struct {
	repo      repository.NotificationRepository
	publisher events.Publisher
	logger    *slog.Logger
}

func newNotifier(repo repository.NotificationRepository, pub events.Publisher, logger *slog.Logger) *notifier {
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &notifier{repo: repo, publisher: pub, logger: logger}
}

func (n *notifier) notify(ctx context.Context, recipientID, typ, message, reference string) {
	if recipientID == "" {
		return
	}
	stored, err := n.repo.Create(ctx, &model.Notification{
		ID:          newID(),
		RecipientID: recipientID,
		Type:        typ,
		Message:     message,
		Reference:   reference,
		CreatedAt:   nowUTC(),
	})
	if err != nil {
		n.logger.ErrorContext(ctx, "notification_create_failed",
			"recipient_id", recipientID, "type", typ, "reference", reference, "error", err)
		return
	}
	if err := n.publisher.PublishNotification(ctx, stored); err != nil {
		n.logger.WarnContext(ctx, "notification_publish_failed",
			"notification_id", stored.ID, "error", err)
	}
}
