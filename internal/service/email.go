package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"erpapi/internal/model"
	"erpapi/internal/repository"

	mailer "erpapi/internal/mail"
)

// EmailInput is an outgoing message. Body is sent as text, and also as
// HTML when HTML is set.
type EmailInput struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	HTML    bool     `json:"html"`
}

// EmailService defines the mail use cases.
type EmailService interface {
	// Send delivers the message and stores it in the sent log.
	Send(ctx context.Context, sentBy string, in EmailInput) (*model.Email, error)
	// Sent lists the sent log; an empty sentBy lists everyone's messages.
	Sent(ctx context.Context, sentBy string, limit, offset int) (*ListResult[model.Email], error)
	Inbox(ctx context.Context, limit int) ([]model.InboxMessage, error)
}

type emailService struct {
	repo   repository.EmailRepository
	sender mailer.Sender
	inbox  mailer.Inbox
	from   string
	logger *slog.Logger
}

// NewEmailService constructs a new EmailService. A nil sender or inbox makes
// the matching calls return ErrUnavailable.
func NewEmailService(repo repository.EmailRepository, sender mailer.Sender, inbox mailer.Inbox, from string, logger *slog.Logger) EmailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &emailService{repo: repo, sender: sender, inbox: inbox, from: from, logger: logger}
}

const maxInbox = 100

func (s *emailService) Send(ctx context.Context, sentBy string, in EmailInput) (*model.Email, error) {
	var missing []string
	if len(in.To) == 0 {
		missing = append(missing, "to")
	}
	if in.Subject == "" {
		missing = append(missing, "subject")
	}
	if in.Body == "" {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return nil, invalid(missing...)
	}
	for _, addr := range in.To {
		if _, err := mail.ParseAddress(addr); err != nil {
			return nil, invalid("to")
		}
	}
	if s.sender == nil {
		return nil, ErrUnavailable
	}

	msg := mailer.Message{To: in.To, Subject: in.Subject, TextBody: in.Body}
	if in.HTML {
		msg.HTMLBody = in.Body
	}
	messageID, err := s.sender.Send(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("send email: %w", err)
	}

	e := &model.Email{
		ID:        newID(),
		From:      s.from,
		To:        in.To,
		Subject:   in.Subject,
		Body:      in.Body,
		MessageID: messageID,
		SentBy:    sentBy,
		SentAt:    nowUTC(),
	}
	// Already delivered; a failed log write is only reported.
	if _, err := s.repo.Create(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "email_log_failed", "message_id", messageID, "error", err)
	}
	return e, nil
}

func (s *emailService) Sent(ctx context.Context, sentBy string, limit, offset int) (*ListResult[model.Email], error) {
	pq := pageQuery(limit, offset)
	res, err := s.repo.List(ctx, sentBy, pq)
	if err != nil {
		return nil, err
	}
	return toListResult(res, pq), nil
}

func (s *emailService) Inbox(ctx context.Context, limit int) ([]model.InboxMessage, error) {
	if s.inbox == nil {
		return nil, ErrUnavailable
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > maxInbox {
		limit = maxInbox
	}
	msgs, err := s.inbox.Latest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("read inbox: %w", err)
	}
	return msgs, nil
}
