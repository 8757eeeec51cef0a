// Package mail sends e-mail through Mailjet and reads the shared IMAP inbox.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mailjet/mailjet-apiv3-go/v4"

	"erpapi/internal/config"
)

// ErrNotConfigured is returned when the provider credentials are missing.
var ErrNotConfigured = errors.New("mail provider not configured")

// Message is an outgoing e-mail.
type Message struct {
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers messages and returns the provider message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// mailjetClient is the part of *mailjet.Client the sender uses.
type mailjetClient interface {
	SendMailV31(data *mailjet.MessagesV31, options ...mailjet.RequestOptions) (*mailjet.ResultsV31, error)
}

// MailjetSender sends through the Mailjet v3.1 send API.
type MailjetSender struct {
	client   mailjetClient
	from     string
	fromName string
}

// NewMailjetSender builds a sender from cfg.
func NewMailjetSender(cfg config.MailjetConfig) (*MailjetSender, error) {
	if cfg.APIKey == "" || cfg.SecretKey == "" || cfg.FromEmail == "" {
		return nil, ErrNotConfigured
	}
	return &MailjetSender{
		client:   mailjet.NewMailjetClient(cfg.APIKey, cfg.SecretKey),
		from:     cfg.FromEmail,
		fromName: cfg.FromName,
	}, nil
}

// From returns the sender address.
func (s *MailjetSender) From() string {
	return s.from
}

func (s *MailjetSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	to := make(mailjet.RecipientsV31, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, mailjet.RecipientV31{Email: addr})
	}
	info := mailjet.InfoMessagesV31{
		From:     &mailjet.RecipientV31{Email: s.from, Name: s.fromName},
		To:       &to,
		Subject:  msg.Subject,
		TextPart: msg.TextBody,
		HTMLPart: msg.HTMLBody,
	}

	res, err := s.client.SendMailV31(&mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{info}})
	if err != nil {
		return "", fmt.Errorf("mailjet send: %w", err)
	}
	if len(res.ResultsV31) == 0 {
		return "", errors.New("mailjet send: empty response")
	}
	r := res.ResultsV31[0]
	if r.Status != "success" {
		return "", fmt.Errorf("mailjet send: status %q", r.Status)
	}
	if len(r.To) == 0 {
		return "", nil
	}
	return strconv.FormatInt(r.To[0].MessageID, 10), nil
}
