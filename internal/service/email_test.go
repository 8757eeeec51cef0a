package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mailMocks "erpapi/internal/mail/mocks"
	"erpapi/internal/model"
	"erpapi/internal/repository"
	repoMocks "erpapi/internal/repository/mocks"

	mailer "erpapi/internal/mail"
)

func TestEmailService_Send(t *testing.T) {
	ctx := context.Background()
	in := EmailInput{To: []string{"buyer@acme.com"}, Subject: "Quotation", Body: "<p>Hi</p>", HTML: true}

	t.Run("sends and logs", func(t *testing.T) {
		repo := new(repoMocks.MockEmailRepository)
		sender := new(mailMocks.MockSender)
		svc := NewEmailService(repo, sender, nil, "erp@example.com", quietLogger())
		sender.On("Send", ctx, mailer.Message{To: in.To, Subject: "Quotation", TextBody: "<p>Hi</p>", HTMLBody: "<p>Hi</p>"}).Return("12345", nil)
		repo.On("Create", ctx, mock.MatchedBy(func(e *model.Email) bool {
			return e.MessageID == "12345" && e.SentBy == "TSA-001" && e.From == "erp@example.com"
		})).Return(&model.Email{ID: "e-1"}, nil)

		e, err := svc.Send(ctx, "TSA-001", in)

		require.NoError(t, err)
		assert.Equal(t, "12345", e.MessageID)
		repo.AssertExpectations(t)
	})

	t.Run("log failure still returns sent message", func(t *testing.T) {
		repo := new(repoMocks.MockEmailRepository)
		sender := new(mailMocks.MockSender)
		svc := NewEmailService(repo, sender, nil, "erp@example.com", quietLogger())
		sender.On("Send", ctx, mock.Anything).Return("12345", nil)
		repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("mongo down"))

		e, err := svc.Send(ctx, "TSA-001", in)

		require.NoError(t, err)
		assert.Equal(t, "12345", e.MessageID)
	})

	t.Run("provider failure", func(t *testing.T) {
		repo := new(repoMocks.MockEmailRepository)
		sender := new(mailMocks.MockSender)
		svc := NewEmailService(repo, sender, nil, "erp@example.com", quietLogger())
		sender.On("Send", ctx, mock.Anything).Return("", errors.New("401"))

		_, err := svc.Send(ctx, "TSA-001", in)

		assert.EqualError(t, err, "send email: 401")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewEmailService(new(repoMocks.MockEmailRepository), new(mailMocks.MockSender), nil, "", quietLogger())

		_, err := svc.Send(ctx, "x", EmailInput{})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"to", "subject", "body"}, ve.Fields)

		_, err = svc.Send(ctx, "x", EmailInput{To: []string{"not an address"}, Subject: "s", Body: "b"})
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"to"}, ve.Fields)
	})

	t.Run("not configured", func(t *testing.T) {
		svc := NewEmailService(new(repoMocks.MockEmailRepository), nil, nil, "", quietLogger())
		_, err := svc.Send(ctx, "x", in)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestEmailService_Inbox(t *testing.T) {
	ctx := context.Background()
	inbox := new(mailMocks.MockInbox)
	svc := NewEmailService(new(repoMocks.MockEmailRepository), nil, inbox, "", quietLogger())
	inbox.On("Latest", ctx, 20).Return([]model.InboxMessage{{UID: 1}}, nil)
	inbox.On("Latest", ctx, 100).Return([]model.InboxMessage{}, nil)

	msgs, err := svc.Inbox(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	_, err = svc.Inbox(ctx, 500)
	assert.NoError(t, err)
	inbox.AssertExpectations(t)

	_, err = NewEmailService(nil, nil, nil, "", quietLogger()).Inbox(ctx, 10)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestEmailService_Sent(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockEmailRepository)
	svc := NewEmailService(repo, nil, nil, "", quietLogger())
	repo.On("List", ctx, "TSA-001", repository.PageQuery{Limit: 10}).
		Return(&repository.PageResult[model.Email]{Items: []model.Email{{ID: "e-1"}}, Total: 1}, nil)

	res, err := svc.Sent(ctx, "TSA-001", 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}
