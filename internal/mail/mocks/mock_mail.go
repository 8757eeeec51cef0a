package mocks

import (
	"context"

	"erpapi/internal/mail"
	"erpapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mail.Message) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

type MockInbox struct {
	mock.Mock
}

func (m *MockInbox) Latest(ctx context.Context, limit int) ([]model.InboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InboxMessage), args.Error(1)
}
