package mocks

import (
	"context"

	"erpapi/internal/model"
	"erpapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Send(ctx context.Context, sentBy string, in service.EmailInput) (*model.Email, error) {
	args := m.Called(ctx, sentBy, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Email), args.Error(1)
}

func (m *MockEmailService) Sent(ctx context.Context, sentBy string, limit, offset int) (*service.ListResult[model.Email], error) {
	args := m.Called(ctx, sentBy, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Email]), args.Error(1)
}

func (m *MockEmailService) Inbox(ctx context.Context, limit int) ([]model.InboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.InboxMessage), args.Error(1)
}
