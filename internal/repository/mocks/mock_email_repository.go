package mocks

import (
	"context"

	"erpapi/internal/model"
	"erpapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockEmailRepository struct {
	mock.Mock
}

func (m *MockEmailRepository) Create(ctx context.Context, e *model.Email) (*model.Email, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Email), args.Error(1)
}

func (m *MockEmailRepository) List(ctx context.Context, sentBy string, pq repository.PageQuery) (*repository.PageResult[model.Email], error) {
	args := m.Called(ctx, sentBy, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Email]), args.Error(1)
}
