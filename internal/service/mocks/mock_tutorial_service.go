package mocks

import (
	"context"

	"erpapi/internal/model"
	"erpapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockTutorialService struct {
	mock.Mock
}

func (m *MockTutorialService) Create(ctx context.Context, in service.TutorialInput) (*model.Tutorial, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tutorial), args.Error(1)
}

func (m *MockTutorialService) Get(ctx context.Context, id string) (*model.Tutorial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tutorial), args.Error(1)
}

func (m *MockTutorialService) List(ctx context.Context, category string, limit, offset int) (*service.ListResult[model.Tutorial], error) {
	args := m.Called(ctx, category, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Tutorial]), args.Error(1)
}

func (m *MockTutorialService) Update(ctx context.Context, id string, in service.TutorialInput) (*model.Tutorial, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tutorial), args.Error(1)
}

func (m *MockTutorialService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
