package mocks

import (
	"context"

	"erpapi/internal/model"
	"erpapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTutorialRepository struct {
	mock.Mock
}

func (m *MockTutorialRepository) Create(ctx context.Context, t *model.Tutorial) (*model.Tutorial, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tutorial), args.Error(1)
}

func (m *MockTutorialRepository) FindByID(ctx context.Context, id string) (*model.Tutorial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tutorial), args.Error(1)
}

func (m *MockTutorialRepository) List(ctx context.Context, category string, pq repository.PageQuery) (*repository.PageResult[model.Tutorial], error) {
	args := m.Called(ctx, category, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Tutorial]), args.Error(1)
}

func (m *MockTutorialRepository) Update(ctx context.Context, t *model.Tutorial) (*model.Tutorial, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tutorial), args.Error(1)
}

func (m *MockTutorialRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
