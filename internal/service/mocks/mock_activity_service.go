package mocks

import (
	"context"

	"erpapi/internal/model"
	"erpapi/internal/repository"
	"erpapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Create(ctx context.Context, in service.ActivityInput) (*model.Activity, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityService) Get(ctx context.Context, id string) (*model.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityService) List(ctx context.Context, f repository.ActivityFilter, limit, offset int) (*service.ListResult[model.Activity], error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Activity]), args.Error(1)
}

func (m *MockActivityService) Update(ctx context.Context, id string, in service.ActivityInput) (*model.Activity, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockActivityService) Summary(ctx context.Context, f repository.ActivityFilter) ([]model.ActivityStatusSummary, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityStatusSummary), args.Error(1)
}

func (m *MockActivityService) AddProgress(ctx context.Context, activityID string, in service.ProgressInput) (*service.ProgressResult, error) {
	args := m.Called(ctx, activityID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProgressResult), args.Error(1)
}

func (m *MockActivityService) ListProgress(ctx context.Context, activityID string) ([]model.Progress, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Progress), args.Error(1)
}
