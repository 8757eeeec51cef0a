package mocks

import (
	"context"

	"erpapi/internal/model"
	"erpapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Create(ctx context.Context, i *model.Inquiry) (*model.Inquiry, error) {
	args := m.Called(ctx, i)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) FindByID(ctx context.Context, id string) (*model.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) List(ctx context.Context, f repository.InquiryFilter, pq repository.PageQuery) (*repository.PageResult[model.Inquiry], error) {
	args := m.Called(ctx, f, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Inquiry]), args.Error(1)
}

func (m *MockInquiryRepository) Update(ctx context.Context, i *model.Inquiry) (*model.Inquiry, error) {
	args := m.Called(ctx, i)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
