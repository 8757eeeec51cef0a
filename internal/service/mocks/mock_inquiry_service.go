package mocks

import (
	"context"

	"erpapi/internal/model"
	"erpapi/internal/repository"
	"erpapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) Create(ctx context.Context, in service.InquiryInput) (*model.Inquiry, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *MockInquiryService) CreatePublic(ctx context.Context, in service.InquiryInput, captchaToken, remoteIP string) (*model.Inquiry, error) {
	args := m.Called(ctx, in, captchaToken, remoteIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *MockInquiryService) Get(ctx context.Context, id string) (*model.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *MockInquiryService) List(ctx context.Context, f repository.InquiryFilter, limit, offset int) (*service.ListResult[model.Inquiry], error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Inquiry]), args.Error(1)
}

func (m *MockInquiryService) Update(ctx context.Context, id string, in service.InquiryInput) (*model.Inquiry, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Inquiry), args.Error(1)
}

func (m *MockInquiryService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
