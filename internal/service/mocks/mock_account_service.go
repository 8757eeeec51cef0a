package mocks

import (
	"context"
	"io"

	"erpapi/internal/model"
	"erpapi/internal/repository"
	"erpapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Create(ctx context.Context, in service.AccountInput) (*model.Account, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountService) Get(ctx context.Context, id string) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountService) List(ctx context.Context, f repository.AccountFilter, limit, offset int) (*service.ListResult[model.Account], error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Account]), args.Error(1)
}

func (m *MockAccountService) Update(ctx context.Context, id string, in service.AccountInput) (*model.Account, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccountService) Transfer(ctx context.Context, in service.TransferInput) (int, error) {
	args := m.Called(ctx, in)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountService) Export(ctx context.Context, w io.Writer, f repository.AccountFilter) error {
	args := m.Called(ctx, w, f)
	if b, ok := args.Get(0).([]byte); ok {
		if _, err := w.Write(b); err != nil {
			return err
		}
		return args.Error(1)
	}
	return args.Error(0)
}
