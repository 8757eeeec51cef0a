package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"erpapi/internal/model"
	"erpapi/internal/repository"
	repoMocks "erpapi/internal/repository/mocks"
)

func TestActivityService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("generates number and default status", func(t *testing.T) {
		repo := new(repoMocks.MockActivityRepository)
		svc := NewActivityService(repo)
		repo.On("Create", ctx, mock.MatchedBy(func(a *model.Activity) bool {
			return strings.HasPrefix(a.ActivityNumber, "ACT-") &&
				a.Status == model.ActivityStatusAssisted &&
				a.QuotationAmount.IsZero()
		})).Return(&model.Activity{ID: "act-1"}, nil)

		a, err := svc.Create(ctx, ActivityInput{ReferenceID: "TSA-001", CompanyName: "Acme", TypeActivity: "Call"})

		require.NoError(t, err)
		assert.Equal(t, "act-1", a.ID)
		repo.AssertExpectations(t)
	})

	t.Run("required fields", func(t *testing.T) {
		svc := NewActivityService(new(repoMocks.MockActivityRepository))
		_, err := svc.Create(ctx, ActivityInput{})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"reference_id", "company_name", "type_activity"}, ve.Fields)
	})

	t.Run("negative amount", func(t *testing.T) {
		svc := NewActivityService(new(repoMocks.MockActivityRepository))
		neg := decimal.NewFromInt(-1)
		_, err := svc.Create(ctx, ActivityInput{ReferenceID: "r", CompanyName: "c", TypeActivity: "t", QuotationAmount: &neg})
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestActivityService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merges editable fields", func(t *testing.T) {
		repo := new(repoMocks.MockActivityRepository)
		svc := NewActivityService(repo)
		repo.On("FindByID", ctx, "act-1").Return(&model.Activity{ID: "act-1", CompanyName: "Acme", Status: "Assisted"}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(a *model.Activity) bool {
			return a.CompanyName == "Acme" && a.Status == "Quote-Done" && a.Remarks == "called back"
		})).Return(&model.Activity{ID: "act-1", Status: "Quote-Done"}, nil)

		a, err := svc.Update(ctx, "act-1", ActivityInput{Status: "Quote-Done", Remarks: "called back"})

		require.NoError(t, err)
		assert.Equal(t, "Quote-Done", a.Status)
	})

	t.Run("owner and amounts are not writable", func(t *testing.T) {
		repo := new(repoMocks.MockActivityRepository)
		svc := NewActivityService(repo)
		amount := decimal.NewFromInt(500)

		_, err := svc.Update(ctx, "act-1", ActivityInput{
			ReferenceID:      "TSA-002",
			QuotationAmount:  &amount,
			SalesOrderAmount: &amount,
		})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"reference_id", "quotation_amount", "sales_order_amount"}, ve.Fields)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestActivityService_AddProgress(t *testing.T) {
	ctx := context.Background()
	amount := decimal.RequireFromString("1500.50")

	tests := []struct {
		name           string
		typ            string
		wantQuotation  decimal.Decimal
		wantSalesOrder decimal.Decimal
	}{
		{"quotation", model.ProgressTypeQuotation, amount, decimal.Zero},
		{"sales order", model.ProgressTypeSalesOrder, decimal.Zero, amount},
		{"other type moves status only", "Delivered", decimal.Zero, decimal.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockActivityRepository)
			svc := NewActivityService(repo)
			repo.On("AddProgress", ctx,
				mock.MatchedBy(func(p *model.Progress) bool {
					return p.ActivityID == "act-1" && p.Status == "Quote-Done" && p.ID != ""
				}),
				mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(tt.wantQuotation) }),
				mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(tt.wantSalesOrder) }),
			).Return(&model.Activity{ID: "act-1", Status: "Quote-Done"}, nil)

			res, err := svc.AddProgress(ctx, "act-1", ProgressInput{TypeActivity: tt.typ, Status: "Quote-Done", Amount: amount})

			require.NoError(t, err)
			assert.Equal(t, "Quote-Done", res.Activity.Status)
			assert.True(t, res.Progress.Amount.Equal(amount))
			repo.AssertExpectations(t)
		})
	}

	t.Run("unknown activity", func(t *testing.T) {
		repo := new(repoMocks.MockActivityRepository)
		svc := NewActivityService(repo)
		repo.On("AddProgress", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound)

		_, err := svc.AddProgress(ctx, "act-9", ProgressInput{TypeActivity: "Call", Status: "Done"})

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewActivityService(new(repoMocks.MockActivityRepository))

		_, err := svc.AddProgress(ctx, "", ProgressInput{})
		assert.ErrorIs(t, err, ErrIDRequired)

		_, err = svc.AddProgress(ctx, "act-1", ProgressInput{TypeActivity: "Quotation", Status: "x", Amount: decimal.NewFromInt(-5)})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"amount"}, ve.Fields)
	})
}

func TestActivityService_ListProgress(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockActivityRepository)
	svc := NewActivityService(repo)
	repo.On("FindByID", ctx, "act-1").Return(&model.Activity{ID: "act-1"}, nil)
	repo.On("ListProgress", ctx, "act-1").Return(nil, nil)
	repo.On("FindByID", ctx, "act-9").Return(nil, repository.ErrNotFound)

	items, err := svc.ListProgress(ctx, "act-1")
	require.NoError(t, err)
	assert.NotNil(t, items)

	_, err = svc.ListProgress(ctx, "act-9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivityService_Summary(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockActivityRepository)
	svc := NewActivityService(repo)
	f := repository.ActivityFilter{TSM: "TSM-001"}
	repo.On("Summary", ctx, f).Return([]model.ActivityStatusSummary{
		{Status: "Assisted", Count: 3, QuotationAmount: decimal.NewFromInt(100)},
	}, nil)

	rows, err := svc.Summary(ctx, f)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Count)
}
