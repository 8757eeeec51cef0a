package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// ActivityInput is the writable part of an activity. Blank strings keep their
// stored value on update. The owner and the amounts are set on create only;
// afterwards amounts move through AddProgress.
type ActivityInput struct {
	AccountID        string           `json:"account_id"`
	ReferenceID      string           `json:"reference_id"`
	TSM              string           `json:"tsm"`
	Manager          string           `json:"manager"`
	CompanyName      string           `json:"company_name"`
	TypeActivity     string           `json:"type_activity"`
	Status           string           `json:"status"`
	Remarks          string           `json:"remarks"`
	QuotationAmount  *decimal.Decimal `json:"quotation_amount"`
	SalesOrderAmount *decimal.Decimal `json:"sales_order_amount"`
}

// ProgressInput records one step on an activity.
type ProgressInput struct {
	ReferenceID     string          `json:"reference_id"`
	TypeActivity    string          `json:"type_activity"`
	Status          string          `json:"status"`
	QuotationNumber string          `json:"quotation_number"`
	SONumber        string          `json:"so_number"`
	Amount          decimal.Decimal `json:"amount"`
	Remarks         string          `json:"remarks"`
}

// ProgressResult is the stored entry together with the activity it changed.
type ProgressResult struct {
	Progress *model.Progress `json:"progress"`
	Activity *model.Activity `json:"activity"`
}

// ActivityService defines the use cases for sales activities.
type ActivityService interface {
	Create(ctx context.Context, in ActivityInput) (*model.Activity, error)
	Get(ctx context.Context, id string) (*model.Activity, error)
	List(ctx context.Context, f repository.ActivityFilter, limit, offset int) (*ListResult[model.Activity], error)
	Update(ctx context.Context, id string, in ActivityInput) (*model.Activity, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, f repository.ActivityFilter) ([]model.ActivityStatusSummary, error)
	AddProgress(ctx context.Context, activityID string, in ProgressInput) (*ProgressResult, error)
	ListProgress(ctx context.Context, activityID string) ([]model.Progress, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

// NewActivityService constructs a new ActivityService.
func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) Create(ctx context.Context, in ActivityInput) (*model.Activity, error) {
	if err := requireFields(
		field{"reference_id", in.ReferenceID},
		field{"company_name", in.CompanyName},
		field{"type_activity", in.TypeActivity},
	); err != nil {
		return nil, err
	}
	if negative(in.QuotationAmount) || negative(in.SalesOrderAmount) {
		return nil, invalid("amount")
	}

	now := nowUTC()
	a := &model.Activity{
		ID:               newID(),
		ActivityNumber:   newNumber("ACT", now),
		Status:           model.ActivityStatusAssisted,
		QuotationAmount:  decimal.Zero,
		SalesOrderAmount: decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	applyActivityInput(a, in)

	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", mapRepoErr(err))
	}
	return stored, nil
}

func (s *activityService) Get(ctx context.Context, id string) (*model.Activity, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return a, nil
}

func (s *activityService) List(ctx context.Context, f repository.ActivityFilter, limit, offset int) (*ListResult[model.Activity], error) {
	pq := pageQuery(limit, offset)
	res, err := s.repo.List(ctx, f, pq)
	if err != nil {
		return nil, err
	}
	return toListResult(res, pq), nil
}

func (s *activityService) Update(ctx context.Context, id string, in ActivityInput) (*model.Activity, error) {
	var fixed []string
	if strings.TrimSpace(in.ReferenceID) != "" {
		fixed = append(fixed, "reference_id")
	}
	if in.QuotationAmount != nil {
		fixed = append(fixed, "quotation_amount")
	}
	if in.SalesOrderAmount != nil {
		fixed = append(fixed, "sales_order_amount")
	}
	if len(fixed) > 0 {
		return nil, invalid(fixed...)
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyActivityInput(a, in)
	a.UpdatedAt = nowUTC()

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return mapRepoErr(s.repo.Delete(ctx, id))
}

func (s *activityService) Summary(ctx context.Context, f repository.ActivityFilter) ([]model.ActivityStatusSummary, error) {
	rows, err := s.repo.Summary(ctx, f)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.ActivityStatusSummary{}
	}
	return rows, nil
}

// AddProgress stores the entry and moves its amount onto the activity:
// Quotation entries add to quotation_amount, Sales Order entries to
// sales_order_amount, any other type only changes the status.
func (s *activityService) AddProgress(ctx context.Context, activityID string, in ProgressInput) (*ProgressResult, error) {
	if activityID == "" {
		return nil, ErrIDRequired
	}
	if err := requireFields(
		field{"type_activity", in.TypeActivity},
		field{"status", in.Status},
	); err != nil {
		return nil, err
	}
	if in.Amount.IsNegative() {
		return nil, invalid("amount")
	}

	quotation, salesOrder := decimal.Zero, decimal.Zero
	switch in.TypeActivity {
	case model.ProgressTypeQuotation:
		quotation = in.Amount
	case model.ProgressTypeSalesOrder:
		salesOrder = in.Amount
	}

	p := &model.Progress{
		ID:              newID(),
		ActivityID:      activityID,
		ReferenceID:     in.ReferenceID,
		TypeActivity:    in.TypeActivity,
		Status:          in.Status,
		QuotationNumber: in.QuotationNumber,
		SONumber:        in.SONumber,
		Amount:          in.Amount,
		Remarks:         in.Remarks,
		CreatedAt:       nowUTC(),
	}
	activity, err := s.repo.AddProgress(ctx, p, quotation, salesOrder)
	if err != nil {
		return nil, fmt.Errorf("add progress: %w", mapRepoErr(err))
	}
	return &ProgressResult{Progress: p, Activity: activity}, nil
}

func (s *activityService) ListProgress(ctx context.Context, activityID string) ([]model.Progress, error) {
	if activityID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.Get(ctx, activityID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListProgress(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Progress{}
	}
	return items, nil
}

func applyActivityInput(a *model.Activity, in ActivityInput) {
	merge(&a.AccountID, in.AccountID)
	merge(&a.ReferenceID, in.ReferenceID)
	merge(&a.TSM, in.TSM)
	merge(&a.Manager, in.Manager)
	merge(&a.CompanyName, in.CompanyName)
	merge(&a.TypeActivity, in.TypeActivity)
	merge(&a.Status, in.Status)
	merge(&a.Remarks, in.Remarks)
	if in.QuotationAmount != nil {
		a.QuotationAmount = *in.QuotationAmount
	}
	if in.SalesOrderAmount != nil {
		a.SalesOrderAmount = *in.SalesOrderAmount
	}
}

func negative(d *decimal.Decimal) bool {
	return d != nil && d.IsNegative()
}
