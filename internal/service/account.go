package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"erpapi/internal/events"
	"erpapi/internal/export"
	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// AccountInput is the writable part of an account. On update, blank fields
// keep their stored value; ownership fields only change through Transfer.
type AccountInput struct {
	ReferenceID   string `json:"reference_id"`
	TSM           string `json:"tsm"`
	Manager       string `json:"manager"`
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	ContactNumber string `json:"contact_number"`
	EmailAddress  string `json:"email_address"`
	Address       string `json:"address"`
	Area          string `json:"area"`
	TypeClient    string `json:"type_client"`
	Status        string `json:"status"`
}

// TransferInput moves accounts to a new owner chain.
type TransferInput struct {
	AccountIDs  []string `json:"account_ids"`
	ReferenceID string   `json:"reference_id"`
	TSM         string   `json:"tsm"`
	Manager     string   `json:"manager"`
}

// AccountService defines the use cases for customer accounts.
type AccountService interface {
	Create(ctx context.Context, in AccountInput) (*model.Account, error)
	Get(ctx context.Context, id string) (*model.Account, error)
	List(ctx context.Context, f repository.AccountFilter, limit, offset int) (*ListResult[model.Account], error)
	Update(ctx context.Context, id string, in AccountInput) (*model.Account, error)
	// Delete marks the account Removed; the row is kept.
	Delete(ctx context.Context, id string) error
	// Transfer reassigns every listed account or none of them, then notifies
	// the new owner.
	Transfer(ctx context.Context, in TransferInput) (int, error)
	Export(ctx context.Context, w io.Writer, f repository.AccountFilter) error
}

type accountService struct {
	repo     repository.AccountRepository
	notifier *notifier
}

// NewAccountService constructs a new AccountService.
func NewAccountService(repo repository.AccountRepository, notifications repository.NotificationRepository, pub events.Publisher, logger *slog.Logger) AccountService {
	return &accountService{repo: repo, notifier: newNotifier(notifications, pub, logger)}
}

func (s *accountService) Create(ctx context.Context, in AccountInput) (*model.Account, error) {
	if err := requireFields(
		field{"company_name", in.CompanyName},
		field{"reference_id", in.ReferenceID},
	); err != nil {
		return nil, err
	}

	now := nowUTC()
	a := &model.Account{
		ID:        newID(),
		Status:    model.AccountStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyAccountInput(a, in)
	if in.Status != "" && !validAccountStatus(in.Status) {
		return nil, invalid("status")
	}

	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", mapRepoErr(err))
	}
	return stored, nil
}

func (s *accountService) Get(ctx context.Context, id string) (*model.Account, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return a, nil
}

func (s *accountService) List(ctx context.Context, f repository.AccountFilter, limit, offset int) (*ListResult[model.Account], error) {
	pq := pageQuery(limit, offset)
	res, err := s.repo.List(ctx, f, pq)
	if err != nil {
		return nil, err
	}
	return toListResult(res, pq), nil
}

func (s *accountService) Update(ctx context.Context, id string, in AccountInput) (*model.Account, error) {
	if err := rejectSet(
		field{"reference_id", in.ReferenceID},
		field{"tsm", in.TSM},
		field{"manager", in.Manager},
	); err != nil {
		return nil, err
	}
	if in.Status != "" && !validAccountStatus(in.Status) {
		return nil, invalid("status")
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyAccountInput(a, in)
	a.UpdatedAt = nowUTC()

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return mapRepoErr(s.repo.SetStatus(ctx, id, model.AccountStatusRemoved))
}

func (s *accountService) Transfer(ctx context.Context, in TransferInput) (int, error) {
	ids := dedupe(in.AccountIDs)
	var missing []string
	if len(ids) == 0 {
		missing = append(missing, "account_ids")
	}
	if strings.TrimSpace(in.ReferenceID) == "" {
		missing = append(missing, "reference_id")
	}
	if len(missing) > 0 {
		return 0, invalid(missing...)
	}
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
	}

	n, err := s.repo.Transfer(ctx, repository.AccountTransfer{
		AccountIDs:  ids,
		ReferenceID: in.ReferenceID,
		TSM:         in.TSM,
		Manager:     in.Manager,
	})
	if err != nil {
		return 0, fmt.Errorf("transfer accounts: %w", mapRepoErr(err))
	}

	s.notifier.notify(ctx, in.ReferenceID, model.NotificationTypeTransfer,
		fmt.Sprintf("%d account(s) have been transferred to you", n), "")
	return n, nil
}

func (s *accountService) Export(ctx context.Context, w io.Writer, f repository.AccountFilter) error {
	accounts, err := s.repo.ListAll(ctx, f)
	if err != nil {
		return err
	}
	return export.Accounts(w, accounts)
}

func applyAccountInput(a *model.Account, in AccountInput) {
	merge(&a.ReferenceID, in.ReferenceID)
	merge(&a.TSM, in.TSM)
	merge(&a.Manager, in.Manager)
	merge(&a.CompanyName, in.CompanyName)
	merge(&a.ContactPerson, in.ContactPerson)
	merge(&a.ContactNumber, in.ContactNumber)
	merge(&a.EmailAddress, in.EmailAddress)
	merge(&a.Address, in.Address)
	merge(&a.Area, in.Area)
	merge(&a.TypeClient, in.TypeClient)
	merge(&a.Status, in.Status)
}

func validAccountStatus(s string) bool {
	return s == model.AccountStatusActive || s == model.AccountStatusRemoved
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
