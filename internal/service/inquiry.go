package service

import (
	"context"
	"fmt"
	"log/slog"

	"erpapi/internal/captcha"
	"erpapi/internal/events"
	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// InquiryInput is the writable part of a CSR ticket.
type InquiryInput struct {
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	ContactNumber string `json:"contact_number"`
	EmailAddress  string `json:"email_address"`
	Channel       string `json:"channel"`
	WrapUp        string `json:"wrap_up"`
	Inquiry       string `json:"inquiry"`
	Status        string `json:"status"`
	AssignedAgent string `json:"assigned_agent"`
	CSRAgent      string `json:"csr_agent"`
}

// InquiryService defines the use cases for CSR tickets.
type InquiryService interface {
	// Create stores the ticket, then notifies the assigned agent. A failed
	// notification does not fail the ticket.
	Create(ctx context.Context, in InquiryInput) (*model.Inquiry, error)
	// CreatePublic verifies the captcha token before creating the ticket.
	CreatePublic(ctx context.Context, in InquiryInput, captchaToken, remoteIP string) (*model.Inquiry, error)
	Get(ctx context.Context, id string) (*model.Inquiry, error)
	List(ctx context.Context, f repository.InquiryFilter, limit, offset int) (*ListResult[model.Inquiry], error)
	// Update notifies the agent when the ticket is reassigned.
	Update(ctx context.Context, id string, in InquiryInput) (*model.Inquiry, error)
	Delete(ctx context.Context, id string) error
}

type inquiryService struct {
	repo     repository.InquiryRepository
	captcha  captcha.Verifier
	notifier *notifier
}

// NewInquiryService constructs a new InquiryService. A nil verifier accepts every token.
func NewInquiryService(repo repository.InquiryRepository, notifications repository.NotificationRepository, pub events.Publisher, verifier captcha.Verifier, logger *slog.Logger) InquiryService {
	if verifier == nil {
		verifier = captcha.Disabled{}
	}
	return &inquiryService{repo: repo, captcha: verifier, notifier: newNotifier(notifications, pub, logger)}
}

func (s *inquiryService) Create(ctx context.Context, in InquiryInput) (*model.Inquiry, error) {
	if err := requireFields(
		field{"company_name", in.CompanyName},
		field{"inquiry", in.Inquiry},
	); err != nil {
		return nil, err
	}
	if in.Status != "" && !validInquiryStatus(in.Status) {
		return nil, invalid("status")
	}

	now := nowUTC()
	i := &model.Inquiry{
		ID:           newID(),
		TicketNumber: newNumber("CSR", now),
		Status:       model.InquiryStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyInquiryInput(i, in)

	stored, err := s.repo.Create(ctx, i)
	if err != nil {
		return nil, fmt.Errorf("create inquiry: %w", mapRepoErr(err))
	}
	s.notifyAgent(ctx, stored)
	return stored, nil
}

func (s *inquiryService) CreatePublic(ctx context.Context, in InquiryInput, captchaToken, remoteIP string) (*model.Inquiry, error) {
	if err := s.captcha.Verify(ctx, captchaToken, remoteIP); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCaptchaFailed, err)
	}
	in.Channel = "Website"
	in.Status = model.InquiryStatusOpen
	in.CSRAgent = ""
	return s.Create(ctx, in)
}

func (s *inquiryService) Get(ctx context.Context, id string) (*model.Inquiry, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return i, nil
}

func (s *inquiryService) List(ctx context.Context, f repository.InquiryFilter, limit, offset int) (*ListResult[model.Inquiry], error) {
	pq := pageQuery(limit, offset)
	res, err := s.repo.List(ctx, f, pq)
	if err != nil {
		return nil, err
	}
	return toListResult(res, pq), nil
}

func (s *inquiryService) Update(ctx context.Context, id string, in InquiryInput) (*model.Inquiry, error) {
	if in.Status != "" && !validInquiryStatus(in.Status) {
		return nil, invalid("status")
	}
	i, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	previousAgent := i.AssignedAgent
	applyInquiryInput(i, in)
	i.UpdatedAt = nowUTC()

	updated, err := s.repo.Update(ctx, i)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if updated.AssignedAgent != previousAgent {
		s.notifyAgent(ctx, updated)
	}
	return updated, nil
}

func (s *inquiryService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return mapRepoErr(s.repo.Delete(ctx, id))
}

func (s *inquiryService) notifyAgent(ctx context.Context, i *model.Inquiry) {
	s.notifier.notify(ctx, i.AssignedAgent, model.NotificationTypeInquiry,
		fmt.Sprintf("New inquiry %s from %s", i.TicketNumber, i.CompanyName), i.ID)
}

func validInquiryStatus(s string) bool {
	switch s {
	case model.InquiryStatusOpen, model.InquiryStatusEndorsed, model.InquiryStatusClosed:
		return true
	}
	return false
}

func applyInquiryInput(i *model.Inquiry, in InquiryInput) {
	merge(&i.CompanyName, in.CompanyName)
	merge(&i.ContactPerson, in.ContactPerson)
	merge(&i.ContactNumber, in.ContactNumber)
	merge(&i.EmailAddress, in.EmailAddress)
	merge(&i.Channel, in.Channel)
	merge(&i.WrapUp, in.WrapUp)
	merge(&i.Inquiry, in.Inquiry)
	merge(&i.Status, in.Status)
	merge(&i.AssignedAgent, in.AssignedAgent)
	merge(&i.CSRAgent, in.CSRAgent)
}
