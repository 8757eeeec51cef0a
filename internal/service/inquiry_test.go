package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	captchaMocks "erpapi/internal/captcha/mocks"
	eventMocks "erpapi/internal/events/mocks"
	"erpapi/internal/model"
	"erpapi/internal/repository"
	repoMocks "erpapi/internal/repository/mocks"
)

type inquiryFixture struct {
	repo    *repoMocks.MockInquiryRepository
	notifs  *repoMocks.MockNotificationRepository
	pub     *eventMocks.MockPublisher
	captcha *captchaMocks.MockVerifier
	svc     InquiryService
}

func newInquiryFixture() *inquiryFixture {
	f := &inquiryFixture{
		repo:    new(repoMocks.MockInquiryRepository),
		notifs:  new(repoMocks.MockNotificationRepository),
		pub:     new(eventMocks.MockPublisher),
		captcha: new(captchaMocks.MockVerifier),
	}
	f.svc = NewInquiryService(f.repo, f.notifs, f.pub, f.captcha, quietLogger())
	return f
}

func TestInquiryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("notifies assigned agent once", func(t *testing.T) {
		f := newInquiryFixture()
		f.repo.On("Create", ctx, mock.MatchedBy(func(i *model.Inquiry) bool {
			return strings.HasPrefix(i.TicketNumber, "CSR-") && i.Status == model.InquiryStatusOpen
		})).Return(&model.Inquiry{ID: "i-1", AssignedAgent: "TSA-001", TicketNumber: "CSR-1", CompanyName: "Acme"}, nil)
		f.notifs.On("Create", ctx, mock.MatchedBy(func(n *model.Notification) bool {
			return n.RecipientID == "TSA-001" && n.Reference == "i-1" && n.Type == model.NotificationTypeInquiry
		})).Return(&model.Notification{ID: "n-1"}, nil).Once()
		f.pub.On("PublishNotification", ctx, mock.Anything).Return(nil).Once()

		i, err := f.svc.Create(ctx, InquiryInput{CompanyName: "Acme", Inquiry: "Need quote", AssignedAgent: "TSA-001"})

		require.NoError(t, err)
		assert.Equal(t, "i-1", i.ID)
		f.notifs.AssertNumberOfCalls(t, "Create", 1)
		f.pub.AssertExpectations(t)
	})

	t.Run("no agent no notification", func(t *testing.T) {
		f := newInquiryFixture()
		f.repo.On("Create", ctx, mock.Anything).Return(&model.Inquiry{ID: "i-2"}, nil)

		_, err := f.svc.Create(ctx, InquiryInput{CompanyName: "Acme", Inquiry: "Need quote"})

		require.NoError(t, err)
		f.notifs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("notification failure still creates", func(t *testing.T) {
		f := newInquiryFixture()
		f.repo.On("Create", ctx, mock.Anything).Return(&model.Inquiry{ID: "i-3", AssignedAgent: "TSA-001"}, nil)
		f.notifs.On("Create", ctx, mock.Anything).Return(nil, errors.New("write failed"))

		i, err := f.svc.Create(ctx, InquiryInput{CompanyName: "Acme", Inquiry: "Need quote", AssignedAgent: "TSA-001"})

		require.NoError(t, err)
		assert.Equal(t, "i-3", i.ID)
	})

	t.Run("publish failure still creates", func(t *testing.T) {
		f := newInquiryFixture()
		f.repo.On("Create", ctx, mock.Anything).Return(&model.Inquiry{ID: "i-4", AssignedAgent: "TSA-001"}, nil)
		f.notifs.On("Create", ctx, mock.Anything).Return(&model.Notification{ID: "n-4"}, nil)
		f.pub.On("PublishNotification", ctx, mock.Anything).Return(errors.New("broker down"))

		_, err := f.svc.Create(ctx, InquiryInput{CompanyName: "Acme", Inquiry: "Need quote", AssignedAgent: "TSA-001"})

		assert.NoError(t, err)
	})

	t.Run("required fields", func(t *testing.T) {
		f := newInquiryFixture()
		_, err := f.svc.Create(ctx, InquiryInput{CompanyName: "Acme"})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"inquiry"}, ve.Fields)
	})
}

func TestInquiryService_CreatePublic(t *testing.T) {
	ctx := context.Background()

	t.Run("bad captcha", func(t *testing.T) {
		f := newInquiryFixture()
		f.captcha.On("Verify", ctx, "bad", "1.2.3.4").Return(errors.New("captcha rejected"))

		_, err := f.svc.CreatePublic(ctx, InquiryInput{CompanyName: "Acme", Inquiry: "Hi"}, "bad", "1.2.3.4")

		assert.ErrorIs(t, err, ErrCaptchaFailed)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("good captcha", func(t *testing.T) {
		f := newInquiryFixture()
		f.captcha.On("Verify", ctx, "ok", "1.2.3.4").Return(nil)
		f.repo.On("Create", ctx, mock.MatchedBy(func(i *model.Inquiry) bool {
			return i.Channel == "Website" && i.CSRAgent == ""
		})).Return(&model.Inquiry{ID: "i-1"}, nil)

		i, err := f.svc.CreatePublic(ctx, InquiryInput{CompanyName: "Acme", Inquiry: "Hi", CSRAgent: "spoofed"}, "ok", "1.2.3.4")

		require.NoError(t, err)
		assert.Equal(t, "i-1", i.ID)
	})
}

func TestInquiryService_UpdateReassign(t *testing.T) {
	ctx := context.Background()
	f := newInquiryFixture()
	f.repo.On("FindByID", ctx, "i-1").Return(&model.Inquiry{ID: "i-1", AssignedAgent: "TSA-001"}, nil)
	f.repo.On("Update", ctx, mock.Anything).Return(&model.Inquiry{ID: "i-1", AssignedAgent: "TSA-002"}, nil)
	f.notifs.On("Create", ctx, mock.MatchedBy(func(n *model.Notification) bool {
		return n.RecipientID == "TSA-002"
	})).Return(&model.Notification{ID: "n-1"}, nil)
	f.pub.On("PublishNotification", ctx, mock.Anything).Return(nil)

	i, err := f.svc.Update(ctx, "i-1", InquiryInput{AssignedAgent: "TSA-002"})

	require.NoError(t, err)
	assert.Equal(t, "TSA-002", i.AssignedAgent)
	f.notifs.AssertExpectations(t)
}

func TestInquiryService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newInquiryFixture()
	f.repo.On("Delete", ctx, "i-9").Return(repository.ErrNotFound)

	assert.ErrorIs(t, f.svc.Delete(ctx, "i-9"), ErrNotFound)
}
