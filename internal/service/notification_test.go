package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"erpapi/internal/model"
	"erpapi/internal/repository"
	repoMocks "erpapi/internal/repository/mocks"
)

func TestNotificationService(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockNotificationRepository)
	svc := NewNotificationService(repo)

	repo.On("ListByRecipient", ctx, "TSA-001", true, repository.PageQuery{Limit: 10}).
		Return(&repository.PageResult[model.Notification]{Items: []model.Notification{{ID: "n-1"}}, Total: 1}, nil)
	repo.On("MarkRead", ctx, "n-9", "TSA-001").Return(repository.ErrNotFound)
	repo.On("MarkAllRead", ctx, "TSA-001").Return(int64(3), nil)
	repo.On("Delete", ctx, "n-1", "TSA-001").Return(nil)

	res, err := svc.List(ctx, "TSA-001", true, 0, 0)
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	assert.ErrorIs(t, svc.MarkRead(ctx, "n-9", "TSA-001"), ErrNotFound)

	n, err := svc.MarkAllRead(ctx, "TSA-001")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	assert.NoError(t, svc.Delete(ctx, "n-1", "TSA-001"))

	_, err = svc.List(ctx, "", false, 0, 0)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTutorialService(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockTutorialRepository)
	svc := NewTutorialService(repo)

	_, err := svc.Create(ctx, TutorialInput{Title: "Intro"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"link"}, ve.Fields)

	_, err = svc.Create(ctx, TutorialInput{Title: "Intro", Link: "javascript:alert(1)"})
	require.ErrorAs(t, err, &ve)

	repo.On("FindByID", ctx, "t-1").Return(&model.Tutorial{ID: "t-1", Title: "Intro", Link: "https://x.example/1"}, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(tu *model.Tutorial) bool {
		return tu.Title == "Intro" && tu.Link == "https://x.example/2"
	})).Return(&model.Tutorial{ID: "t-1", Title: "Intro", Link: "https://x.example/2"}, nil)

	tu, err := svc.Update(ctx, "t-1", TutorialInput{Link: "https://x.example/2"})
	require.NoError(t, err)
	assert.Equal(t, "https://x.example/2", tu.Link)

	_, err = svc.Update(ctx, "t-1", TutorialInput{Link: "ftp://x.example"})
	assert.ErrorAs(t, err, &ve)
	repo.AssertNumberOfCalls(t, "Update", 1)
}
