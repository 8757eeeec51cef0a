package service

import (
	"context"
	"fmt"
	"net/url"

	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// TutorialInput is the writable part of a tutorial.
type TutorialInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Category    string `json:"category"`
	CreatedBy   string `json:"created_by"`
}

// TutorialService defines the use cases for training links.
type TutorialService interface {
	Create(ctx context.Context, in TutorialInput) (*model.Tutorial, error)
	Get(ctx context.Context, id string) (*model.Tutorial, error)
	List(ctx context.Context, category string, limit, offset int) (*ListResult[model.Tutorial], error)
	Update(ctx context.Context, id string, in TutorialInput) (*model.Tutorial, error)
	Delete(ctx context.Context, id string) error
}

type tutorialService struct {
	repo repository.TutorialRepository
}

// NewTutorialService constructs a new TutorialService.
func NewTutorialService(repo repository.TutorialRepository) TutorialService {
	return &tutorialService{repo: repo}
}

func (s *tutorialService) Create(ctx context.Context, in TutorialInput) (*model.Tutorial, error) {
	if err := requireFields(field{"title", in.Title}, field{"link", in.Link}); err != nil {
		return nil, err
	}
	if !validLink(in.Link) {
		return nil, invalid("link")
	}

	now := nowUTC()
	t := &model.Tutorial{
		ID:          newID(),
		Title:       in.Title,
		Description: in.Description,
		Link:        in.Link,
		Category:    in.Category,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	stored, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create tutorial: %w", mapRepoErr(err))
	}
	return stored, nil
}

func (s *tutorialService) Get(ctx context.Context, id string) (*model.Tutorial, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return t, nil
}

func (s *tutorialService) List(ctx context.Context, category string, limit, offset int) (*ListResult[model.Tutorial], error) {
	pq := pageQuery(limit, offset)
	res, err := s.repo.List(ctx, category, pq)
	if err != nil {
		return nil, err
	}
	return toListResult(res, pq), nil
}

func (s *tutorialService) Update(ctx context.Context, id string, in TutorialInput) (*model.Tutorial, error) {
	if in.Link != "" && !validLink(in.Link) {
		return nil, invalid("link")
	}
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	merge(&t.Title, in.Title)
	merge(&t.Description, in.Description)
	merge(&t.Link, in.Link)
	merge(&t.Category, in.Category)
	t.UpdatedAt = nowUTC()

	updated, err := s.repo.Update(ctx, t)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

func (s *tutorialService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return mapRepoErr(s.repo.Delete(ctx, id))
}

func validLink(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
