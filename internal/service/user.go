package service

import (
	"context"
	"fmt"
	"strings"

	"erpapi/internal/auth"
	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// UserInput is the writable part of a user. Password is only hashed and
// stored, never returned. On update blank fields are left unchanged.
type UserInput struct {
	ReferenceID string `json:"reference_id"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        string `json:"role"`
	Department  string `json:"department"`
	Manager     string `json:"manager"`
	TSM         string `json:"tsm"`
	Status      string `json:"status"`
}

// UserService defines the use cases for user administration.
type UserService interface {
	Create(ctx context.Context, in UserInput) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context, f repository.UserFilter, limit, offset int) (*ListResult[model.User], error)
	Update(ctx context.Context, id string, in UserInput) (*model.User, error)
	// Deactivate sets the user Inactive, which blocks login.
	Deactivate(ctx context.Context, id string) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService constructs a new UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

const minPasswordLen = 8

func (s *userService) Create(ctx context.Context, in UserInput) (*model.User, error) {
	if err := requireFields(
		field{"reference_id", in.ReferenceID},
		field{"email", in.Email},
		field{"password", in.Password},
		field{"role", in.Role},
	); err != nil {
		return nil, err
	}
	if err := validateUserInput(in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := nowUTC()
	u := &model.User{
		ID:           newID(),
		Status:       model.UserStatusActive,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	applyUserInput(u, in)

	stored, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", mapRepoErr(err))
	}
	return stored, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, f repository.UserFilter, limit, offset int) (*ListResult[model.User], error) {
	pq := pageQuery(limit, offset)
	res, err := s.repo.List(ctx, f, pq)
	if err != nil {
		return nil, err
	}
	return toListResult(res, pq), nil
}

func (s *userService) Update(ctx context.Context, id string, in UserInput) (*model.User, error) {
	if err := validateUserInput(in); err != nil {
		return nil, err
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyUserInput(u, in)
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = nowUTC()

	updated, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

func (s *userService) Deactivate(ctx context.Context, id string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	u.Status = model.UserStatusInactive
	u.UpdatedAt = nowUTC()
	_, err = s.repo.Update(ctx, u)
	return mapRepoErr(err)
}

func validateUserInput(in UserInput) error {
	var bad []string
	if in.Role != "" && !model.Role(in.Role).Valid() {
		bad = append(bad, "role")
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		bad = append(bad, "email")
	}
	if in.Password != "" && len(in.Password) < minPasswordLen {
		bad = append(bad, "password")
	}
	if in.Status != "" && in.Status != model.UserStatusActive && in.Status != model.UserStatusInactive {
		bad = append(bad, "status")
	}
	if len(bad) > 0 {
		return invalid(bad...)
	}
	return nil
}

func applyUserInput(u *model.User, in UserInput) {
	merge(&u.ReferenceID, in.ReferenceID)
	merge(&u.Email, strings.ToLower(strings.TrimSpace(in.Email)))
	merge(&u.FirstName, in.FirstName)
	merge(&u.LastName, in.LastName)
	if in.Role != "" {
		u.Role = model.Role(in.Role)
	}
	merge(&u.Department, in.Department)
	merge(&u.Manager, in.Manager)
	merge(&u.TSM, in.TSM)
	merge(&u.Status, in.Status)
}
