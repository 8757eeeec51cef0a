package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"erpapi/internal/auth"
	"erpapi/internal/model"
	"erpapi/internal/repository"
)

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Generate(userID, referenceID, role string) (*auth.Token, error)
}

// LoginResult is returned on successful login.
type LoginResult struct {
	auth.Token
	User *model.User `json:"user"`
}

// AuthService defines the login use cases.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context, userID string) (*model.User, error)
	// Active reports whether the user still exists with status Active.
	Active(ctx context.Context, userID string) (bool, error)
}

type authService struct {
	users  repository.UserRepository
	tokens TokenIssuer
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, tokens TokenIssuer) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Login checks the credentials of an active user. Unknown e-mail, wrong
// password and inactive account all yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := requireFields(field{"email", email}, field{"password", password}); err != nil {
		return nil, err
	}

	u, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) || u.Status != model.UserStatusActive {
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Generate(u.ID, u.ReferenceID, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Token: *tok, User: u}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return u, nil
}

func (s *authService) Active(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	u, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Status == model.UserStatusActive, nil
}
