package service

import (
	"context"
	"errors"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

type AuthService struct {
	users  repository.UserRepository
	tokens *TokenService
}

func NewAuthService(users repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user and returns it with a fresh token.
// Duplicate emails surface as domain.ErrDuplicateEmail; the uniqueness
// check happens inside the store's insert, not here, so two concurrent
// registrations cannot both succeed.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	u, err := s.users.Create(ctx, email, hash)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// Login checks credentials and returns the user with a fresh token.
// Unknown email and wrong password both yield the same
// domain.ErrInvalidCredentials so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !CheckPassword(password, u.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// Profile fetches the user for an authenticated context. The record may
// have vanished since the token was issued.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
