package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avoronov/notes-api/internal/domain"
	"github.com/avoronov/notes-api/internal/repository"
	"github.com/avoronov/notes-api/internal/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	users  repository.UserRepository
	tokens *security.TokenIssuer
}

func NewAuthService(users repository.UserRepository, tokens *security.TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

type SignupInput struct {
	UserName  string
	UserEmail string
	Password  string
}

// Signup registers a new user. The existence check and the insert are not
// atomic; the unique index on user_email catches the race between two
// concurrent signups and is reported as the same conflict.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	_, err := s.users.GetByEmail(ctx, input.UserEmail)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		UserID:       uuid.New(),
		UserName:     input.UserName,
		UserEmail:    input.UserEmail,
		PasswordHash: hash,
		CreatedOn:    now,
		LastUpdate:   now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a session token. An unknown email
// and a wrong password fail with the same error value.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.UserID.String(), time.Now())
}

// Authenticate resolves a bearer token to its user. Every failure mode
// (bad signature, expiry, unknown subject) collapses into
// domain.ErrUnauthenticated; the wrapped detail is for logs only.
func (s *AuthService) Authenticate(ctx context.Context, tokenStr string) (*domain.User, error) {
	subject, err := s.tokens.Validate(tokenStr, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", domain.ErrUnauthenticated)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown subject", domain.ErrUnauthenticated)
		}
		return nil, err
	}

	return user, nil
}
