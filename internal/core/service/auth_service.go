package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/ports"
)

// AuthService implements sign up and sign in.
type AuthService struct {
	users  ports.UserRepository
	creds  *Credentials
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, creds *Credentials, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, creds: creds, logger: logger}
}

// SignUp creates a USER account and returns it with a fresh token.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error) {
	exists, err := s.users.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailInUse
	}

	hash, err := s.creds.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	// A concurrent sign up with the same email still surfaces as ErrEmailInUse.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.creds.IssueToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user signed up")
	return &ports.AuthResult{Token: token, User: user}, nil
}

// SignIn checks the credentials. An unknown email and a wrong password
// produce the same error.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if !s.creds.VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.creds.IssueToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user signed in")
	return &ports.AuthResult{Token: token, User: user}, nil
}
