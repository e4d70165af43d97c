package ports

import (
	"context"

	"github.com/companyhub/directory-api/internal/core/domain"
)

// SignUpInput carries the fields of a new account.
type SignUpInput struct {
	FullName string
	Email    string
	Password string
}

// AuthResult is returned by sign up and sign in.
type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
}

// Authenticator resolves an Authorization header into the calling user.
type Authenticator interface {
	Authenticate(ctx context.Context, authorization string, requireAdmin bool) (*domain.User, error)
}
