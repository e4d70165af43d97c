package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/ports"
)

const bearerPrefix = "Bearer "

// Gate turns an Authorization header into the live user behind it.
// Decisions are never cached: every call re-reads the user.
type Gate struct {
	creds  *Credentials
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewGate(creds *Credentials, users ports.UserRepository, logger zerolog.Logger) *Gate {
	return &Gate{creds: creds, users: users, logger: logger}
}

// Authenticate resolves the caller. Header problems are rejected before
// storage is touched. A missing or deleted user is UNAUTHORIZED, while a
// non-admin caller on an admin route is FORBIDDEN. Storage failures are
// returned unchanged.
func (g *Gate) Authenticate(ctx context.Context, authorization string, requireAdmin bool) (*domain.User, error) {
	raw, ok := strings.CutPrefix(authorization, bearerPrefix)
	if !ok {
		return nil, domain.ErrMissingAuthHeader
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.ErrMissingToken
	}

	claims, err := g.creds.VerifyToken(raw)
	if err != nil {
		g.logger.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrInvalidToken
	}

	user, err := g.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInactiveUser
	}
	if err != nil {
		return nil, fmt.Errorf("load authenticated user: %w", err)
	}

	if requireAdmin && !user.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}
	return user, nil
}
