package domain

import (
	"errors"
	"time"
)

// Token verification failures. They never reach clients directly; the gate
// folds all of them into ErrInvalidToken.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenInvalid   = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")
)

// TokenClaims is the verified payload of an access token.
type TokenClaims struct {
	UserID    int64
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
