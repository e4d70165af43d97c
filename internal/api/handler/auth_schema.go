package handler

import "github.com/companyhub/directory-api/internal/core/domain"

// New passwords are capped at 72 bytes, the bcrypt input limit.
type signUpRequest struct {
	FullName string `json:"fullName" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// Sign in accepts any plausible password so that an over-long one is
// reported as INVALID_CREDENTIALS, not as a validation failure.
type signInRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=255"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}
