package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/companyhub/directory-api/internal/api/middleware"
	"github.com/companyhub/directory-api/internal/core/domain"
	"github.com/companyhub/directory-api/internal/core/ports"
)

func TestAuthHandler_SignUp_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error) {
			if input.FullName != "Alice Doe" || input.Email != "alice@example.com" || input.Password != "secret1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.AuthResult{
				Token: "token123",
				User:  &domain.User{ID: 1, FullName: input.FullName, Email: input.Email, Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(http.MethodPost, "/auth/signup",
		`{"fullName":"Alice Doe","email":"alice@example.com","password":"secret1"}`, "")
	if err := h.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["status"] != "success" || resp["message"] != "User created successfully" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	data := resp["data"].(map[string]any)
	if data["token"] != "token123" {
		t.Fatalf("expected token, got %+v", data)
	}
	user := data["user"].(map[string]any)
	if user["role"] != "USER" || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatal("password hash must not be serialized")
	}
}

func TestAuthHandler_SignUp_EmailInUse(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error) {
			return nil, domain.ErrEmailInUse
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newContext(http.MethodPost, "/auth/signup",
		`{"fullName":"Bob Doe","email":"bob@example.com","password":"secret1"}`, "")
	if err := h.SignUp(c); !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestAuthHandler_SignUp_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, input ports.SignUpInput) (*ports.AuthResult, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"not json", "not-json", "body"},
		{"short name", `{"fullName":"Al","email":"a@example.com","password":"secret1"}`, "fullName"},
		{"bad email", `{"fullName":"Alice","email":"nope","password":"secret1"}`, "email"},
		{"short password", `{"fullName":"Alice","email":"a@example.com","password":"123"}`, "password"},
		{"missing password", `{"fullName":"Alice","email":"a@example.com"}`, "password"},
		{"password over 72 bytes", `{"fullName":"Alice","email":"a@example.com","password":"` + strings.Repeat("é", 40) + `"}`, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(http.MethodPost, "/auth/signup", tt.body, "")
			details := validationDetails(t, h.SignUp(c))
			if !hasField(details, tt.field) {
				t.Fatalf("expected %s in details, got %+v", tt.field, details)
			}
		})
	}
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.AuthResult{Token: "token123", User: &domain.User{ID: 1, Role: domain.RoleAdmin}}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(http.MethodPost, "/auth/signin", `{"email":"alice@example.com","password":"secret1"}`, "")
	if err := h.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["message"] != "User logged in successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if resp["data"].(map[string]any)["token"] != "token123" {
		t.Fatalf("expected token in data: %+v", resp["data"])
	}
}

func TestAuthHandler_SignIn_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newContext(http.MethodPost, "/auth/signin", `{"email":"alice@example.com","password":"wrong-pass"}`, "")
	if err := h.SignIn(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_SignOut(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newContext(http.MethodPost, "/auth/signout", "", "")
	if err := h.SignOut(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeBody(t, rec)
	if resp["message"] != "User signed out successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	if _, ok := resp["data"]; ok {
		t.Fatalf("expected no data, got %+v", resp["data"])
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newContext(http.MethodGet, "/auth/profile", "", "")
	c.Set(middleware.UserKey, &domain.User{ID: 7, FullName: "Alice Doe", Role: domain.RoleUser})
	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeBody(t, rec)
	user := resp["data"].(map[string]any)["user"].(map[string]any)
	if user["id"] != float64(7) || user["fullName"] != "Alice Doe" {
		t.Fatalf("unexpected profile: %+v", user)
	}
}

func TestAuthHandler_Profile_WithoutUser(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newContext(http.MethodGet, "/auth/profile", "", "")
	if err := h.Profile(c); !errors.Is(err, domain.ErrMissingAuthHeader) {
		t.Fatalf("expected ErrMissingAuthHeader, got %v", err)
	}
}
