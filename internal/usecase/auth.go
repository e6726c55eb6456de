package usecase

import (
	"context"

	"github.com/vlasewsky/orderdesk/internal/domain/model"
)

// Gate describes the auth gate capabilities the use case builds on.
type Gate interface {
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*model.User, bool)
	ParseToken(token string) (string, error)
}

// AuthUseCase handles the login/logout lifecycle and token parsing.
type AuthUseCase struct {
	gate Gate
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(gate Gate) *AuthUseCase {
	return &AuthUseCase{gate: gate}
}

// Login authorizes the credentials and returns the user with a session token.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	return u.gate.Login(ctx, email, password)
}

// Logout clears the persisted current user.
func (u *AuthUseCase) Logout(ctx context.Context) error {
	return u.gate.Logout(ctx)
}

// Current returns the persisted current user, if any.
func (u *AuthUseCase) Current(ctx context.Context) (*model.User, bool) {
	return u.gate.Current(ctx)
}

// ParseToken extracts the subject email from a session token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	return u.gate.ParseToken(token)
}
