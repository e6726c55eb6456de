// Package auth implements the demo login gate: any non-empty email/password
// pair is accepted and the current user record is persisted durably.
package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	domainErrors "github.com/vlasewsky/orderdesk/internal/domain/errors"
	"github.com/vlasewsky/orderdesk/internal/domain/model"
	"github.com/vlasewsky/orderdesk/internal/kv"
	pkgAuth "github.com/vlasewsky/orderdesk/internal/pkg/auth"
)

// Gate checks credentials, persists the current user and issues session
// tokens.
type Gate struct {
	kv     kv.Store
	tokens pkgAuth.Strategy
	logger *slog.Logger
}

type userRecord struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	Authenticated bool   `json:"authenticated"`
}

// NewGate constructs the auth gate.
func NewGate(backend kv.Store, tokens pkgAuth.Strategy, logger *slog.Logger) *Gate {
	return &Gate{kv: backend, tokens: tokens, logger: logger}
}

// Login accepts any non-empty email/password pair. The display name is the
// part of the email before the first '@'. There is no password verification.
func (g *Gate) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	name := email
	if at := strings.Index(email, "@"); at >= 0 {
		name = email[:at]
	}

	user := &model.User{Email: email, Name: name}
	record, err := json.Marshal(userRecord{Email: user.Email, Name: user.Name, Authenticated: true})
	if err != nil {
		return nil, "", err
	}
	if err := g.kv.Set(ctx, kv.KeyCurrentUser, record); err != nil {
		return nil, "", err
	}

	token, err := g.tokens.IssueToken(user.Email)
	if err != nil {
		return nil, "", err
	}

	g.logger.Info("user logged in", slog.String("email", user.Email))
	return user, token, nil
}

// Logout clears the persisted current user.
func (g *Gate) Logout(ctx context.Context) error {
	return g.kv.Delete(ctx, kv.KeyCurrentUser)
}

// Current reads the persisted user record. A missing or malformed record
// means no one is logged in.
func (g *Gate) Current(ctx context.Context) (*model.User, bool) {
	value, ok, err := g.kv.Get(ctx, kv.KeyCurrentUser)
	if err != nil {
		g.logger.Warn("current user lookup failed", slog.String("error", err.Error()))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var record userRecord
	if err := json.Unmarshal(value, &record); err != nil {
		g.logger.Warn("stored user record is malformed", slog.String("error", err.Error()))
		return nil, false
	}
	if !record.Authenticated {
		return nil, false
	}

	return &model.User{Email: record.Email, Name: record.Name}, true
}

// ParseToken validates a session token and returns its subject email.
func (g *Gate) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return g.tokens.ParseToken(token)
}
