// Package auth verifies credentials and mints bearer tokens. One Manager
// serves one identity pool; the service runs two instances, one over the
// staff user store and one over the customer store.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"radagast/internal/config"
	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
)

type PrincipalStore interface {
	// FindByUsername returns (nil, nil) for an unknown username.
	FindByUsername(ctx context.Context, username string) (*domain.Principal, error)
	Insert(ctx context.Context, p domain.Principal) error
}

// Manager holds no per-call state, so one instance is safe to share across
// concurrent requests.
type Manager struct {
	store PrincipalStore
	cfg   config.JWTConfig
	now   func() time.Time
}

func NewManager(store PrincipalStore, cfg config.JWTConfig) *Manager {
	return &Manager{
		store: store,
		cfg:   cfg,
		now:   time.Now,
	}
}

// Authenticate verifies the credentials and returns the matching principal.
// Unknown usernames and wrong passwords produce the same UnauthorizedError.
func (m *Manager) Authenticate(ctx context.Context, username, password string) (*domain.Principal, error) {
	principal, err := m.store.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.NewInternalError("looking up principal", err)
	}
	if principal == nil {
		return nil, apperrors.NewUnauthorizedError("wrong username or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.NewUnauthorizedError("wrong username or password")
	}
	return principal, nil
}

// CreateToken mints a signed HS256 token carrying the principal's username
// and role names.
func (m *Manager) CreateToken(principal *domain.Principal) (string, error) {
	now := m.now()
	claims := jwt.MapClaims{
		"sub":   principal.Username,
		"roles": principal.Roles,
		"iss":   m.cfg.Issuer,
		"aud":   m.cfg.Audience,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(m.cfg.ExpiresMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", apperrors.NewInternalError("signing token", err)
	}
	return signed, nil
}

// Register hashes the password and stores the new principal. A taken
// username surfaces as a ConflictError from the store.
func (m *Manager) Register(ctx context.Context, principal domain.Principal, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.NewInternalError("hashing password", err)
	}

	if principal.ID == uuid.Nil {
		principal.ID = uuid.New()
	}
	principal.PasswordHash = string(hash)
	if principal.Roles == nil {
		principal.Roles = []string{}
	}

	return m.store.Insert(ctx, principal)
}
