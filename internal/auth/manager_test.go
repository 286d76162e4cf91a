package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"radagast/internal/config"
	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
)

type fakeStore struct {
	principals map[string]domain.Principal
	inserted   []domain.Principal
	insertErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{principals: map[string]domain.Principal{}}
}

func (s *fakeStore) FindByUsername(_ context.Context, username string) (*domain.Principal, error) {
	p, ok := s.principals[username]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *fakeStore) Insert(_ context.Context, p domain.Principal) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, p)
	s.principals[p.Username] = p
	return nil
}

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:         "test-secret",
		Issuer:         "radagast",
		Audience:       "radagast-api",
		ExpiresMinutes: 15,
	}
}

func storeWith(t *testing.T, username, password string, roles ...string) *fakeStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	store := newFakeStore()
	store.principals[username] = domain.Principal{
		Username:     username,
		PasswordHash: string(hash),
		Roles:        roles,
	}
	return store
}

func TestAuthenticate_Success(t *testing.T) {
	store := storeWith(t, "gandalf", "mellon", "Administrator")
	m := NewManager(store, testConfig())

	principal, err := m.Authenticate(context.Background(), "gandalf", "mellon")

	require.NoError(t, err)
	assert.Equal(t, "gandalf", principal.Username)
	assert.Equal(t, []string{"Administrator"}, principal.Roles)
}

func TestAuthenticate_UnknownUserAndWrongPasswordAreIndistinguishable(t *testing.T) {
	store := storeWith(t, "realuser", "rightpass")
	m := NewManager(store, testConfig())

	_, errUnknown := m.Authenticate(context.Background(), "nouser", "x")
	_, errWrongPass := m.Authenticate(context.Background(), "realuser", "wrongpass")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())

	_, ok := apperrors.IsUnauthorizedError(errUnknown)
	assert.True(t, ok)
	_, ok = apperrors.IsUnauthorizedError(errWrongPass)
	assert.True(t, ok)
}

func TestCreateToken_ClaimsAndSignature(t *testing.T) {
	cfg := testConfig()
	m := NewManager(newFakeStore(), cfg)
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	signed, err := m.CreateToken(&domain.Principal{
		Username: "gandalf",
		Roles:    []string{"Administrator", "Manager"},
	})
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed,
		func(t *jwt.Token) (any, error) { return []byte(cfg.Secret), nil },
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithTimeFunc(func() time.Time { return issuedAt.Add(time.Minute) }),
	)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "gandalf", claims["sub"])
	assert.Equal(t, []any{"Administrator", "Manager"}, claims["roles"])
	assert.Equal(t, float64(issuedAt.Add(15*time.Minute).Unix()), claims["exp"])
}

func TestCreateToken_RejectedWithWrongSecret(t *testing.T) {
	m := NewManager(newFakeStore(), testConfig())

	signed, err := m.CreateToken(&domain.Principal{Username: "gandalf"})
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(t *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}

func TestRegister_HashesPasswordAndAssignsID(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store, testConfig())

	err := m.Register(context.Background(), domain.Principal{Username: "frodo"}, "underhill")
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	stored := store.inserted[0]
	assert.NotEqual(t, "underhill", stored.PasswordHash)
	assert.NotEmpty(t, stored.ID)
	assert.NotNil(t, stored.Roles)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("underhill")))
}

func TestRegisterThenAuthenticate_RoundTrip(t *testing.T) {
	store := newFakeStore()
	m := NewManager(store, testConfig())

	require.NoError(t, m.Register(context.Background(), domain.Principal{Username: "frodo"}, "underhill"))

	principal, err := m.Authenticate(context.Background(), "frodo", "underhill")
	require.NoError(t, err)
	assert.Equal(t, "frodo", principal.Username)
}
