package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"radagast/internal/commons"
	"radagast/internal/config"
	"radagast/internal/domain"
)

type fakeStore struct {
	principals map[string]domain.Principal
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
	s.principals[p.Username] = p
	return nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:         "test-secret",
		Issuer:         "radagast",
		Audience:       "radagast-api",
		ExpiresMinutes: 15,
	}
}

func newTestController(store *fakeStore) *Controller {
	return NewModule(store, testJWTConfig(), commons.NewValidator(), zap.NewNop())
}

func TestRegister_Created(t *testing.T) {
	store := newFakeStore()
	ctrl := newTestController(store)

	payload := `{"firstName": "Frodo", "lastName": "Baggins", "userName": "frodo", "password": "underhill", "email": "frodo@example.com", "roles": ["Manager"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/authentication", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	ctrl.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	stored, ok := store.principals["frodo"]
	require.True(t, ok)
	assert.Equal(t, "Frodo", stored.FirstName)
	assert.NotEqual(t, "underhill", stored.PasswordHash)
	assert.Equal(t, []string{"Manager"}, stored.Roles)
}

func TestRegister_MissingPassword(t *testing.T) {
	ctrl := newTestController(newFakeStore())

	req := httptest.NewRequest(http.MethodPost, "/api/authentication",
		strings.NewReader(`{"userName": "frodo"}`))
	rec := httptest.NewRecorder()
	ctrl.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "password")
}

func TestRegister_MalformedBody(t *testing.T) {
	ctrl := newTestController(newFakeStore())

	req := httptest.NewRequest(http.MethodPost, "/api/authentication",
		strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	ctrl.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_ReturnsVerifiableToken(t *testing.T) {
	store := newFakeStore()
	ctrl := newTestController(store)

	register := httptest.NewRequest(http.MethodPost, "/api/authentication",
		strings.NewReader(`{"userName": "frodo", "password": "underhill"}`))
	ctrl.Register(httptest.NewRecorder(), register)

	login := httptest.NewRequest(http.MethodPost, "/api/authentication/login",
		strings.NewReader(`{"userName": "frodo", "password": "underhill"}`))
	rec := httptest.NewRecorder()
	ctrl.Login(rec, login)

	require.Equal(t, http.StatusOK, rec.Code)

	var dto TokenDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	require.NotEmpty(t, dto.Token)

	cfg := testJWTConfig()
	parsed, err := jwt.Parse(dto.Token,
		func(t *jwt.Token) (any, error) { return []byte(cfg.Secret), nil },
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
	)
	require.NoError(t, err)
	assert.Equal(t, "frodo", parsed.Claims.(jwt.MapClaims)["sub"])
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newFakeStore()
	ctrl := newTestController(store)

	register := httptest.NewRequest(http.MethodPost, "/api/authentication",
		strings.NewReader(`{"userName": "frodo", "password": "underhill"}`))
	ctrl.Register(httptest.NewRecorder(), register)

	login := httptest.NewRequest(http.MethodPost, "/api/authentication/login",
		strings.NewReader(`{"userName": "frodo", "password": "wrong"}`))
	rec := httptest.NewRecorder()
	ctrl.Login(rec, login)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "wrong username or password")
}

func TestLogin_UnknownUser(t *testing.T) {
	ctrl := newTestController(newFakeStore())

	login := httptest.NewRequest(http.MethodPost, "/api/authentication/login",
		strings.NewReader(`{"userName": "nobody", "password": "x"}`))
	rec := httptest.NewRecorder()
	ctrl.Login(rec, login)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
