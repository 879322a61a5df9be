// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/service"
	"github.com/nstepanov/lockbox/internal/store"
	"github.com/nstepanov/lockbox/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	preloginFn     func(ctx context.Context, email string) (models.KdfConfig, error)
	loginFn        func(ctx context.Context, email, masterPasswordHash string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Prelogin(ctx context.Context, email string) (models.KdfConfig, error) {
	return m.preloginFn(ctx, email)
}

func (m *mockAuthService) Login(ctx context.Context, email, masterPasswordHash string) (models.User, error) {
	return m.loginFn(ctx, email, masterPasswordHash)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockPolicyService implements service.PolicyService for unit tests.
type mockPolicyService struct {
	policy models.MasterPasswordPolicy
}

func (m *mockPolicyService) GetPolicy(_ context.Context) models.MasterPasswordPolicy {
	return m.policy
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:   auth,
		PolicyService: &mockPolicyService{policy: service.DefaultMasterPasswordPolicy()},
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises any value to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validRegister is a convenience fixture used across multiple tests.
var validRegister = models.RegisterRequest{
	Email:              "alice@example.com",
	Kdf:                models.DefaultKdfConfig(),
	MasterPasswordHash: "server-authorization-hash",
	WrappedUserKey:     "wrapped-user-key",
	Keys: models.AccountKeys{
		PublicKey:         "public-key",
		WrappedPrivateKey: "wrapped-private-key",
	},
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 200 OK and an Authorization header containing the issued Bearer token.
func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, validRegister.Email, u.Email)
			assert.Equal(t, validRegister.MasterPasswordHash, u.MasterPasswordHash)
			assert.Equal(t, validRegister.WrappedUserKey, u.WrappedUserKey)
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestRegister_InvalidDataProvided verifies that service.ErrInvalidDataProvided
// maps to 400 Bad Request.
func TestRegister_InvalidDataProvided(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid data provided")
}

// TestRegister_EmailAlreadyExists verifies that store.ErrEmailAlreadyExists
// maps to 409 Conflict.
func TestRegister_EmailAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already exists")
}

// TestRegister_WrappedEmailAlreadyExists verifies that a wrapped
// store.ErrEmailAlreadyExists is still matched via errors.Is.
func TestRegister_WrappedEmailAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, errors.Join(errors.New("outer"), store.ErrEmailAlreadyExists)
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// TestRegister_CreateTokenFails verifies that a token creation failure after
// successful registration maps to 500 Internal Server Error.
func TestRegister_CreateTokenFails(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing key unavailable")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// prelogin
// ─────────────────────────────────────────────

// TestPrelogin_Success verifies that the account's KDF parameters are served
// as JSON.
func TestPrelogin_Success(t *testing.T) {
	kdf := models.KdfConfig{
		Type:        models.KdfArgon2id,
		Iterations:  4,
		MemoryMiB:   128,
		Parallelism: 8,
	}

	auth := &mockAuthService{
		preloginFn: func(_ context.Context, email string) (models.KdfConfig, error) {
			assert.Equal(t, "alice@example.com", email)
			return kdf, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.PreloginRequest{Email: "alice@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/prelogin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.prelogin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.PreloginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, kdf, response.Kdf)
}

// TestPrelogin_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestPrelogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/prelogin", strings.NewReader("{bad json"))
	rec := httptest.NewRecorder()

	h.prelogin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies that a valid login request results in 200 OK,
// the Bearer token in the Authorization header, and the wrapped key material
// in the body.
func TestLogin_Success(t *testing.T) {
	const signedToken = "login.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, hash string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "server-authorization-hash", hash)
			return models.User{
				UserID:         42,
				Email:          email,
				WrappedUserKey: "wrapped-user-key",
				Keys: models.AccountKeys{
					PublicKey:         "public-key",
					WrappedPrivateKey: "wrapped-private-key",
				},
			}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com", MasterPasswordHash: "server-authorization-hash"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var response models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "wrapped-user-key", response.WrappedUserKey)
	assert.Equal(t, "wrapped-private-key", response.Keys.WrappedPrivateKey)
}

// TestLogin_UserNotFound verifies that store.ErrUserNotFound maps to
// 401 Unauthorized with the generic message.
func TestLogin_UserNotFound(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Email: "nobody@example.com", MasterPasswordHash: "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email/password")
}

// TestLogin_WrongPassword verifies that service.ErrWrongPassword maps to the
// same 401 response as an unknown account.
func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com", MasterPasswordHash: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email/password")
}

// TestLogin_UnexpectedError verifies that an unknown error from Login maps to
// 500 Internal Server Error.
func TestLogin_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("db connection lost")
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com", MasterPasswordHash: "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// policy
// ─────────────────────────────────────────────

// TestPolicy verifies that the configured master-password policy is served
// as JSON.
func TestPolicy(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/policy", nil)
	rec := httptest.NewRecorder()

	h.policy(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var policy models.MasterPasswordPolicy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &policy))
	assert.Equal(t, service.DefaultMasterPasswordPolicy(), policy)
}
