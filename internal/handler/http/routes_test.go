// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/service"
	"github.com/nstepanov/lockbox/models"
)

// ---- Mock: AuthService ----

type mockAuthSvc struct{}

func (m *mockAuthSvc) RegisterUser(_ context.Context, u models.User) (models.User, error) {
	return u, nil
}
func (m *mockAuthSvc) Prelogin(_ context.Context, _ string) (models.KdfConfig, error) {
	return models.DefaultKdfConfig(), nil
}
func (m *mockAuthSvc) Login(_ context.Context, email, _ string) (models.User, error) {
	return models.User{Email: email}, nil
}
func (m *mockAuthSvc) CreateToken(_ context.Context, _ models.User) (models.Token, error) {
	return models.Token{}, nil
}
func (m *mockAuthSvc) ParseToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{UserID: 1}, nil
}

// ---- Mock: AuthRequestService ----

type mockAuthRequestSvc struct{}

func (m *mockAuthRequestSvc) Create(_ context.Context, request models.AuthRequest, _ string) (models.AuthRequest, error) {
	return request, nil
}
func (m *mockAuthRequestSvc) Poll(_ context.Context, id uuid.UUID, _ string) (models.AuthRequest, error) {
	return models.AuthRequest{ID: id}, nil
}
func (m *mockAuthRequestSvc) ListPending(_ context.Context, _ int64) ([]models.AuthRequest, error) {
	return nil, nil
}
func (m *mockAuthRequestSvc) Answer(_ context.Context, _ int64, id uuid.UUID, _ models.AnswerAuthRequestRequest) (models.AuthRequest, error) {
	return models.AuthRequest{ID: id}, nil
}
func (m *mockAuthRequestSvc) ExpireStale(_ context.Context) (int64, error) {
	return 0, nil
}

// ---- Mock: DeviceService ----

type mockDeviceSvc struct{}

func (m *mockDeviceSvc) TrustDevice(_ context.Context, device models.Device) (models.Device, error) {
	return device, nil
}
func (m *mockDeviceSvc) GetDevice(_ context.Context, _ int64, _ string) (models.Device, error) {
	return models.Device{}, nil
}
func (m *mockDeviceSvc) ListDevices(_ context.Context, _ int64) ([]models.Device, error) {
	return nil, nil
}

// ---- Mock: PolicyService ----

type mockPolicySvc struct{}

func (m *mockPolicySvc) GetPolicy(_ context.Context) models.MasterPasswordPolicy {
	return service.DefaultMasterPasswordPolicy()
}

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:        &mockAuthSvc{},
			AuthRequestService: &mockAuthRequestSvc{},
			DeviceService:      &mockDeviceSvc{},
			PolicyService:      &mockPolicySvc{},
		},
	}
	return h.Init()
}

func validAuthHeader() string { return "Bearer stub-token" }

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/prelogin"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/policy"},
		{http.MethodPost, "/api/auth-requests"},
		{http.MethodPost, "/api/auth-requests/" + uuid.NewString() + "/poll"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"public route should not require a token: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth-requests"},
		{http.MethodPut, "/api/auth-requests/" + uuid.NewString()},
		{http.MethodPost, "/api/devices/trust"},
		{http.MethodGet, "/api/devices"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" without token", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"missing token should result in 401")
		})
	}
}

// ---- Protected routes: pass with valid token ----

func TestInit_ProtectedRoutes_PassWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth-requests"},
		{http.MethodGet, "/api/devices"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" with token", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Authorization", validAuthHeader())
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

// ---- Unknown routes return 404 ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/totally/wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- X-Trace-ID is always present in the response ----

func TestInit_TraceIDHeader_AlwaysSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/policy", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
}

// ---- Incoming X-Trace-ID is echoed back ----

func TestInit_TraceIDHeader_EchoedFromRequest(t *testing.T) {
	router := newTestRouter(t)
	const customTraceID = "my-custom-trace-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/api/policy", nil)
	req.Header.Set("X-Trace-ID", customTraceID)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, customTraceID, rr.Header().Get("X-Trace-ID"))
}
