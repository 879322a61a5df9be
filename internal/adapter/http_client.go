// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/internal/utils"
	"github.com/nstepanov/lockbox/models"
)

// HTTPClientConfig configures the REST adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.adoptBearerToken(resp)
}

func (h *httpServerAdapter) Prelogin(ctx context.Context, email string) (models.KdfConfig, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PreloginRequest{Email: email}).
		Post("/api/auth/prelogin")
	if err != nil {
		return models.KdfConfig{}, fmt.Errorf("prelogin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KdfConfig{}, err
	}

	var pr models.PreloginResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.KdfConfig{}, fmt.Errorf("decode prelogin response: %w", err)
	}

	return pr.Kdf, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, models.Token{}, err
	}

	token, err := h.adoptBearerToken(resp)
	if err != nil {
		return models.LoginResponse{}, models.Token{}, err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return models.LoginResponse{}, models.Token{}, fmt.Errorf("decode login response: %w", err)
	}

	return lr, token, nil
}

func (h *httpServerAdapter) GetPolicy(ctx context.Context) (models.MasterPasswordPolicy, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/policy")
	if err != nil {
		return models.MasterPasswordPolicy{}, fmt.Errorf("policy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MasterPasswordPolicy{}, err
	}

	var policy models.MasterPasswordPolicy
	if err = json.Unmarshal(resp.Body(), &policy); err != nil {
		return models.MasterPasswordPolicy{}, fmt.Errorf("decode policy response: %w", err)
	}

	return policy, nil
}

func (h *httpServerAdapter) CreateAuthRequest(ctx context.Context, request models.CreateAuthRequestRequest) (models.AuthRequestView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth-requests")
	if err != nil {
		return models.AuthRequestView{}, fmt.Errorf("create auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthRequestView{}, err
	}

	return decodeAuthRequestView(resp.Body())
}

func (h *httpServerAdapter) PollAuthRequest(ctx context.Context, id uuid.UUID, accessCode string) (models.AuthRequestView, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PollAuthRequestRequest{AccessCode: accessCode}).
		Post("/api/auth-requests/" + id.String() + "/poll")
	if err != nil {
		return models.AuthRequestView{}, fmt.Errorf("poll auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthRequestView{}, err
	}

	return decodeAuthRequestView(resp.Body())
}

func (h *httpServerAdapter) ListPendingAuthRequests(ctx context.Context) ([]models.AuthRequestView, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth-requests")
	if err != nil {
		return nil, fmt.Errorf("list auth requests: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var views []models.AuthRequestView
	if err = json.Unmarshal(resp.Body(), &views); err != nil {
		return nil, fmt.Errorf("decode auth request list: %w", err)
	}

	return views, nil
}

func (h *httpServerAdapter) AnswerAuthRequest(ctx context.Context, id uuid.UUID, answer models.AnswerAuthRequestRequest) (models.AuthRequestView, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(answer).
		Put("/api/auth-requests/" + id.String())
	if err != nil {
		return models.AuthRequestView{}, fmt.Errorf("answer auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthRequestView{}, err
	}

	return decodeAuthRequestView(resp.Body())
}

func (h *httpServerAdapter) TrustDevice(ctx context.Context, request models.TrustDeviceRequest) (models.Device, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/devices/trust")
	if err != nil {
		return models.Device{}, fmt.Errorf("trust device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Device{}, err
	}

	var device models.Device
	if err = json.Unmarshal(resp.Body(), &device); err != nil {
		return models.Device{}, fmt.Errorf("decode trust device response: %w", err)
	}

	return device, nil
}

func (h *httpServerAdapter) ListDevices(ctx context.Context) ([]models.Device, error) {
	resp, err := h.authedRequest(ctx).Get("/api/devices")
	if err != nil {
		return nil, fmt.Errorf("list devices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var devices []models.Device
	if err = json.Unmarshal(resp.Body(), &devices); err != nil {
		return nil, fmt.Errorf("decode device list: %w", err)
	}

	return devices, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// adoptBearerToken extracts the token from the Authorization response header
// and stores it for subsequent authenticated calls.
func (h *httpServerAdapter) adoptBearerToken(resp *resty.Response) (models.Token, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func decodeAuthRequestView(body []byte) (models.AuthRequestView, error) {
	var view models.AuthRequestView
	if err := json.Unmarshal(body, &view); err != nil {
		return models.AuthRequestView{}, fmt.Errorf("decode auth request response: %w", err)
	}
	return view, nil
}
