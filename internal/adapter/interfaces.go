// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the Lockbox server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Lockbox
// server. Implementations own serialisation, bearer-token management, and
// mapping transport-level errors to the sentinel values in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the currently stored bearer token, or "".
	Token() string

	// Register creates an account from derived key material. On success the
	// returned bearer token is stored via SetToken.
	Register(ctx context.Context, request models.RegisterRequest) (models.Token, error)

	// Prelogin fetches the account's KDF parameters so the device can derive
	// the master key before authenticating. Unauthenticated.
	Prelogin(ctx context.Context, email string) (models.KdfConfig, error)

	// Login authenticates with the pre-computed authorization hash. On
	// success the bearer token is stored via SetToken and the wrapped key
	// material is returned.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, models.Token, error)

	// GetPolicy fetches the org master-password policy. Unauthenticated.
	GetPolicy(ctx context.Context) (models.MasterPasswordPolicy, error)

	// CreateAuthRequest opens a passwordless login request. Unauthenticated:
	// the access code inside the request authenticates later polls.
	CreateAuthRequest(ctx context.Context, request models.CreateAuthRequestRequest) (models.AuthRequestView, error)

	// PollAuthRequest checks the state of a request created by this device.
	PollAuthRequest(ctx context.Context, id uuid.UUID, accessCode string) (models.AuthRequestView, error)

	// ListPendingAuthRequests returns the account's open requests. Authed.
	ListPendingAuthRequests(ctx context.Context) ([]models.AuthRequestView, error)

	// AnswerAuthRequest approves or denies a pending request. Authed.
	AnswerAuthRequest(ctx context.Context, id uuid.UUID, answer models.AnswerAuthRequestRequest) (models.AuthRequestView, error)

	// TrustDevice uploads the trusted-device key bundle. Authed.
	TrustDevice(ctx context.Context, request models.TrustDeviceRequest) (models.Device, error)

	// ListDevices returns the account's enrolled devices. Authed.
	ListDevices(ctx context.Context) ([]models.Device, error)
}
