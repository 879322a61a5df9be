// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nstepanov/lockbox/internal/config"
	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/store"
	"github.com/nstepanov/lockbox/internal/utils"
	"github.com/nstepanov/lockbox/models"
)

// authService is the concrete implementation of AuthService.
//
// The client sends an already-derived authorization hash, never the master
// password. That hash is rehashed once more with the server HMAC key before
// storage, so a database dump alone is useless for login.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashKey is the HMAC secret applied to client authorization hashes
	// before storage or comparison. Must match the registration-time value.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashKey:        cfg.HashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new account from client-derived key material.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if email, hash, wrapped user key, or KDF
//     parameters are missing/invalid.
//   - A wrapped storage error if persistence fails (e.g. email already
//     taken -- see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.MasterPasswordHash == "" || user.WrappedUserKey == "" {
		log.Error().Str("email", user.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if err := user.Kdf.Validate(); err != nil {
		log.Err(err).Str("email", user.Email).Msg("invalid kdf settings provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	a.rehash(&user)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Prelogin returns the KDF parameters the account was created with, so any
// device can derive the same master key before authenticating.
//
// Unknown emails receive the default parameters instead of an error: the
// endpoint is unauthenticated and must not reveal which accounts exist.
func (a *authService) Prelogin(ctx context.Context, email string) (models.KdfConfig, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		return models.KdfConfig{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Debug().Str("email", email).Msg("prelogin for unknown account, serving defaults")
		return models.DefaultKdfConfig(), nil
	}

	return user.Kdf, nil
}

// Login authenticates an account by comparing the rehashed client
// authorization hash against the stored value.
//
// Returns the account record or:
//   - ErrInvalidDataProvided if email or hash is empty.
//   - A wrapped storage error if the lookup fails.
//   - ErrWrongPassword if the hashes do not match.
func (a *authService) Login(ctx context.Context, email, masterPasswordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || masterPasswordHash == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyHashString(masterPasswordHash, foundUser.MasterPasswordHash, a.hashKey) {
		log.Warn().Int64("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// rehash replaces the client authorization hash in user with its HMAC-SHA256
// rehash computed with the service's hashKey.
func (a *authService) rehash(user *models.User) {
	user.MasterPasswordHash = utils.HashString(user.MasterPasswordHash, a.hashKey)
}
