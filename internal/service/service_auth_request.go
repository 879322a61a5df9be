// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nstepanov/lockbox/internal/config"
	"github.com/nstepanov/lockbox/internal/logger"
	"github.com/nstepanov/lockbox/internal/store"
	"github.com/nstepanov/lockbox/internal/utils"
	"github.com/nstepanov/lockbox/models"
)

// authRequestService is the concrete implementation of AuthRequestService.
//
// The server never sees the access code or any key material in the clear:
// the access code is stored as an HMAC, and the answer payload is encrypted
// by the approving device to the requester's ephemeral public key.
type authRequestService struct {
	authRequestRepository store.AuthRequestRepository
	userRepository        store.UserRepository

	// hashKey is the HMAC secret applied to access codes before storage.
	hashKey string

	// ttl is how long a request stays answerable after creation.
	ttl time.Duration

	logger *logger.Logger
}

// NewAuthRequestService constructs an AuthRequestService with the TTL and
// HMAC key taken from cfg.
func NewAuthRequestService(authRequests store.AuthRequestRepository, users store.UserRepository, cfg config.App, logger *logger.Logger) AuthRequestService {
	return &authRequestService{
		authRequestRepository: authRequests,
		userRepository:        users,
		hashKey:               cfg.HashKey,
		ttl:                   cfg.AuthRequestTTL,
		logger:                logger,
	}
}

// Create registers a pending login request for the account named by
// request.Email. The plain access code is HMAC-hashed before storage.
//
// Returns the persisted request or:
//   - ErrInvalidDataProvided if email, public key, fingerprint, or access
//     code is missing.
//   - A wrapped storage error when the account does not exist or the insert
//     fails.
func (s *authRequestService) Create(ctx context.Context, request models.AuthRequest, accessCode string) (models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	if request.Email == "" || request.PublicKey == "" || request.Fingerprint == "" || accessCode == "" {
		log.Error().Str("email", request.Email).Msg("invalid auth request data provided")
		return models.AuthRequest{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("auth request for unknown account")
		return models.AuthRequest{}, fmt.Errorf("user search by email failed: %w", err)
	}

	now := time.Now()
	request.UserID = user.UserID
	request.AccessCodeHash = utils.HashString(accessCode, s.hashKey)
	request.State = models.AuthRequestPending
	request.ExpiresAt = now.Add(s.ttl)

	created, err := s.authRequestRepository.CreateAuthRequest(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("auth request creation ended with error")
		return models.AuthRequest{}, fmt.Errorf("auth request creation ended with error: %w", err)
	}

	return created, nil
}

// Poll returns the current state of a request to the device that created it.
// The caller authenticates with the plain access code.
//
// An approved request is consumed on first successful poll: the encrypted
// payload is handed out exactly once and cleared afterwards.
//
// Returns the request or:
//   - ErrWrongAccessCode when the code's HMAC does not match.
//   - ErrAuthRequestExpired when the deadline passed before an answer.
//   - ErrAuthRequestConsumed when the payload was already collected.
//   - A wrapped storage error when the id is unknown.
func (s *authRequestService) Poll(ctx context.Context, id uuid.UUID, accessCode string) (models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	request, err := s.authRequestRepository.GetAuthRequest(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("auth request lookup failed")
		return models.AuthRequest{}, fmt.Errorf("auth request lookup failed: %w", err)
	}

	if !utils.VerifyHashString(accessCode, request.AccessCodeHash, s.hashKey) {
		log.Warn().Str("id", id.String()).Msg("poll with wrong access code")
		return models.AuthRequest{}, ErrWrongAccessCode
	}

	now := time.Now()
	if request.ExpiredBy(now) {
		prev := request.State
		request.State = models.AuthRequestExpired
		request.RespondedAt = &now
		// A guard miss means the reaper or a concurrent poll flipped the
		// row first.
		if _, err = s.authRequestRepository.UpdateAuthRequest(ctx, request, prev); err != nil &&
			!errors.Is(err, store.ErrAuthRequestNotFound) {
			return models.AuthRequest{}, fmt.Errorf("auth request expiry update failed: %w", err)
		}
		return models.AuthRequest{}, ErrAuthRequestExpired
	}

	switch request.State {
	case models.AuthRequestConsumed:
		return models.AuthRequest{}, ErrAuthRequestConsumed

	case models.AuthRequestApproved:
		// Hand out the payload once, then clear it. The guarded update
		// matches only while the row is still approved, so concurrent
		// polls get exactly one winner.
		payload := request

		request.State = models.AuthRequestConsumed
		request.WrappedUserKey = ""
		request.MasterPasswordHash = ""
		if _, err = s.authRequestRepository.UpdateAuthRequest(ctx, request, models.AuthRequestApproved); err != nil {
			if errors.Is(err, store.ErrAuthRequestNotFound) {
				return models.AuthRequest{}, ErrAuthRequestConsumed
			}
			return models.AuthRequest{}, fmt.Errorf("auth request consume update failed: %w", err)
		}

		return payload, nil

	default:
		return request, nil
	}
}

// ListPending returns the account's open requests so a trusted device can
// show an approval screen. Requests past their deadline are filtered out
// even if the reaper has not flipped them yet.
func (s *authRequestService) ListPending(ctx context.Context, userID int64) ([]models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	requests, err := s.authRequestRepository.ListAuthRequests(ctx, store.AuthRequestFilter{
		UserID: userID,
		States: []models.AuthRequestState{models.AuthRequestPending},
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("auth request listing failed")
		return nil, fmt.Errorf("auth request listing failed: %w", err)
	}

	now := time.Now()
	open := requests[:0]
	for _, request := range requests {
		if !request.ExpiredBy(now) {
			open = append(open, request)
		}
	}

	return open, nil
}

// Answer approves or denies a pending request on behalf of its owner.
// Approval attaches the user key encrypted to the requester's public key
// plus the forwarded authorization hash.
//
// Returns the updated request or:
//   - store.ErrAuthRequestNotFound (wrapped) when the id is unknown or
//     belongs to another account.
//   - ErrAuthRequestExpired / ErrAuthRequestAnswered for requests no longer
//     pending.
//   - ErrInvalidDataProvided when approving without a payload.
func (s *authRequestService) Answer(ctx context.Context, userID int64, id uuid.UUID, answer models.AnswerAuthRequestRequest) (models.AuthRequest, error) {
	log := logger.FromContext(ctx)

	request, err := s.authRequestRepository.GetAuthRequest(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("auth request lookup failed")
		return models.AuthRequest{}, fmt.Errorf("auth request lookup failed: %w", err)
	}

	// Do not reveal other accounts' requests.
	if request.UserID != userID {
		log.Warn().Str("id", id.String()).Int64("user_id", userID).Msg("answer for foreign auth request")
		return models.AuthRequest{}, fmt.Errorf("auth request lookup failed: %w", store.ErrAuthRequestNotFound)
	}

	now := time.Now()
	if request.ExpiredBy(now) {
		return models.AuthRequest{}, ErrAuthRequestExpired
	}
	if request.Answered() {
		return models.AuthRequest{}, ErrAuthRequestAnswered
	}

	request.RespondedAt = &now
	if answer.Approve {
		if answer.WrappedUserKey == "" {
			return models.AuthRequest{}, ErrInvalidDataProvided
		}
		request.State = models.AuthRequestApproved
		request.WrappedUserKey = answer.WrappedUserKey
		request.MasterPasswordHash = answer.MasterPasswordHash
	} else {
		request.State = models.AuthRequestDenied
	}

	// Guarded on the pending state: a concurrent answer or the reaper
	// winning the race surfaces as ErrAuthRequestAnswered, never as a
	// silent overwrite.
	updated, err := s.authRequestRepository.UpdateAuthRequest(ctx, request, models.AuthRequestPending)
	if err != nil {
		if errors.Is(err, store.ErrAuthRequestNotFound) {
			return models.AuthRequest{}, ErrAuthRequestAnswered
		}
		log.Err(err).Str("id", id.String()).Msg("auth request answer update failed")
		return models.AuthRequest{}, fmt.Errorf("auth request answer update failed: %w", err)
	}

	return updated, nil
}

// ExpireStale flips every pending request past its deadline to the expired
// state. Called periodically by the reaper worker.
func (s *authRequestService) ExpireStale(ctx context.Context) (int64, error) {
	return s.authRequestRepository.ExpirePending(ctx, time.Now())
}
